package mongo

import (
	"context"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository backed by MongoDB.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(UsersCollection)}
}

func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, wrapFindOne(err, "user", userID)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create user %s: %w", user.ID, err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update user %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with ID %s: %w", user.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete user %s: %w", userID, err)
	}
	return nil
}
