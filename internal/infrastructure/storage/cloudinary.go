package storage

import (
	"context"
	"fmt"
	"io"

	"carcare/internal/pkg/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const avatarFolder = "carcare/avatars"

// CloudinaryStore uploads user photos to Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
	log logger.Logger
}

// NewCloudinaryStore creates a photo store from API credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string, log logger.Logger) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("missing Cloudinary configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	log.Info("Successfully created Cloudinary client.")
	return &CloudinaryStore{cld: cld, log: log}, nil
}

// UploadAvatar uploads the image as the user's avatar, replacing any previous
// one, and returns its HTTPS URL.
func (s *CloudinaryStore) UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error) {
	overwrite := true
	params := uploader.UploadParams{
		PublicID:       avatarPublicID(userID),
		Folder:         avatarFolder,
		Overwrite:      &overwrite,
		ResourceType:   "image",
		Transformation: "c_fill,g_face,h_300,w_300/q_auto,f_auto",
	}
	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	s.log.Debug(fmt.Sprintf("Uploaded avatar for user %s", userID))
	return result.SecureURL, nil
}

// DeleteAvatar removes the user's avatar.
func (s *CloudinaryStore) DeleteAvatar(ctx context.Context, userID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: avatarFolder + "/" + avatarPublicID(userID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func avatarPublicID(userID string) string {
	return fmt.Sprintf("user_%s", userID)
}
