package entity

import "time"

// Vehicle is a car registered by a user.
type Vehicle struct {
	ID               string    `gorm:"column:id;primaryKey" bson:"_id"`
	UserID           string    `gorm:"column:user_id;index" bson:"user_id"`
	Nickname         string    `gorm:"column:nickname" bson:"nickname"`
	Manufacturer     string    `gorm:"column:manufacturer" bson:"manufacturer"`
	Model            string    `gorm:"column:model" bson:"model"`
	RegNo            string    `gorm:"column:reg_no" bson:"reg_no"`
	Year             int       `gorm:"column:year" bson:"year"`
	CurrentMileageKm float64   `gorm:"column:current_mileage_km" bson:"current_mileage_km"`
	FuelType         string    `gorm:"column:fuel_type" bson:"fuel_type"`
	CreatedAt        time.Time `gorm:"column:created_at" bson:"created_at"`
}

// TableName specifies the table name for the Vehicle entity.
func (Vehicle) TableName() string {
	return "vehicles"
}

// DisplayName joins manufacturer and model, falling back to the nickname.
func (v *Vehicle) DisplayName() string {
	switch {
	case v.Manufacturer != "" && v.Model != "":
		return v.Manufacturer + " " + v.Model
	case v.Nickname != "":
		return v.Nickname
	default:
		return v.Manufacturer + v.Model
	}
}
