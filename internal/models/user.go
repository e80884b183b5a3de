package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`
	DisplayName  string `gorm:"column:display_name;type:text" json:"display_name"`

	// wellness topics the user wants to work on, ex: ["sleep", "stress"]
	FocusAreas pq.StringArray `gorm:"column:focus_areas;type:text[]" json:"focus_areas"`

	// JSONB (flexible client-side settings, structure not fixed)
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string { return "users" }
