package models

import "time"

type User struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null;index" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
	Image        string    `json:"image"`
	IsAdmin      bool      `gorm:"default:false" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Profile struct {
	ID          int       `gorm:"primary_key;autoIncrement" json:"id"`
	UserID      int       `gorm:"not null;index" json:"user_id"` // auto-filled
	Name        string    `gorm:"not null" json:"name"`          // mandatory
	Description string    `gorm:"type:text" json:"description"`
	Content     Content   `gorm:"type:text;serializer:json" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Portfolio struct {
	ID          int    `gorm:"primary_key;autoIncrement" json:"id"`
	UserID      int    `gorm:"not null;index" json:"user_id"`
	TemplateID  string `gorm:"not null" json:"templateId"`
	ProfileID   *int   `gorm:"index" json:"profileId,omitempty"` // weak reference, no cascade
	Slug        string `gorm:"unique;not null;index" json:"slug"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IsPublished bool   `gorm:"default:false;index" json:"isPublished"`
	// HasBeenEdited flips the first time the builder writes back, so the
	// dashboard can tell a fresh copy from an edited one.
	HasBeenEdited bool      `gorm:"default:false" json:"hasBeenEdited"`
	Content       Content   `gorm:"type:text;serializer:json" json:"content"` // stale snapshot once a profile is linked
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
