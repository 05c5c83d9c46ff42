// Package models contains data models for the social backend.
package models

import "time"

// User represents a registered account.
type User struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	Website        string    `json:"website"`
	ProfilePicture string    `json:"profile_picture"`
	BirthMonth     *int      `json:"birth_month,omitempty"`
	BirthDay       *int      `json:"birth_day,omitempty"`
	BirthYear      *int      `json:"birth_year,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// UserSummary is the compact author shape embedded in posts, comments,
// likes and follow listings.
type UserSummary struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Summary returns the compact representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		ProfilePicture: u.ProfilePicture,
	}
}
