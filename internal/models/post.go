// Package models contains data models for the social backend.
package models

import "time"

// Post represents a published post owned by a single user.
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// Comment represents a comment on a post. Deletion is allowed to the
// comment author or the owner of the parent post.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	PostID    int64     `json:"post_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
