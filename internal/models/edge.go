// Package models contains data models for the social backend.
package models

import "time"

// Like is the (user, post) edge. The composite primary key is the
// uniqueness authority: at most one like per user per post, enforced by
// the store even under concurrent inserts.
type Like struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID    int64     `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Like model.
func (Like) TableName() string {
	return "likes"
}

// Follow is the directed (follower, following) edge between two users.
// Self-loops are rejected in the service layer; duplicates by the
// composite primary key.
type Follow struct {
	FollowerID  int64     `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowingID int64     `json:"following_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Follow model.
func (Follow) TableName() string {
	return "follows"
}
