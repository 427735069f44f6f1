package models

import "time"

// User rows are provisioned by the wider back office; this service only reads
// them for sign-in and last-seen tracking. Usernames are not unique at the
// schema level, sign-in takes the lowest-id match.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"index;size:255;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	DisplayName  string `gorm:"size:255" json:"displayName"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "rbo_users" }
