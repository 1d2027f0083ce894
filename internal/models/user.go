package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`                           // Hash
	FullName  string    `gorm:"size:100" json:"full_name"`                   // 显示名称
	Avatar    string    `gorm:"default:🌱" json:"avatar"`                     // emoji 头像
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}

// Profile 评论展示用的作者快照
type Profile struct {
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// Profile returns the display snapshot attached to comments.
func (u *User) Profile() Profile {
	return Profile{FullName: u.FullName, Avatar: u.Avatar}
}
