package models

import (
	"time"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Cid        string    `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	HomeworkID uint      `gorm:"not null;index" json:"homework_id"`
	Homework   Homework  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID   *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	// 评论不支持编辑，删除为硬删除；被删评论的回复在重建树时作为孤儿被丢弃
}
