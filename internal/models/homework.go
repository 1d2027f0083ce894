package models

import (
	"time"
)

type Homework struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Hid         string    `gorm:"uniqueIndex;size:8;not null" json:"hid"`
	Title       string    `gorm:"not null" json:"title"`
	Subject     string    `gorm:"size:100;not null;index" json:"subject"`
	Description string    `gorm:"type:text" json:"description"`
	Solution    string    `gorm:"type:text" json:"solution,omitempty"` // 可选的参考解答
	DueDate     time.Time `gorm:"not null;index" json:"due_date"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`  // 为空时视为无标签
	Files       []string  `gorm:"serializer:json" json:"files"` // 附件的存储路径
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Submission 记录某个用户对某个作业的完成状态。
// 首次切换时创建，之后只翻转 IsCompleted，从不删除。
type Submission struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index;uniqueIndex:idx_user_homework" json:"user_id"`
	HomeworkID  uint       `gorm:"not null;index;uniqueIndex:idx_user_homework" json:"homework_id"`
	Homework    Homework   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	SubmittedAt *time.Time `json:"submitted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
