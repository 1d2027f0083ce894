package models

import (
	"time"
)

// Lesson 班级课程表中的一节课，(星期几, 第几节) 唯一
type Lesson struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek    int       `gorm:"not null;uniqueIndex:idx_day_number" json:"day_of_week"` // 1=Monday .. 7=Sunday
	LessonNumber int       `gorm:"not null;uniqueIndex:idx_day_number" json:"lesson_number"`
	Subject      string    `gorm:"size:100;not null" json:"subject"`
	TeacherName  string    `gorm:"size:100" json:"teacher_name"`
	RoomNumber   string    `gorm:"size:20" json:"room_number"`
	StartTime    string    `gorm:"size:5" json:"start_time"` // HH:MM
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
