package handlers

import (
	"net/http"

	"studyvibe/internal/db"
	"studyvibe/internal/models"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// List 整张课程表，按 (星期几, 第几节) 升序
func (h *ScheduleHandler) List(c *gin.Context) {
	var lessons []models.Lesson
	db.DB.Order("day_of_week ASC, lesson_number ASC").Find(&lessons)

	c.JSON(http.StatusOK, gin.H{"schedule": lessons})
}

type upsertLessonRequest struct {
	DayOfWeek    int    `json:"day_of_week" binding:"required"`
	LessonNumber int    `json:"lesson_number" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	TeacherName  string `json:"teacher_name"`
	RoomNumber   string `json:"room_number"`
	StartTime    string `json:"start_time"`
}

// Upsert 管理员写入某个格子的课程，已有则覆盖
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	var req upsertLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	if req.DayOfWeek < 1 || req.DayOfWeek > 7 || req.LessonNumber < 1 {
		Fail(c, http.StatusBadRequest, "课程位置不合法")
		return
	}

	var lesson models.Lesson
	err := db.DB.Where("day_of_week = ? AND lesson_number = ?", req.DayOfWeek, req.LessonNumber).First(&lesson).Error
	if err != nil {
		lesson = models.Lesson{
			DayOfWeek:    req.DayOfWeek,
			LessonNumber: req.LessonNumber,
		}
	}

	lesson.Subject = req.Subject
	lesson.TeacherName = req.TeacherName
	lesson.RoomNumber = req.RoomNumber
	lesson.StartTime = req.StartTime

	if err := db.DB.Save(&lesson).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "保存失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

// Delete 管理员清空某个格子
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var lesson models.Lesson
	if err := db.DB.First(&lesson, id).Error; err != nil {
		Fail(c, http.StatusNotFound, "课程不存在")
		return
	}

	db.DB.Delete(&lesson)

	c.Status(http.StatusNoContent)
}
