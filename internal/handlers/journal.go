package handlers

import (
	"net/http"
	"strings"
	"time"

	"studyvibe/internal/db"
	"studyvibe/internal/models"
	"studyvibe/internal/utils"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct{}

func NewJournalHandler() *JournalHandler {
	return &JournalHandler{}
}

// parseEntryDate 校验 ?date= 参数，缺省为今天
func parseEntryDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", false
	}
	return date, true
}

// GetEntry 取某天的随笔和任务列表
func (h *JournalHandler) GetEntry(c *gin.Context) {
	user := MustUser(c)

	date, ok := parseEntryDate(c)
	if !ok {
		Fail(c, http.StatusBadRequest, "日期格式不正确")
		return
	}

	var entry models.JournalEntry
	var entryPtr *models.JournalEntry
	if err := db.DB.Where("user_id = ? AND entry_date = ?", user.ID, date).First(&entry).Error; err == nil {
		entryPtr = &entry
	}

	var todos []models.JournalTodo
	db.DB.Where("user_id = ? AND entry_date = ?", user.ID, date).Order("created_at ASC").Find(&todos)

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"entry": entryPtr,
		"todos": todos,
	})
}

type saveEntryRequest struct {
	Content string `json:"content"`
}

// SaveEntry 保存某天的随笔，存在则更新
func (h *JournalHandler) SaveEntry(c *gin.Context) {
	user := MustUser(c)

	date, ok := parseEntryDate(c)
	if !ok {
		Fail(c, http.StatusBadRequest, "日期格式不正确")
		return
	}

	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}
	content := utils.SanitizeText(req.Content)

	var entry models.JournalEntry
	err := db.DB.Where("user_id = ? AND entry_date = ?", user.ID, date).First(&entry).Error
	if err != nil {
		entry = models.JournalEntry{
			UserID:    user.ID,
			EntryDate: date,
			Content:   content,
		}
		if err := db.DB.Create(&entry).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "保存失败")
			return
		}
	} else {
		entry.Content = content
		if err := db.DB.Save(&entry).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "保存失败")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

type createTodoRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateTodo 在某天的任务清单里加一项
func (h *JournalHandler) CreateTodo(c *gin.Context) {
	user := MustUser(c)

	date, ok := parseEntryDate(c)
	if !ok {
		Fail(c, http.StatusBadRequest, "日期格式不正确")
		return
	}

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "任务内容不能为空")
		return
	}

	title := strings.TrimSpace(utils.SanitizeText(req.Title))
	if title == "" {
		Fail(c, http.StatusBadRequest, "任务内容不能为空")
		return
	}

	todo := models.JournalTodo{
		UserID:    user.ID,
		EntryDate: date,
		Title:     title,
	}
	if err := db.DB.Create(&todo).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "添加失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": todo})
}

// ToggleTodo 翻转任务完成状态
func (h *JournalHandler) ToggleTodo(c *gin.Context) {
	user := MustUser(c)
	id := c.Param("id")

	var todo models.JournalTodo
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&todo).Error; err != nil {
		Fail(c, http.StatusNotFound, "任务不存在")
		return
	}

	todo.IsCompleted = !todo.IsCompleted
	if err := db.DB.Save(&todo).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

// DeleteTodo 删除任务
func (h *JournalHandler) DeleteTodo(c *gin.Context) {
	user := MustUser(c)
	id := c.Param("id")

	var todo models.JournalTodo
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&todo).Error; err != nil {
		Fail(c, http.StatusNotFound, "任务不存在")
		return
	}

	db.DB.Delete(&todo)

	c.Status(http.StatusNoContent)
}
