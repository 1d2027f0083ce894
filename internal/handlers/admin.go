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

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type homeworkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description"`
	Solution    string   `json:"solution"`
	DueDate     string   `json:"due_date" binding:"required"` // YYYY-MM-DD
	Tags        []string `json:"tags"`
	Files       []string `json:"files"`
}

func (r *homeworkRequest) parseDueDate() (time.Time, bool) {
	due, err := time.Parse("2006-01-02", r.DueDate)
	return due, err == nil
}

// normalizeTags 去空格、去空项、去重
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func invalidateHomeworkCaches(hid string) {
	utils.GetCache().Delete(homeworkListCacheKey)
	utils.GetCache().Delete(detailCacheKey(hid))
}

// CreateHomework 发布新作业
func (h *AdminHandler) CreateHomework(c *gin.Context) {
	var req homeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	due, ok := req.parseDueDate()
	if !ok {
		Fail(c, http.StatusBadRequest, "截止日期格式不正确")
		return
	}

	hw := models.Homework{
		Hid:         utils.RandStringBytesMaskImpr(8),
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		Solution:    req.Solution,
		DueDate:     due,
		Tags:        normalizeTags(req.Tags),
		Files:       req.Files,
	}
	if err := db.DB.Create(&hw).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "发布失败")
		return
	}

	invalidateHomeworkCaches(hw.Hid)

	c.JSON(http.StatusCreated, gin.H{"homework": hw})
}

// UpdateHomework 编辑作业
func (h *AdminHandler) UpdateHomework(c *gin.Context) {
	hid := c.Param("hid")

	var hw models.Homework
	if err := db.DB.Where("hid = ?", hid).First(&hw).Error; err != nil {
		Fail(c, http.StatusNotFound, "作业不存在")
		return
	}

	var req homeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	due, ok := req.parseDueDate()
	if !ok {
		Fail(c, http.StatusBadRequest, "截止日期格式不正确")
		return
	}

	hw.Title = req.Title
	hw.Subject = req.Subject
	hw.Description = req.Description
	hw.Solution = req.Solution
	hw.DueDate = due
	hw.Tags = normalizeTags(req.Tags)
	hw.Files = req.Files

	if err := db.DB.Save(&hw).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "保存失败")
		return
	}

	invalidateHomeworkCaches(hw.Hid)

	c.JSON(http.StatusOK, gin.H{"homework": hw})
}

// DeleteHomework 删除作业，提交记录和评论级联删除
func (h *AdminHandler) DeleteHomework(c *gin.Context) {
	hid := c.Param("hid")

	var hw models.Homework
	if err := db.DB.Where("hid = ?", hid).First(&hw).Error; err != nil {
		Fail(c, http.StatusNotFound, "作业不存在")
		return
	}

	if err := db.DB.Delete(&hw).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "删除失败")
		return
	}

	invalidateHomeworkCaches(hw.Hid)

	c.Status(http.StatusNoContent)
}

type broadcastRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Broadcast 给全部用户发系统通知，每人一条
func (h *AdminHandler) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	var userIDs []uint
	db.DB.Model(&models.User{}).Pluck("id", &userIDs)

	notifications := make([]models.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		notifications = append(notifications, models.Notification{
			UserID:  uid,
			Type:    models.NotificationTypeSystem,
			Title:   req.Title,
			Message: req.Message,
		})
	}

	if len(notifications) > 0 {
		if err := db.DB.CreateInBatches(notifications, 200).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "发送失败")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"sent": len(notifications)})
}
