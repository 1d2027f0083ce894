package handlers

import (
	"net/http"
	"strings"

	"studyvibe/internal/db"
	"studyvibe/internal/models"
	"studyvibe/internal/services"
	"studyvibe/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	mailService *services.MailService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		mailService: services.NewMailService(),
	}
}

type createCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// Create 发表评论或回复
func (h *CommentHandler) Create(c *gin.Context) {
	user := MustUser(c)
	hid := c.Param("hid")

	var hw models.Homework
	if err := db.DB.Where("hid = ?", hid).First(&hw).Error; err != nil {
		Fail(c, http.StatusNotFound, "作业不存在")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "评论内容不能为空")
		return
	}

	content := strings.TrimSpace(utils.SanitizeText(req.Content))
	if content == "" {
		Fail(c, http.StatusBadRequest, "评论内容不能为空")
		return
	}

	// 回复时父评论必须存在且属于同一个作业。
	// 父评论自己也可能是回复——提交时不拦，重建树时只渲染两级。
	var parentComment *models.Comment
	if req.ParentID != nil {
		var parent models.Comment
		if err := db.DB.Preload("User").First(&parent, *req.ParentID).Error; err != nil || parent.HomeworkID != hw.ID {
			Fail(c, http.StatusBadRequest, "被回复的评论不存在")
			return
		}
		parentComment = &parent
	}

	comment := models.Comment{
		Cid:        utils.RandStringBytesMaskImpr(8),
		HomeworkID: hw.ID,
		UserID:     user.ID,
		ParentID:   req.ParentID,
		Content:    content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "评论失败")
		return
	}

	// 主动失效详情页缓存
	utils.GetCache().Delete(detailCacheKey(hw.Hid))

	// 回复他人评论时写通知，再发邮件提醒
	if parentComment != nil && parentComment.UserID != user.ID {
		actorID := user.ID
		notification := models.Notification{
			UserID:  parentComment.UserID,
			ActorID: &actorID,
			Type:    models.NotificationTypeReplyComment,
			Title:   "收到新回复",
			Message: user.FullName + " 在作业《" + hw.Title + "》中回复了您的评论",
		}
		db.DB.Create(&notification)

		h.mailService.SendReplyNotification(
			parentComment.User.Email,
			user.FullName,
			hw.Title,
			content,
			parentComment.Content,
		)
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Delete 删除自己的评论（硬删除）。
// 已有回复不级联删，下次重建树时按孤儿规则丢弃。
func (h *CommentHandler) Delete(c *gin.Context) {
	user := MustUser(c)
	cid := c.Param("cid")

	var comment models.Comment
	if err := db.DB.Where("cid = ?", cid).First(&comment).Error; err != nil {
		Fail(c, http.StatusNotFound, "评论不存在")
		return
	}

	// 只允许删除自己的评论
	if comment.UserID != user.ID {
		Fail(c, http.StatusForbidden, "只能删除自己的评论")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "删除失败")
		return
	}

	var hw models.Homework
	if err := db.DB.First(&hw, comment.HomeworkID).Error; err == nil {
		utils.GetCache().Delete(detailCacheKey(hw.Hid))
	}

	c.Status(http.StatusNoContent)
}
