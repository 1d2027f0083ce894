package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"studyvibe/internal/db"
	"studyvibe/internal/models"
	"studyvibe/internal/services"
	"studyvibe/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type HomeworkHandler struct{}

func NewHomeworkHandler() *HomeworkHandler {
	return &HomeworkHandler{}
}

const homeworkListCacheKey = "homework:list:all"

// loadAllHomework 取全量作业（按截止日期升序），带共享缓存
func loadAllHomework() []models.Homework {
	if cached := utils.GetCache().Get(homeworkListCacheKey); cached != nil {
		if items, ok := cached.([]models.Homework); ok {
			return items
		}
	}

	var items []models.Homework
	db.DB.Order("due_date ASC, id ASC").Find(&items)

	utils.GetCache().Set(homeworkListCacheKey, items, 1*time.Minute)
	return items
}

// loadCompletions 取当前用户的完成记录，homework_id -> is_completed
func loadCompletions(userID uint) map[uint]bool {
	completions := make(map[uint]bool)
	if userID == 0 {
		return completions
	}

	var subs []models.Submission
	db.DB.Where("user_id = ?", userID).Find(&subs)
	for _, s := range subs {
		completions[s.HomeworkID] = s.IsCompleted
	}
	return completions
}

type homeworkListItem struct {
	models.Homework
	IsCompleted bool   `json:"is_completed"`
	TimeLeft    string `json:"time_left"`
}

// List 作业列表：?tags=a,b&subject=xx&status=all|active|completed&sort=date|subject|priority
func (h *HomeworkHandler) List(c *gin.Context) {
	user := MustUser(c)

	filters := services.HomeworkFilters{
		Tags:    utils.SplitTags(c.Query("tags")),
		Subject: c.Query("subject"),
		Status:  c.Query("status"),
	}
	sortBy := c.DefaultQuery("sort", services.SortByDate)

	items := loadAllHomework()
	completions := loadCompletions(user.ID)

	// "now" 每次请求快照一次，priority 排序和 time_left 用同一个
	now := time.Now()
	view, err := services.HomeworkView(items, completions, filters, sortBy, now)
	if err != nil {
		Fail(c, http.StatusBadRequest, "不支持的排序方式")
		return
	}

	result := make([]homeworkListItem, len(view))
	completed := 0
	for i, hw := range view {
		result[i] = homeworkListItem{
			Homework:    hw,
			IsCompleted: completions[hw.ID],
			TimeLeft:    services.TimeLeft(hw.DueDate, now),
		}
		if completions[hw.ID] {
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"homework": result,
		"stats": gin.H{
			"total":     len(view),
			"completed": completed,
			"pending":   len(view) - completed,
		},
	})
}

// Stats 当前用户的完成统计：整体完成率 + 按科目拆分
func (h *HomeworkHandler) Stats(c *gin.Context) {
	user := MustUser(c)

	items := loadAllHomework()
	completions := loadCompletions(user.ID)

	c.JSON(http.StatusOK, services.BuildCompletionStats(items, completions))
}

// Meta 所有已使用的标签和科目，供筛选器展示
func (h *HomeworkHandler) Meta(c *gin.Context) {
	items := loadAllHomework()

	tags := make([]string, 0)
	subjects := make([]string, 0, len(items))
	for _, hw := range items {
		tags = append(tags, hw.Tags...)
		subjects = append(subjects, hw.Subject)
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":     lo.Uniq(tags),
		"subjects": lo.Uniq(subjects),
	})
}

// detailPayload 详情页的共享部分，不含当前用户的私有状态
type detailPayload struct {
	Homework        models.Homework         `json:"homework"`
	DescriptionHTML template.HTML           `json:"description_html"`
	SolutionHTML    template.HTML           `json:"solution_html,omitempty"`
	Comments        []*services.CommentNode `json:"comments"`
	CommentCount    int                     `json:"comment_count"`
}

func detailCacheKey(hid string) string {
	return fmt.Sprintf("homework:detail:shared:%s", hid)
}

func buildDetailPayload(hw models.Homework) detailPayload {
	// Load comments（升序取出，树构建依赖这一点）
	var comments []models.Comment
	db.DB.Where("homework_id = ?", hw.ID).Order("created_at ASC").Find(&comments)

	// 批量取作者资料
	userIDs := lo.Uniq(lo.Map(comments, func(c models.Comment, _ int) uint { return c.UserID }))
	profiles := make(map[uint]models.Profile, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		db.DB.Where("id IN ?", userIDs).Find(&users)
		for i := range users {
			profiles[users[i].ID] = users[i].Profile()
		}
	}

	tree := services.BuildCommentTree(comments, profiles)

	payload := detailPayload{
		Homework:        hw,
		DescriptionHTML: utils.RenderMarkdown(hw.Description),
		Comments:        tree,
		CommentCount:    services.CountTreeComments(tree),
	}
	if hw.Solution != "" {
		payload.SolutionHTML = utils.RenderMarkdown(hw.Solution)
	}
	return payload
}

// Detail 作业详情：作业正文 + 评论树（共享缓存），完成状态按当前用户实时查
func (h *HomeworkHandler) Detail(c *gin.Context) {
	user := MustUser(c)
	hid := c.Param("hid")

	var payload detailPayload
	cacheKey := detailCacheKey(hid)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if p, ok := cached.(detailPayload); ok {
			payload = p
		}
	}

	if payload.Homework.ID == 0 {
		var hw models.Homework
		if err := db.DB.Where("hid = ?", hid).First(&hw).Error; err != nil {
			Fail(c, http.StatusNotFound, "作业不存在")
			return
		}
		payload = buildDetailPayload(hw)
		utils.GetCache().Set(cacheKey, payload, 5*time.Minute)
	}

	// 私有状态不进缓存，每次请求实时查
	var submission models.Submission
	var sub *models.Submission
	if err := db.DB.Where("user_id = ? AND homework_id = ?", user.ID, payload.Homework.ID).First(&submission).Error; err == nil {
		sub = &submission
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"homework":         payload.Homework,
		"description_html": payload.DescriptionHTML,
		"solution_html":    payload.SolutionHTML,
		"comments":         payload.Comments,
		"comment_count":    payload.CommentCount,
		"time_left":        services.TimeLeft(payload.Homework.DueDate, now),
		"submission":       sub,
		"is_completed":     sub != nil && sub.IsCompleted,
	})
}

// ToggleCompletion 切换完成状态：首次创建提交记录，之后翻转
func (h *HomeworkHandler) ToggleCompletion(c *gin.Context) {
	user := MustUser(c)
	hid := c.Param("hid")

	var hw models.Homework
	if err := db.DB.Where("hid = ?", hid).First(&hw).Error; err != nil {
		Fail(c, http.StatusNotFound, "作业不存在")
		return
	}

	now := time.Now()
	var submission models.Submission
	err := db.DB.Where("user_id = ? AND homework_id = ?", user.ID, hw.ID).First(&submission).Error
	if err != nil {
		submission = models.Submission{
			UserID:      user.ID,
			HomeworkID:  hw.ID,
			IsCompleted: true,
			SubmittedAt: &now,
		}
		if err := db.DB.Create(&submission).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "更新失败")
			return
		}
	} else {
		submission.IsCompleted = !submission.IsCompleted
		if submission.IsCompleted {
			submission.SubmittedAt = &now
		} else {
			submission.SubmittedAt = nil
		}
		if err := db.DB.Save(&submission).Error; err != nil {
			Fail(c, http.StatusInternalServerError, "更新失败")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"submission": submission})
}
