package handlers

import (
	"net/http"
	"strings"
	"studyvibe/internal/db"
	"studyvibe/internal/middleware"
	"studyvibe/internal/models"
	"studyvibe/internal/services"
	"studyvibe/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	captchaService *services.CaptchaService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		captchaService: services.NewCaptchaService(),
	}
}

// Captcha 下发注册用的算术验证码，答案存 session
func (h *AuthHandler) Captcha(c *gin.Context) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()
	c.JSON(http.StatusOK, gin.H{"captcha": question})
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Captcha  string `json:"captcha" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	// Validate Captcha
	session := sessions.Default(c)
	expectedAnswer, ok := session.Get("captcha_answer").(int)
	if !ok || utils.StringToInt(req.Captcha) != expectedAnswer {
		Fail(c, http.StatusBadRequest, "验证码错误")
		return
	}
	// Clear captcha after use
	session.Delete("captcha_answer")
	session.Save()

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 {
		Fail(c, http.StatusBadRequest, "邮箱格式不正确")
		return
	}

	if len(req.Password) < 6 {
		Fail(c, http.StatusBadRequest, "密码至少6位")
		return
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		// 没填显示名就用邮箱前缀
		fullName = parts[0]
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "注册失败")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: hash,
		FullName: fullName,
		Avatar:   utils.GetRandomEmoji(), // 随机 emoji 头像
	}
	if err := db.DB.Create(&user).Error; err != nil {
		Fail(c, http.StatusConflict, "邮箱已注册")
		return
	}

	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "参数不完整")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Status(http.StatusNoContent)
}

// Me 返回当前登录用户和未读通知数（LoadUser 已经查过，直接从 context 取）
func (h *AuthHandler) Me(c *gin.Context) {
	user := MustUser(c)
	unread := c.GetInt64(middleware.UnreadCountKey)

	c.JSON(http.StatusOK, gin.H{"user": user, "unread_count": unread})
}
