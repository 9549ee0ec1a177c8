package api

import (
	"net/http"

	"fintrack/config"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{cfg: cfg, db: db}
}

// SignupRequest 注册请求
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=50" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// setSessionCookie 写入会话 Cookie：HTTP-only、SameSite=Lax，release 模式下仅 HTTPS
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.cfg.Server.Mode == "release"
	maxAge := int(h.cfg.JWT.ExpireTime.Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}

// clearSessionCookie 清除会话 Cookie
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.cfg.Server.Mode == "release"
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", secure, true)
}

// Signup 用户注册
// @Summary 用户注册
// @Description 创建新用户并同时下发会话 Cookie（7 天有效）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body SignupRequest true "注册信息"
// @Success 201 {object} Response{data=models.User} "注册成功"
// @Failure 400 {object} Response "参数校验失败或邮箱已注册"
// @Failure 500 {object} Response "服务器错误"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	email := models.NormalizeEmail(req.Email)

	// 检查邮箱是否已注册
	var existingUser models.User
	if err := h.db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		BadRequest(c, "User already exists")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to create user"))
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// 并发注册可能越过上面的检查、撞上唯一索引，同样按已注册处理
		if isDuplicateKeyError(err) {
			BadRequest(c, "User already exists")
			return
		}
		InternalError(c, SafeErrorMessage(err, "Failed to create user"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Name, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to issue session"))
		return
	}
	h.setSessionCookie(c, token)

	Created(c, "Signup successful", user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验邮箱密码并下发会话 Cookie。凭证错误时不区分是邮箱还是密码的问题
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=models.User} "登录成功"
// @Failure 400 {object} Response "缺少字段"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "All fields are required")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", models.NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Name, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to issue session"))
		return
	}
	h.setSessionCookie(c, token)

	Success(c, user)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 清除会话 Cookie，幂等，总是成功
// @Tags 认证
// @Produce json
// @Success 200 {object} Response "已退出"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	SuccessWithMessage(c, "Logged out successfully", nil)
}
