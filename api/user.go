package api

import (
	"strings"

	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler 用户资料处理器
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler 创建用户资料处理器
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// UpdateProfileRequest 更新资料请求，字段均可选，未提交的字段保持不变
type UpdateProfileRequest struct {
	Name     *string `json:"name" example:"Alice"`
	Email    *string `json:"email" binding:"omitempty,email" example:"alice@example.com"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72" example:"newpassword123"`
}

// GetProfile 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, "Unauthorized: User not found")
		return
	}
	Success(c, user)
}

// UpdateProfile 更新当前用户资料
// @Summary 更新当前用户资料
// @Description 支持更新姓名、邮箱、密码，只校验并更新提交的字段
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "资料信息"
// @Success 200 {object} Response{data=models.User} "更新成功"
// @Failure 400 {object} Response "参数校验失败或邮箱已被占用"
// @Failure 401 {object} Response "未授权"
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, "Unauthorized: User not found")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			ValidationFailed(c, []FieldError{{Field: "name", Message: "Name cannot be empty"}})
			return
		}
		updates["name"] = name
	}

	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		// 邮箱唯一性检查，排除自己
		var other models.User
		if err := h.db.Where("email = ? AND id <> ?", email, user.ID).First(&other).Error; err == nil {
			BadRequest(c, "Email already in use")
			return
		}
		updates["email"] = email
	}

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to update profile"))
			return
		}
		updates["password"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		if err := h.db.Model(user).Updates(updates).Error; err != nil {
			// 并发修改邮箱撞上唯一索引时同样按占用处理
			if isDuplicateKeyError(err) {
				BadRequest(c, "Email already in use")
				return
			}
			InternalError(c, SafeErrorMessage(err, "Failed to update profile"))
			return
		}
	}

	// 返回更新后的资料
	var fresh models.User
	if err := h.db.First(&fresh, user.ID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to update profile"))
		return
	}
	SuccessWithMessage(c, "Profile updated successfully", fresh)
}
