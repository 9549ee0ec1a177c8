package api

import (
	"strconv"
	"strings"

	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DebtHandler 债权记录处理器
type DebtHandler struct {
	db *gorm.DB
}

// NewDebtHandler 创建债权记录处理器
func NewDebtHandler(db *gorm.DB) *DebtHandler {
	return &DebtHandler{db: db}
}

// CreateDebtRequest 创建债权请求
type CreateDebtRequest struct {
	Name   string   `json:"name" binding:"required" example:"Bob"`
	Amount *float64 `json:"amount" binding:"required,gte=0" example:"120"`
	Date   string   `json:"date" binding:"required" example:"2024-03-15"`
	Status string   `json:"status" binding:"omitempty,oneof=unpaid paid" example:"unpaid"`
}

// UpdateDebtRequest 更新债权请求，全部字段可选
type UpdateDebtRequest struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
	Date   *string  `json:"date"`
	Status *string  `json:"status" binding:"omitempty,oneof=unpaid paid"`
}

// Create 创建债权记录
// @Summary 创建债权记录
// @Description 状态缺省为 unpaid，归属人强制为当前登录用户
// @Tags 债权
// @Accept json
// @Produce json
// @Param request body CreateDebtRequest true "债权信息"
// @Success 201 {object} Response{data=models.Debt} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /debt [post]
func (h *DebtHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Debtor name is required"})
	}

	date, fe := validateDate(req.Date)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	status := req.Status
	if status == "" {
		status = models.DebtStatusUnpaid
	}

	debt := models.Debt{
		UserID: userID,
		Name:   name,
		Amount: models.RoundAmount(*req.Amount),
		Date:   date,
		Status: status,
	}

	if err := h.db.Create(&debt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to create debt"))
		return
	}

	Created(c, "Debt created successfully", debt)
}

// List 获取债权记录列表
// @Summary 获取债权记录列表
// @Description 仅返回当前用户的记录，按日期倒序
// @Tags 债权
// @Produce json
// @Success 200 {object} Response{data=[]models.Debt} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /debt [get]
func (h *DebtHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	debts := make([]models.Debt, 0)
	if err := h.db.Where("user_id = ?", userID).Order("date DESC").Find(&debts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to fetch debts"))
		return
	}

	Success(c, debts)
}

// Update 更新债权记录
// @Summary 更新债权记录
// @Description 部分更新：只校验并应用提交的字段。记录不存在或不属于当前用户统一返回 404
// @Tags 债权
// @Accept json
// @Produce json
// @Param id path int true "债权记录ID"
// @Param request body UpdateDebtRequest true "债权信息"
// @Success 200 {object} Response{data=models.Debt} "更新成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /debt/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Debt not found or not authorized")
		return
	}

	var debt models.Debt
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&debt).Error; err != nil {
		NotFound(c, "Debt not found or not authorized")
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	var errs []FieldError
	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs = append(errs, FieldError{Field: "name", Message: "Debtor name cannot be empty"})
		} else {
			updates["name"] = name
		}
	}
	if req.Amount != nil {
		updates["amount"] = models.RoundAmount(*req.Amount)
	}
	if req.Date != nil {
		date, fe := validateDate(*req.Date)
		if fe != nil {
			errs = append(errs, *fe)
		} else {
			updates["date"] = date
		}
	}
	if req.Status != nil {
		// binding 已限定 oneof=unpaid paid
		updates["status"] = *req.Status
	}

	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.Model(&debt).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to update debt"))
			return
		}
	}

	if err := h.db.First(&debt, debt.ID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to update debt"))
		return
	}
	SuccessWithMessage(c, "Debt updated successfully", debt)
}

// Delete 删除债权记录
// @Summary 删除债权记录
// @Tags 债权
// @Produce json
// @Param id path int true "债权记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /debt/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Debt not found or not authorized")
		return
	}

	var debt models.Debt
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&debt).Error; err != nil {
		NotFound(c, "Debt not found or not authorized")
		return
	}

	if err := h.db.Delete(&debt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to delete debt"))
		return
	}

	SuccessWithMessage(c, "Debt deleted successfully", nil)
}
