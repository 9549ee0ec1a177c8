package api

import (
	"strconv"
	"strings"

	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct {
	db *gorm.DB
}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// CreateExpenseRequest 创建支出请求
// amount 用指针以区分「未提交」和合法的 0
type CreateExpenseRequest struct {
	Category      string   `json:"category" binding:"required" example:"Food"`
	Title         string   `json:"title" binding:"required" example:"Lunch"`
	PaidTo        *string  `json:"paidTo" example:"Corner Deli"`
	Amount        *float64 `json:"amount" binding:"required,gte=0" example:"250"`
	PaymentMethod string   `json:"paymentMethod" example:"Cash"`
	Date          string   `json:"date" binding:"required" example:"2024-03-15"`
	Month         string   `json:"month" binding:"required" example:"March"`
	Year          int      `json:"year" binding:"required" example:"2024"`
}

// UpdateExpenseRequest 更新支出请求，全部字段可选
type UpdateExpenseRequest struct {
	Category      *string  `json:"category"`
	Title         *string  `json:"title"`
	PaidTo        *string  `json:"paidTo"`
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0"`
	PaymentMethod *string  `json:"paymentMethod"`
	Date          *string  `json:"date"`
	Month         *string  `json:"month"`
	Year          *int     `json:"year"`
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 归属人强制为当前登录用户；month/year 必须与 date 的自然月、年份一致
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 201 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /expense [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	var errs []FieldError

	category := strings.TrimSpace(req.Category)
	if category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "Category is required"})
	} else if !models.IsValidCategory(category) {
		errs = append(errs, FieldError{Field: "category", Message: "Invalid category"})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}

	if !models.IsValidMonth(req.Month) {
		errs = append(errs, FieldError{Field: "month", Message: "Invalid month"})
	}
	if fe := validateYearValue(req.Year); fe != nil {
		errs = append(errs, *fe)
	}

	date, fe := validateDate(req.Date)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	// 派生字段一致性：提交的 month/year 必须与 date 吻合
	if fe := checkDateConsistency(date, &req.Month, &req.Year); fe != nil {
		ValidationFailed(c, []FieldError{*fe})
		return
	}

	paidTo := ""
	if req.PaidTo != nil {
		paidTo = strings.TrimSpace(*req.PaidTo)
	}
	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}

	expense := models.Expense{
		UserID:        userID,
		Category:      category,
		Title:         title,
		PaidTo:        paidTo,
		Amount:        models.RoundAmount(*req.Amount),
		PaymentMethod: paymentMethod,
		Date:          date,
		Month:         req.Month,
		Year:          req.Year,
	}

	// 单次原子写入即可持久化全部字段，无需二次补写 paidTo
	if err := h.db.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to create expense"))
		return
	}

	Created(c, "Expense created successfully", expense)
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 仅返回当前用户的记录，按日期倒序，支持按年份和月份名称过滤
// @Tags 支出
// @Produce json
// @Param year query int false "年份过滤（如 2024）"
// @Param month query string false "月份名称过滤（如 March）"
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /expense [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := h.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			query = query.Where("year = ?", year)
		}
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}

	expenses := make([]models.Expense, 0)
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to fetch expenses"))
		return
	}

	Success(c, expenses)
}

// Update 更新支出记录
// @Summary 更新支出记录
// @Description 部分更新：只校验并应用提交的字段。date 变化时 month/year 随之重新派生；
// @Description 提交的 month/year 与生效日期不符时拒绝。记录不存在或不属于当前用户统一返回 404
// @Tags 支出
// @Accept json
// @Produce json
// @Param id path int true "支出记录ID"
// @Param request body UpdateExpenseRequest true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /expense/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Expense not found or not authorized")
		return
	}

	// 归属过滤：查不到和不属于当前用户对外表现一致
	var expense models.Expense
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "Expense not found or not authorized")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationFailed(c, BindingErrors(err))
		return
	}

	var errs []FieldError
	updates := make(map[string]interface{})

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			errs = append(errs, FieldError{Field: "category", Message: "Category cannot be empty"})
		} else if !models.IsValidCategory(category) {
			errs = append(errs, FieldError{Field: "category", Message: "Invalid category"})
		} else {
			updates["category"] = category
		}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "Title cannot be empty"})
		} else {
			updates["title"] = title
		}
	}
	if req.PaidTo != nil {
		// 显式空串是合法值，表示清空
		updates["paid_to"] = strings.TrimSpace(*req.PaidTo)
	}
	if req.Amount != nil {
		updates["amount"] = models.RoundAmount(*req.Amount)
	}
	if req.PaymentMethod != nil {
		paymentMethod := strings.TrimSpace(*req.PaymentMethod)
		if paymentMethod == "" {
			paymentMethod = models.DefaultPaymentMethod
		}
		updates["payment_method"] = paymentMethod
	}

	effectiveDate := expense.Date
	if req.Date != nil {
		date, fe := validateDate(*req.Date)
		if fe != nil {
			errs = append(errs, *fe)
		} else {
			effectiveDate = date
			// month/year 随日期重新派生，保持一致性
			updates["date"] = date
			updates["month"] = models.MonthName(int(date.Month()))
			updates["year"] = date.Year()
		}
	}
	if req.Month != nil && !models.IsValidMonth(*req.Month) {
		errs = append(errs, FieldError{Field: "month", Message: "Invalid month"})
	}
	if req.Year != nil {
		if fe := validateYearValue(*req.Year); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	if fe := checkDateConsistency(effectiveDate, req.Month, req.Year); fe != nil {
		ValidationFailed(c, []FieldError{*fe})
		return
	}

	if len(updates) > 0 {
		if err := h.db.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to update expense"))
			return
		}
	}

	// 重新获取更新后的记录
	if err := h.db.First(&expense, expense.ID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to update expense"))
		return
	}
	SuccessWithMessage(c, "Expense updated successfully", expense)
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Tags 支出
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /expense/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Expense not found or not authorized")
		return
	}

	var expense models.Expense
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "Expense not found or not authorized")
		return
	}

	if err := h.db.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to delete expense"))
		return
	}

	SuccessWithMessage(c, "Expense deleted successfully", nil)
}
