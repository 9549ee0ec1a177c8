package api

import (
	"sort"
	"strconv"
	"time"

	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MonthlySummaryItem 月度汇总条目
type MonthlySummaryItem struct {
	Year  int     `json:"year"`
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// YearlySummaryItem 年度汇总条目
type YearlySummaryItem struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// SummaryResponse 汇总返回：月度 + 年度
type SummaryResponse struct {
	Monthly []MonthlySummaryItem `json:"monthly"`
	Yearly  []YearlySummaryItem  `json:"yearly"`
}

// CategoryStat 按类别统计条目
type CategoryStat struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// parseSummaryYear 解析可选的 year 查询参数，非法时返回 false
func parseSummaryYear(c *gin.Context) (int, bool, bool) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return 0, false, true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > time.Now().Year() {
		return 0, false, false
	}
	return year, true, true
}

// yearRange 某年的自然日期区间 [1月1日 00:00:00, 12月31日 23:59:59]
func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, 12, 31, 23, 59, 59, 0, time.Local)
	return start, end
}

// sortMonthlySummary 年份倒序、年内按月份自然顺序
func sortMonthlySummary(items []MonthlySummaryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Year != items[j].Year {
			return items[i].Year > items[j].Year
		}
		return models.MonthIndex(items[i].Month) < models.MonthIndex(items[j].Month)
	})
}

// applyPercentages 填充每个类别占总额的百分比，总额为 0 时占比为 0
func applyPercentages(stats []CategoryStat, totalAmount float64) {
	for i := range stats {
		if totalAmount > 0 {
			stats[i].Percentage = (stats[i].Total / totalAmount) * 100
		} else {
			stats[i].Percentage = 0
		}
	}
}

// scopedQuery 当前用户 + 可选年份日期区间的基础查询
func scopedQuery(db *gorm.DB, model interface{}, userID uint, year int, hasYear bool) *gorm.DB {
	query := db.Model(model).Where("user_id = ?", userID)
	if hasYear {
		start, end := yearRange(year)
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	return query
}

// ExpenseSummary 获取支出汇总
// @Summary 获取支出汇总
// @Description 按（年，月）和按年分组的金额合计与笔数。月度按年份倒序、年内按月份自然顺序；
// @Description 只返回有记录的分组，不补零行
// @Tags 支出
// @Produce json
// @Param year query int false "限定年份（如 2024）"
// @Success 200 {object} Response{data=SummaryResponse} "获取成功"
// @Failure 400 {object} Response "年份非法"
// @Failure 401 {object} Response "未授权"
// @Router /expense/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, hasYear, ok := parseSummaryYear(c)
	if !ok {
		BadRequest(c, "Invalid year")
		return
	}

	monthly := make([]MonthlySummaryItem, 0)
	if err := scopedQuery(h.db, &models.Expense{}, userID, year, hasYear).
		Select("year, month, SUM(amount) AS total, COUNT(*) AS count").
		Group("year, month").
		Scan(&monthly).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute summary"))
		return
	}
	sortMonthlySummary(monthly)

	yearly := make([]YearlySummaryItem, 0)
	if err := scopedQuery(h.db, &models.Expense{}, userID, year, hasYear).
		Select("year, SUM(amount) AS total, COUNT(*) AS count").
		Group("year").
		Order("year DESC").
		Scan(&yearly).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute summary"))
		return
	}

	Success(c, SummaryResponse{Monthly: monthly, Yearly: yearly})
}

// debtMonthlyRow 债权月度分组的中间结果，月份为序号
type debtMonthlyRow struct {
	Year       int
	MonthIndex int
	Total      float64
	Count      int64
}

// DebtSummary 获取债权汇总
// @Summary 获取债权汇总
// @Description 月份分组从 date 派生（YEAR/MONTH），输出为月份名称，排序规则与支出汇总一致
// @Tags 债权
// @Produce json
// @Param year query int false "限定年份（如 2024）"
// @Success 200 {object} Response{data=SummaryResponse} "获取成功"
// @Failure 400 {object} Response "年份非法"
// @Failure 401 {object} Response "未授权"
// @Router /debt/summary [get]
func (h *DebtHandler) Summary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, hasYear, ok := parseSummaryYear(c)
	if !ok {
		BadRequest(c, "Invalid year")
		return
	}

	var rows []debtMonthlyRow
	if err := scopedQuery(h.db, &models.Debt{}, userID, year, hasYear).
		Select("YEAR(date) AS year, MONTH(date) AS month_index, SUM(amount) AS total, COUNT(*) AS count").
		Group("YEAR(date), MONTH(date)").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute summary"))
		return
	}

	monthly := make([]MonthlySummaryItem, 0, len(rows))
	for _, row := range rows {
		monthly = append(monthly, MonthlySummaryItem{
			Year:  row.Year,
			Month: models.MonthName(row.MonthIndex),
			Total: row.Total,
			Count: row.Count,
		})
	}
	sortMonthlySummary(monthly)

	yearly := make([]YearlySummaryItem, 0)
	if err := scopedQuery(h.db, &models.Debt{}, userID, year, hasYear).
		Select("YEAR(date) AS year, SUM(amount) AS total, COUNT(*) AS count").
		Group("YEAR(date)").
		Order("year DESC").
		Scan(&yearly).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute summary"))
		return
	}

	Success(c, SummaryResponse{Monthly: monthly, Yearly: yearly})
}

// Statistics 获取支出类别统计
// @Summary 获取支出类别统计
// @Description 按类别分组的金额合计、笔数与占比，可按年份和月份名称过滤。没有记录时各项为 0
// @Tags 支出
// @Produce json
// @Param year query int false "年份过滤（如 2024）"
// @Param month query string false "月份名称过滤（如 March）"
// @Success 200 {object} Response "获取成功"
// @Failure 400 {object} Response "参数非法"
// @Failure 401 {object} Response "未授权"
// @Router /expense/statistics [get]
func (h *ExpenseHandler) Statistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, hasYear, ok := parseSummaryYear(c)
	if !ok {
		BadRequest(c, "Invalid year")
		return
	}
	month := c.Query("month")
	if month != "" && !models.IsValidMonth(month) {
		BadRequest(c, "Invalid month")
		return
	}

	baseQuery := func() *gorm.DB {
		query := scopedQuery(h.db, &models.Expense{}, userID, year, hasYear)
		if month != "" {
			query = query.Where("month = ?", month)
		}
		return query
	}

	var totalAmount float64
	var totalCount int64
	if err := baseQuery().Select("COALESCE(SUM(amount), 0)").Scan(&totalAmount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}
	if err := baseQuery().Count(&totalCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}

	stats := make([]CategoryStat, 0)
	if err := baseQuery().
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Scan(&stats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}
	applyPercentages(stats, totalAmount)

	Success(c, gin.H{
		"total_amount":   totalAmount,
		"total_count":    totalCount,
		"category_stats": stats,
	})
}
