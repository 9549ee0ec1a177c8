package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Expense 支出记录模型
// month/year 为 date 的冗余派生字段，写入时必须与 date 保持一致
type Expense struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	Category      string         `json:"category" gorm:"size:50;not null"`
	Title         string         `json:"title" gorm:"size:100;not null"`
	PaidTo        string         `json:"paidTo" gorm:"size:100;not null;default:''"`
	Amount        float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string         `json:"paymentMethod" gorm:"size:50;not null;default:'Cash'"`
	Date          time.Time      `json:"date" gorm:"not null;index"`
	Month         string         `json:"month" gorm:"size:20;not null"`
	Year          int            `json:"year" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	User          User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// DefaultPaymentMethod 未指定支付方式时的默认值
const DefaultPaymentMethod = "Cash"

// Category 支出类别常量
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transportation"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryInsurances    = "Insurances"
	CategoryMobile        = "Mobile communication"
	CategorySavings       = "Savings"
	CategoryLoanPayment   = "Loan payment"
	CategoryLeisure       = "Leisure"
	CategoryTravel        = "Travel"
	CategoryClothes       = "Clothes"
	CategorySubscription  = "Media subscription"
	CategoryOther         = "Other Expenses"
)

// GetCategories 获取所有支出类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryInsurances,
		CategoryMobile,
		CategorySavings,
		CategoryLoanPayment,
		CategoryLeisure,
		CategoryTravel,
		CategoryClothes,
		CategorySubscription,
		CategoryOther,
	}
}

// IsValidCategory 判断类别是否在固定类别集合内
func IsValidCategory(name string) bool {
	for _, c := range GetCategories() {
		if c == name {
			return true
		}
	}
	return false
}

// monthNames 自然月英文名，下标 0 对应 January
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNames 获取全部月份名称
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames)
	return names
}

// MonthName 月份序号（1-12）转名称，越界返回空串
func MonthName(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return monthNames[index-1]
}

// MonthIndex 月份名称转序号（1-12），未知名称返回 0
func MonthIndex(name string) int {
	for i, m := range monthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// IsValidMonth 判断是否为合法月份名称
func IsValidMonth(name string) bool {
	return MonthIndex(name) > 0
}

// RoundAmount 金额统一保留两位小数，入库列为 decimal(10,2)
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
