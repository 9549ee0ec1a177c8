package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// DebtStatusUnpaid 未收回
	DebtStatusUnpaid = "unpaid"
	// DebtStatusPaid 已收回
	DebtStatusPaid = "paid"
)

// Debt 债权记录模型（他人欠当前用户的款项）
type Debt struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date      time.Time      `json:"date" gorm:"not null;index"`
	Status    string         `json:"status" gorm:"size:20;not null;default:'unpaid'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Debt) TableName() string {
	return "debts"
}

// IsValidDebtStatus 判断状态是否合法
func IsValidDebtStatus(status string) bool {
	return status == DebtStatusUnpaid || status == DebtStatusPaid
}
