package models

import (
	"time"

	"gorm.io/gorm"
)

// 交易类型常量
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DefaultCategory 创建交易时未指定类别的默认值
const DefaultCategory = "Uncategorized"

// Transaction 交易记录模型（收入与支出统一存储，通过 Type 区分）
type Transaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	Type        string         `json:"type" gorm:"size:10;not null;index"` // income/expense
	Category    string         `json:"category" gorm:"size:50;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsValidType 校验交易类型
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
