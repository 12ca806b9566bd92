package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// 银行账户类型常量
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCredit   = "credit"
)

// BankAccount 银行账户模型
// 连接/同步为占位实现：仅更新 is_connected 与 last_sync，不会拉取真实银行数据。
type BankAccount struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	UserID              uint           `json:"user_id" gorm:"index;not null"`
	BankName            string         `json:"bank_name" gorm:"size:100;not null"`
	AccountName         string         `json:"account_name" gorm:"size:100;not null"`
	AccountType         string         `json:"account_type" gorm:"size:20;not null"` // checking/savings/credit
	AccountNumberMasked string         `json:"account_number_masked" gorm:"size:30;not null"`
	IsConnected         bool           `json:"is_connected" gorm:"default:false"`
	LastSync            *time.Time     `json:"last_sync,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`
	User                User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (BankAccount) TableName() string {
	return "bank_accounts"
}

// MaskAccountNumber 掩码账号：仅保留末 4 位，其余替换为 *
func MaskAccountNumber(number string) string {
	digits := strings.TrimSpace(number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// IsValidAccountType 校验账户类型
func IsValidAccountType(t string) bool {
	return t == AccountTypeChecking || t == AccountTypeSavings || t == AccountTypeCredit
}
