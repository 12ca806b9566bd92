package models

import (
	"time"

	"gorm.io/gorm"
)

// 收入来源发放频率常量
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiWeekly  = "bi-weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnually  = "annually"
)

// 收入来源类型常量
const (
	SourceTypeManual   = "manual"
	SourceTypeBank     = "bank"
	SourceTypeEmployer = "employer"
)

// IncomeSource 收入来源模型（工资、副业等周期性收入）
type IncomeSource struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	Name            string         `json:"name" gorm:"size:100;not null"`
	Amount          float64        `json:"amount" gorm:"type:decimal(10,2);not null"` // 单次发放金额
	Frequency       string         `json:"frequency" gorm:"size:20;not null"`
	SourceType      string         `json:"source_type" gorm:"size:20;not null;default:manual"`
	BankAccountID   *uint          `json:"bank_account_id,omitempty" gorm:"index"` // 软引用，可为空
	IsActive        bool           `json:"is_active" gorm:"default:true;index"`
	NextPaymentDate *time.Time     `json:"next_payment_date,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	User            User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (IncomeSource) TableName() string {
	return "income_sources"
}

// GetFrequencies 获取所有发放频率
func GetFrequencies() []string {
	return []string{
		FrequencyWeekly,
		FrequencyBiWeekly,
		FrequencyMonthly,
		FrequencyQuarterly,
		FrequencyAnnually,
	}
}

// IsValidFrequency 校验发放频率
func IsValidFrequency(f string) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// IsValidSourceType 校验来源类型
func IsValidSourceType(t string) bool {
	return t == SourceTypeManual || t == SourceTypeBank || t == SourceTypeEmployer
}
