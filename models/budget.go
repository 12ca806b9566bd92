package models

import (
	"time"

	"gorm.io/gorm"
)

// 预算周期常量（仅作展示用途，不参与聚合计算）
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Budget 预算模型
// Category 为空表示"总预算"，覆盖所有支出类别；
// 注意空类别与字面量 "Uncategorized" 含义不同，后者是一个普通类别。
type Budget struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Period    string         `json:"period" gorm:"size:10;not null;default:monthly"` // weekly/monthly
	StartDate time.Time      `json:"start_date" gorm:"not null"`
	Category  string         `json:"category" gorm:"size:50"` // 空 = 总预算
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// IsOverall 是否为总预算（无类别）
func (b Budget) IsOverall() bool {
	return b.Category == ""
}

// IsValidPeriod 校验预算周期
func IsValidPeriod(p string) bool {
	return p == PeriodWeekly || p == PeriodMonthly
}
