package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// Currency/DateFormat/Theme 仅影响前端展示格式，不参与任何聚合计算。
type User struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Username   string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password   string         `json:"-" gorm:"size:255;not null"`
	Email      string         `json:"email" gorm:"size:100"`
	Currency   string         `json:"currency" gorm:"size:10;default:USD"`
	DateFormat string         `json:"date_format" gorm:"size:20;default:MM/DD/YYYY"`
	Theme      string         `json:"theme" gorm:"size:10;default:system"` // light/dark/system
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
