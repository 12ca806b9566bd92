package api

import (
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/summary"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 汇总统计处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建汇总统计处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// loadCollections 一次性加载当前用户的全部集合，供聚合引擎在内存中计算。
// 排序与前端获取口径一致：交易按日期倒序，其余按创建时间倒序。
func loadCollections(userID uint) ([]models.Transaction, []models.Budget, []models.IncomeSource, error) {
	var transactions []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, nil, nil, err
	}

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&budgets).Error; err != nil {
		return nil, nil, nil, err
	}

	var sources []models.IncomeSource
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&sources).Error; err != nil {
		return nil, nil, nil, err
	}

	return transactions, budgets, sources, nil
}

// GetOverview 获取财务总览
// @Summary 获取财务总览
// @Description 仪表盘数据：收支总额、净余额、预算余额、按类别支出、最近5条交易。
// @Description 净余额 = 交易收入 + 收入来源月均收入 - 支出总额；同一笔周期性收入若同时配置为
// @Description 收入来源并记录为收入交易，会被重复计入（沿用既有产品口径）。
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=summary.Overview} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetOverview(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	transactions, budgets, sources, err := loadCollections(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, summary.BuildOverview(transactions, budgets, sources))
}

// GetMonthlySeries 获取近6个月收支序列
// @Summary 获取近6个月收支序列
// @Description 覆盖 [当前月-5, 当前月] 的 6 个月份桶，支出按固定关键字规则拆分为 7 个子类，适合绘制柱状图。没有交易的月份返回全零桶。
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]summary.MonthBucket} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary/monthly [get]
func (h *SummaryHandler) GetMonthlySeries(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var transactions []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, summary.MonthlySeries(transactions, time.Now()))
}
