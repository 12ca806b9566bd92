package api

import (
	"strconv"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建交易请求
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"99.99"`
	Description string  `json:"description" binding:"required" example:"Lunch"`
	Date        string  `json:"date" binding:"required" example:"2025-06-15"`
	Type        string  `json:"type" binding:"required" example:"expense"` // income/expense
	Category    string  `json:"category" example:"Food"`                   // 缺省为 Uncategorized
}

// UpdateTransactionRequest 更新交易请求（仅更新传入的字段）
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"omitempty,gt=0" example:"99.99"`
	Description string  `json:"description" example:"Lunch"`
	Date        string  `json:"date" example:"2025-06-15"`
	Type        string  `json:"type" example:"expense"`
	Category    string  `json:"category" example:"Food"`
}

// TransactionListRequest 交易列表请求
type TransactionListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Type      string `form:"type" example:"expense"`
	Category  string `form:"category" example:"Food"`
	StartDate string `form:"start_date" example:"2025-01-01"`
	EndDate   string `form:"end_date" example:"2025-12-31"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条新的收入或支出记录。未指定类别时默认为 Uncategorized。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidType(req.Type) {
		BadRequest(c, "type 取值错误，可选值：income、expense")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	// 类别缺省值：空类别统一落为 Uncategorized
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	transaction := models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Type:        req.Type,
		Category:    category,
	}

	if err := database.DB.Create(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", transaction)
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 获取当前用户的交易记录列表，按日期倒序，支持分页和筛选
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param type query string false "类型筛选 income/expense"
// @Param category query string false "类别筛选"
// @Param start_date query string false "开始日期 (2025-01-01)"
// @Param end_date query string false "结束日期 (2025-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			query = query.Where("date >= ?", t)
		}
	}
	if req.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			// 包含结束日期当天
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("date <= ?", t)
		}
	}

	// 获取总数
	var total int64
	query.Count(&total)

	// 获取列表
	var transactions []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("date DESC").Offset(offset).Limit(req.PageSize).Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     transactions,
	})
}

// Get 获取单条交易记录
// @Summary 获取单条交易记录
// @Description 根据ID获取交易记录详情
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var transaction models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, transaction)
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 更新指定的交易记录，仅覆盖传入的字段，其余字段保持原值
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Param request body UpdateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var transaction models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 更新字段：仅提供了新值的字段才覆盖
	updates := make(map[string]interface{})
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Type != "" {
		if !models.IsValidType(req.Type) {
			BadRequest(c, "type 取值错误，可选值：income、expense")
			return
		}
		updates["type"] = req.Type
	}
	if req.Category != "" {
		updates["category"] = strings.TrimSpace(req.Category)
	}
	if req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["date"] = date
	}

	if err := database.DB.Model(&transaction).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&transaction, transaction.ID)
	SuccessWithMessage(c, "更新成功", transaction)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定的交易记录
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var transaction models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// GetStatistics 获取交易统计
// @Summary 获取交易统计
// @Description 获取指定时间范围内的收支统计与按类别汇总（SQL 聚合，适合大数据量场景）
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param type query string false "类型 income/expense" default(expense)
// @Param start_date query string false "开始日期 (2025-01-01)"
// @Param end_date query string false "结束日期 (2025-12-31)"
// @Success 200 {object} Response "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions/statistics [get]
func (h *TransactionHandler) GetStatistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	txType := c.DefaultQuery("type", models.TypeExpense)
	if !models.IsValidType(txType) {
		BadRequest(c, "type 取值错误，可选值：income、expense")
		return
	}

	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ? AND type = ?", userID, txType)

	if startDateStr != "" {
		if t, err := time.ParseInLocation("2006-01-02", startDateStr, time.Local); err == nil {
			query = query.Where("date >= ?", t)
		}
	}
	if endDateStr != "" {
		if t, err := time.ParseInLocation("2006-01-02", endDateStr, time.Local); err == nil {
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("date <= ?", t)
		}
	}

	// 总金额
	var totalAmount float64
	query.Select("COALESCE(SUM(amount), 0)").Scan(&totalAmount)

	// 按类别统计
	type CategoryStat struct {
		Category   string  `json:"category"`
		Total      float64 `json:"total"`
		Count      int64   `json:"count"`
		Percentage float64 `json:"percentage"`
	}
	var categoryStats []CategoryStat

	database.DB.Model(&models.Transaction{}).
		Select("category, SUM(amount) as total, COUNT(*) as count").
		Where("user_id = ? AND type = ?", userID, txType).
		Group("category").
		Order("total DESC").
		Scan(&categoryStats)

	// 计算每个类别的占比
	for i := range categoryStats {
		if totalAmount > 0 {
			categoryStats[i].Percentage = (categoryStats[i].Total / totalAmount) * 100
		}
	}

	Success(c, gin.H{
		"type":           txType,
		"total_amount":   totalAmount,
		"category_stats": categoryStats,
	})
}
