package api

import (
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/summary"

	"github.com/gin-gonic/gin"
)

// IncomeSourceHandler 收入来源处理器
type IncomeSourceHandler struct{}

// NewIncomeSourceHandler 创建收入来源处理器
func NewIncomeSourceHandler() *IncomeSourceHandler {
	return &IncomeSourceHandler{}
}

// CreateIncomeSourceRequest 创建收入来源请求
type CreateIncomeSourceRequest struct {
	Name            string  `json:"name" binding:"required" example:"Salary"`
	Amount          float64 `json:"amount" binding:"required,gt=0" example:"5000"` // 单次发放金额
	Frequency       string  `json:"frequency" binding:"required" example:"monthly"`
	SourceType      string  `json:"source_type" binding:"required" example:"employer"`
	BankAccountID   *uint   `json:"bank_account_id"` // 软引用，不做外键校验
	IsActive        *bool   `json:"is_active"`       // 缺省为 true
	NextPaymentDate string  `json:"next_payment_date" example:"2025-07-01"`
}

// UpdateIncomeSourceRequest 更新收入来源请求（仅更新传入的字段）
type UpdateIncomeSourceRequest struct {
	Name            string  `json:"name"`
	Amount          float64 `json:"amount" binding:"omitempty,gt=0"`
	Frequency       string  `json:"frequency"`
	SourceType      string  `json:"source_type"`
	BankAccountID   *uint   `json:"bank_account_id"`
	IsActive        *bool   `json:"is_active"`
	NextPaymentDate string  `json:"next_payment_date"`
}

// MonthlyIncomeResponse 月均收入响应
type MonthlyIncomeResponse struct {
	TotalMonthlyIncome float64               `json:"total_monthly_income"`
	ActiveSources      []models.IncomeSource `json:"active_sources"`
}

// Create 创建收入来源
// @Summary 创建收入来源
// @Description 创建一个周期性收入来源（工资、副业等）。频率可选 weekly/bi-weekly/monthly/quarterly/annually。
// @Tags 收入来源
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeSourceRequest true "收入来源信息"
// @Success 200 {object} Response{data=models.IncomeSource} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/income-sources [post]
func (h *IncomeSourceHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidFrequency(req.Frequency) {
		BadRequest(c, "frequency 取值错误，可选值：weekly、bi-weekly、monthly、quarterly、annually")
		return
	}
	if !models.IsValidSourceType(req.SourceType) {
		BadRequest(c, "source_type 取值错误，可选值：manual、bank、employer")
		return
	}

	source := models.IncomeSource{
		UserID:        userID,
		Name:          req.Name,
		Amount:        req.Amount,
		Frequency:     req.Frequency,
		SourceType:    req.SourceType,
		BankAccountID: req.BankAccountID,
		IsActive:      true,
	}
	if req.IsActive != nil {
		source.IsActive = *req.IsActive
	}
	if req.NextPaymentDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.NextPaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		source.NextPaymentDate = &d
	}

	if err := database.DB.Create(&source).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入来源失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", source)
}

// List 获取收入来源列表
// @Summary 获取收入来源列表
// @Description 获取当前用户的全部收入来源，按创建时间倒序。可选仅返回启用中的来源。
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Param active_only query bool false "仅返回启用中的来源"
// @Success 200 {object} Response{data=[]models.IncomeSource} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/income-sources [get]
func (h *IncomeSourceHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if c.Query("active_only") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var sources []models.IncomeSource
	if err := query.Order("created_at DESC").Find(&sources).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, sources)
}

// Get 获取单条收入来源
// @Summary 获取单条收入来源
// @Description 根据ID获取收入来源详情
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Success 200 {object} Response{data=models.IncomeSource} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/income-sources/{id} [get]
func (h *IncomeSourceHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var source models.IncomeSource
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&source).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, source)
}

// Update 更新收入来源
// @Summary 更新收入来源
// @Description 更新指定收入来源，仅覆盖传入的字段
// @Tags 收入来源
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Param request body UpdateIncomeSourceRequest true "收入来源信息"
// @Success 200 {object} Response{data=models.IncomeSource} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/income-sources/{id} [put]
func (h *IncomeSourceHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var source models.IncomeSource
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&source).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Frequency != "" {
		if !models.IsValidFrequency(req.Frequency) {
			BadRequest(c, "frequency 取值错误，可选值：weekly、bi-weekly、monthly、quarterly、annually")
			return
		}
		updates["frequency"] = req.Frequency
	}
	if req.SourceType != "" {
		if !models.IsValidSourceType(req.SourceType) {
			BadRequest(c, "source_type 取值错误，可选值：manual、bank、employer")
			return
		}
		updates["source_type"] = req.SourceType
	}
	if req.BankAccountID != nil {
		updates["bank_account_id"] = *req.BankAccountID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.NextPaymentDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.NextPaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["next_payment_date"] = d
	}

	if err := database.DB.Model(&source).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&source, source.ID)
	SuccessWithMessage(c, "更新成功", source)
}

// Delete 删除收入来源
// @Summary 删除收入来源
// @Description 删除指定的收入来源
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/income-sources/{id} [delete]
func (h *IncomeSourceHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var source models.IncomeSource
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&source).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&source).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// GetMonthlyTotal 获取月均收入
// @Summary 获取月均收入
// @Description 所有启用中收入来源按频率折算后的月均收入之和（weekly ×4.33、bi-weekly ×2.17、quarterly ÷3、annually ÷12）
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=MonthlyIncomeResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/income-sources/monthly-total [get]
func (h *IncomeSourceHandler) GetMonthlyTotal(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var sources []models.IncomeSource
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&sources).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, MonthlyIncomeResponse{
		TotalMonthlyIncome: summary.TotalMonthlyIncome(sources),
		ActiveSources:      summary.ActiveIncomeSources(sources),
	})
}
