package api

import (
	"strconv"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/summary"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// CreateBudgetRequest 创建预算请求
// category 留空表示总预算（覆盖所有支出类别）
type CreateBudgetRequest struct {
	Name      string  `json:"name" binding:"required" example:"Monthly Budget"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"3000"`
	Period    string  `json:"period" binding:"required,oneof=weekly monthly" example:"monthly"`
	StartDate string  `json:"start_date" binding:"required" example:"2025-06-01"`
	Category  string  `json:"category" example:"Food"`
}

// UpdateBudgetRequest 更新预算请求（仅更新传入的字段）
// category 通过指针区分缺省与显式空串：nil 不修改，空串清空为总预算
type UpdateBudgetRequest struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount" binding:"omitempty,gt=0"`
	Period    string  `json:"period" binding:"omitempty,oneof=weekly monthly"`
	StartDate string  `json:"start_date"`
	Category  *string `json:"category"`
}

// BudgetProgressResponse 预算进度响应
type BudgetProgressResponse struct {
	BudgetID  uint    `json:"budget_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"` // 空 = 总预算
	Amount    float64 `json:"amount"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Progress  float64 `json:"progress"` // [0, 1]
}

// Create 创建预算
// @Summary 创建预算
// @Description 创建一条预算。category 留空表示总预算；period 仅作展示，不影响进度计算口径。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	budget := models.Budget{
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: startDate,
		Category:  strings.TrimSpace(req.Category), // 空 = 总预算，不做 Uncategorized 回填
	}

	if err := database.DB.Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建预算失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", budget)
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取当前用户的全部预算，按创建时间倒序
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, budgets)
}

// Get 获取单条预算
// @Summary 获取单条预算
// @Description 根据ID获取预算详情
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response{data=models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/budgets/{id} [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, budget)
}

// Update 更新预算
// @Summary 更新预算
// @Description 更新指定预算，仅覆盖传入的字段。category 传空串可清空为总预算，不传则保持不变。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Param request body UpdateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateBudgetRequest
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
	if req.Period != "" {
		updates["period"] = req.Period
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.StartDate != "" {
		startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["start_date"] = startDate
	}

	if err := database.DB.Model(&budget).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&budget, budget.ID)
	SuccessWithMessage(c, "更新成功", budget)
}

// Delete 删除预算
// @Summary 删除预算
// @Description 删除指定的预算
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// GetProgress 获取预算进度
// @Summary 获取预算进度
// @Description 计算指定预算的消耗进度。带类别的预算只统计同类别支出；总预算统计全部支出。进度截断在 [0, 1]。
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response{data=BudgetProgressResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/budgets/{id}/progress [get]
func (h *BudgetHandler) GetProgress(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	// 进度在内存中由聚合引擎计算，与仪表盘口径保持一致
	var transactions []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	spent := summary.CategorySpent(transactions, budget.Category)
	progress := summary.BudgetProgress([]models.Budget{budget}, transactions, budget.ID)

	Success(c, BudgetProgressResponse{
		BudgetID:  budget.ID,
		Name:      budget.Name,
		Category:  budget.Category,
		Amount:    budget.Amount,
		Spent:     spent,
		Remaining: budget.Amount - spent,
		Progress:  progress,
	})
}
