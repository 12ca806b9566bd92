package api

import (
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// BankAccountHandler 银行账户处理器
type BankAccountHandler struct{}

// NewBankAccountHandler 创建银行账户处理器
func NewBankAccountHandler() *BankAccountHandler {
	return &BankAccountHandler{}
}

// CreateBankAccountRequest 创建银行账户请求
type CreateBankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required" example:"Chase"`
	AccountName   string `json:"account_name" binding:"required" example:"Everyday Checking"`
	AccountType   string `json:"account_type" binding:"required" example:"checking"`
	AccountNumber string `json:"account_number" binding:"required" example:"1234567890"` // 入库前掩码，仅保留末4位
}

// UpdateBankAccountRequest 更新银行账户请求（仅更新传入的字段）
type UpdateBankAccountRequest struct {
	BankName    string `json:"bank_name"`
	AccountName string `json:"account_name"`
	AccountType string `json:"account_type"`
}

// Create 创建银行账户
// @Summary 创建银行账户
// @Description 创建一个银行账户。账号在入库前掩码处理，仅保留末4位明文。
// @Tags 银行账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBankAccountRequest true "银行账户信息"
// @Success 200 {object} Response{data=models.BankAccount} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/bank-accounts [post]
func (h *BankAccountHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidAccountType(req.AccountType) {
		BadRequest(c, "account_type 取值错误，可选值：checking、savings、credit")
		return
	}

	account := models.BankAccount{
		UserID:              userID,
		BankName:            req.BankName,
		AccountName:         req.AccountName,
		AccountType:         req.AccountType,
		AccountNumberMasked: models.MaskAccountNumber(req.AccountNumber),
	}

	if err := database.DB.Create(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建银行账户失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", account)
}

// List 获取银行账户列表
// @Summary 获取银行账户列表
// @Description 获取当前用户的全部银行账户，按创建时间倒序
// @Tags 银行账户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.BankAccount} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/bank-accounts [get]
func (h *BankAccountHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var accounts []models.BankAccount
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, accounts)
}

// Get 获取单个银行账户
// @Summary 获取单个银行账户
// @Description 根据ID获取银行账户详情
// @Tags 银行账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "银行账户ID"
// @Success 200 {object} Response{data=models.BankAccount} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bank-accounts/{id} [get]
func (h *BankAccountHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.BankAccount
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, account)
}

// Update 更新银行账户
// @Summary 更新银行账户
// @Description 更新指定银行账户的名称与类型，仅覆盖传入的字段。账号本身不可修改。
// @Tags 银行账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "银行账户ID"
// @Param request body UpdateBankAccountRequest true "银行账户信息"
// @Success 200 {object} Response{data=models.BankAccount} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bank-accounts/{id} [put]
func (h *BankAccountHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.BankAccount
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.BankName != "" {
		updates["bank_name"] = req.BankName
	}
	if req.AccountName != "" {
		updates["account_name"] = req.AccountName
	}
	if req.AccountType != "" {
		if !models.IsValidAccountType(req.AccountType) {
			BadRequest(c, "account_type 取值错误，可选值：checking、savings、credit")
			return
		}
		updates["account_type"] = req.AccountType
	}

	if err := database.DB.Model(&account).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "更新成功", account)
}

// Delete 删除银行账户
// @Summary 删除银行账户
// @Description 删除指定的银行账户。引用该账户的收入来源不受影响（软引用）。
// @Tags 银行账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "银行账户ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bank-accounts/{id} [delete]
func (h *BankAccountHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.BankAccount
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Connect 连接银行账户（占位实现）
// @Summary 连接银行账户
// @Description 占位实现：仅标记 is_connected=true 并刷新 last_sync，不会对接真实银行服务。
// @Tags 银行账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "银行账户ID"
// @Success 200 {object} Response{data=models.BankAccount} "连接成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bank-accounts/{id}/connect [post]
func (h *BankAccountHandler) Connect(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.BankAccount
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	now := time.Now()
	if err := database.DB.Model(&account).Updates(map[string]interface{}{
		"is_connected": true,
		"last_sync":    now,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "连接失败"))
		return
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "连接成功", account)
}

// Sync 同步银行账户（占位实现）
// @Summary 同步银行账户
// @Description 占位实现：仅刷新 last_sync，不会拉取真实银行流水。
// @Tags 银行账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "银行账户ID"
// @Success 200 {object} Response{data=models.BankAccount} "同步成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/bank-accounts/{id}/sync [post]
func (h *BankAccountHandler) Sync(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.BankAccount
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	now := time.Now()
	if err := database.DB.Model(&account).Update("last_sync", now).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "同步失败"))
		return
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "同步成功", account)
}
