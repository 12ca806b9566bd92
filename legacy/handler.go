package legacy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Amount 兼容数字与数字字符串两种 JSON 写法的金额
type Amount float64

// UnmarshalJSON 同时接受 42.5 与 "42.5"
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
		return nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("金额不是有效数字: %q", v)
		}
		*a = Amount(f)
		return nil
	case nil:
		*a = 0
		return nil
	default:
		return fmt.Errorf("金额类型不支持")
	}
}

// Handler 占位接口处理器
type Handler struct {
	store *Store
}

// NewHandler 创建占位接口处理器
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 挂载占位接口路由
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/transactions", h.ListTransactions)
	rg.GET("/transactions/:id", h.GetTransaction)
	rg.POST("/transactions", h.CreateTransaction)
	rg.PUT("/transactions/:id", h.UpdateTransaction)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)

	rg.GET("/budgets", h.ListBudgets)
	rg.GET("/budgets/:id", h.GetBudget)
	rg.POST("/budgets", h.CreateBudget)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)

	rg.GET("/summary", h.GetSummary)
}

// transactionRequest 交易创建/更新请求体
type transactionRequest struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// budgetRequest 预算创建/更新请求体，category 区分缺省与显式空串
type budgetRequest struct {
	Name      string  `json:"name"`
	Amount    Amount  `json:"amount"`
	Period    string  `json:"period"`
	StartDate string  `json:"startDate"`
	Category  *string `json:"category"`
}

// ListTransactions 获取全部交易
func (h *Handler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTransactions())
}

// GetTransaction 按ID获取交易
func (h *Handler) GetTransaction(c *gin.Context) {
	t, ok := h.store.GetTransaction(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTransaction 创建交易，category 缺省为 Uncategorized
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Amount == 0 || req.Description == "" || req.Date == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	category := req.Category
	if category == "" {
		category = "Uncategorized"
	}

	t := h.store.CreateTransaction(Transaction{
		Amount:      float64(req.Amount),
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
		Category:    category,
	})

	c.JSON(http.StatusCreated, t)
}

// UpdateTransaction 按ID部分更新交易
func (h *Handler) UpdateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	t, ok := h.store.UpdateTransaction(c.Param("id"), Transaction{
		Amount:      float64(req.Amount),
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
		Category:    req.Category,
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// DeleteTransaction 按ID删除交易
func (h *Handler) DeleteTransaction(c *gin.Context) {
	if !h.store.DeleteTransaction(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBudgets 获取全部预算
func (h *Handler) ListBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListBudgets())
}

// GetBudget 按ID获取预算
func (h *Handler) GetBudget(c *gin.Context) {
	b, ok := h.store.GetBudget(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBudget 创建预算
func (h *Handler) CreateBudget(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Amount == 0 || req.Period == "" || req.StartDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	b := Budget{
		Name:      req.Name,
		Amount:    float64(req.Amount),
		Period:    req.Period,
		StartDate: req.StartDate,
	}
	if req.Category != nil {
		b.Category = *req.Category
	}

	c.JSON(http.StatusCreated, h.store.CreateBudget(b))
}

// UpdateBudget 按ID部分更新预算
func (h *Handler) UpdateBudget(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	b, ok := h.store.UpdateBudget(c.Param("id"), Budget{
		Name:      req.Name,
		Amount:    float64(req.Amount),
		Period:    req.Period,
		StartDate: req.StartDate,
	}, req.Category)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// DeleteBudget 按ID删除预算
func (h *Handler) DeleteBudget(c *gin.Context) {
	if !h.store.DeleteBudget(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSummary 获取财务摘要
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Summary())
}
