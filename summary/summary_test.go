package summary

import (
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
)

func tx(id uint, txType, category string, amount float64, date string) models.Transaction {
	d, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return models.Transaction{ID: id, Type: txType, Category: category, Amount: amount, Date: d}
}

func TestTotalByType(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeIncome, "Salary", 2500, "2025-06-01"),
		tx(2, models.TypeExpense, "Housing", 800, "2025-06-05"),
		tx(3, models.TypeExpense, "Food", 120.50, "2025-06-08"),
	}

	assert.InDelta(t, 2500, TotalByType(txs, models.TypeIncome), 1e-9)
	assert.InDelta(t, 920.50, TotalByType(txs, models.TypeExpense), 1e-9)

	// 按类型切分后的总和等于全部金额之和
	var all float64
	for _, x := range txs {
		all += x.Amount
	}
	sum := TotalByType(txs, models.TypeIncome) + TotalByType(txs, models.TypeExpense)
	assert.InDelta(t, all, sum, 1e-9)

	// 空集合
	assert.Equal(t, float64(0), TotalByType(nil, models.TypeIncome))
	assert.Equal(t, float64(0), TotalByType([]models.Transaction{}, models.TypeExpense))
}

func TestCategoryTotals(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 30, "2025-06-01"),
		tx(2, models.TypeExpense, "Housing", 800, "2025-06-02"),
		tx(3, models.TypeExpense, "Food", 20, "2025-06-03"),
		tx(4, models.TypeIncome, "Salary", 2500, "2025-06-04"),
	}

	totals := CategoryTotals(txs, models.TypeExpense)
	assert.Len(t, totals, 2)

	// 首次出现顺序
	assert.Equal(t, "Food", totals[0].Category)
	assert.InDelta(t, 50, totals[0].Amount, 1e-9)
	assert.Equal(t, "Housing", totals[1].Category)
	assert.InDelta(t, 800, totals[1].Amount, 1e-9)

	// 各类别之和等于该类型总额
	var sum float64
	for _, ct := range totals {
		sum += ct.Amount
	}
	assert.InDelta(t, TotalByType(txs, models.TypeExpense), sum, 1e-9)

	// 空集合返回空结果
	assert.Empty(t, CategoryTotals(nil, models.TypeExpense))
}

func TestCategoryTotals_CaseSensitive(t *testing.T) {
	// 类别按原始字符串精确匹配，大小写不同视为两个类别
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 10, "2025-06-01"),
		tx(2, models.TypeExpense, "food", 20, "2025-06-02"),
	}
	totals := CategoryTotals(txs, models.TypeExpense)
	assert.Len(t, totals, 2)
}

func TestTotalMonthlyIncome(t *testing.T) {
	weekly := models.IncomeSource{ID: 1, Amount: 100, Frequency: models.FrequencyWeekly, IsActive: true}

	// 周薪 100 折算月均 433
	assert.InDelta(t, 433, TotalMonthlyIncome([]models.IncomeSource{weekly}), 1e-9)

	// 停用来源贡献为 0
	weekly.IsActive = false
	assert.Equal(t, float64(0), TotalMonthlyIncome([]models.IncomeSource{weekly}))

	sources := []models.IncomeSource{
		{ID: 1, Amount: 100, Frequency: models.FrequencyWeekly, IsActive: true},    // 433
		{ID: 2, Amount: 100, Frequency: models.FrequencyBiWeekly, IsActive: true},  // 217
		{ID: 3, Amount: 3000, Frequency: models.FrequencyMonthly, IsActive: true},  // 3000
		{ID: 4, Amount: 900, Frequency: models.FrequencyQuarterly, IsActive: true}, // 300
		{ID: 5, Amount: 1200, Frequency: models.FrequencyAnnually, IsActive: true}, // 100
		{ID: 6, Amount: 99999, Frequency: models.FrequencyMonthly, IsActive: false},
	}
	assert.InDelta(t, 4050, TotalMonthlyIncome(sources), 1e-9)
}

func TestMonthlyAmount(t *testing.T) {
	assert.InDelta(t, 433, MonthlyAmount(100, models.FrequencyWeekly), 1e-9)
	assert.InDelta(t, 217, MonthlyAmount(100, models.FrequencyBiWeekly), 1e-9)
	assert.InDelta(t, 100, MonthlyAmount(100, models.FrequencyMonthly), 1e-9)
	assert.InDelta(t, 100, MonthlyAmount(300, models.FrequencyQuarterly), 1e-9)
	assert.InDelta(t, 100, MonthlyAmount(1200, models.FrequencyAnnually), 1e-9)
}

func TestTotalBudget(t *testing.T) {
	// 存在总预算时取第一个总预算
	budgets := []models.Budget{
		{ID: 1, Name: "Food", Amount: 500, Category: "Food"},
		{ID: 2, Name: "Overall", Amount: 3000},
		{ID: 3, Name: "Backup", Amount: 9999},
	}
	assert.InDelta(t, 3000, TotalBudget(budgets), 1e-9)

	// 无总预算时退化为全部预算之和
	categoryOnly := []models.Budget{
		{ID: 1, Name: "Food", Amount: 100, Category: "Food"},
		{ID: 2, Name: "Housing", Amount: 200, Category: "Housing"},
	}
	assert.InDelta(t, 300, TotalBudget(categoryOnly), 1e-9)

	assert.Equal(t, float64(0), TotalBudget(nil))
}

func TestRemainingBudget(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 800, "2025-06-01"),
	}

	// 总预算 3000 - 支出 800 = 2200
	overall := []models.Budget{{ID: 1, Name: "Monthly", Amount: 3000}}
	assert.InDelta(t, 2200, RemainingBudget(overall, txs), 1e-9)

	// 无总预算时用预算之和（300）减去支出
	categoryOnly := []models.Budget{
		{ID: 1, Name: "Food", Amount: 100, Category: "Food"},
		{ID: 2, Name: "Housing", Amount: 200, Category: "Housing"},
	}
	assert.InDelta(t, 300-800, RemainingBudget(categoryOnly, txs), 1e-9)
}

func TestBudgetProgress(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 30, "2025-06-01"),
		tx(2, models.TypeExpense, "Housing", 100, "2025-06-02"),
		tx(3, models.TypeIncome, "Salary", 5000, "2025-06-03"),
	}
	budgets := []models.Budget{
		{ID: 1, Name: "Food", Amount: 50, Category: "Food"},
		{ID: 2, Name: "Overall", Amount: 100},
		{ID: 3, Name: "Empty", Amount: 0, Category: "Food"},
	}

	// 类别预算只统计同类别支出：30/50，不受 Housing 影响
	assert.InDelta(t, 0.6, BudgetProgress(budgets, txs, 1), 1e-9)

	// 总预算统计全部支出并截断到 1：130/100 -> 1
	assert.Equal(t, float64(1), BudgetProgress(budgets, txs, 2))

	// 预算金额为 0 时返回 0 而不是 NaN/Inf
	assert.Equal(t, float64(0), BudgetProgress(budgets, txs, 3))

	// 预算不存在返回 0
	assert.Equal(t, float64(0), BudgetProgress(budgets, txs, 99))
}

func TestCategorySpent(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 30, "2025-06-01"),
		tx(2, models.TypeExpense, "Housing", 100, "2025-06-02"),
		tx(3, models.TypeIncome, "Food", 999, "2025-06-03"), // 收入不计入
	}

	assert.InDelta(t, 30, CategorySpent(txs, "Food"), 1e-9)
	assert.InDelta(t, 130, CategorySpent(txs, ""), 1e-9) // 空类别 = 全部支出
	assert.Equal(t, float64(0), CategorySpent(txs, "Travel"))
}

func TestRecentTransactions(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 10, "2025-06-01"),
		tx(2, models.TypeExpense, "Food", 20, "2025-06-10"),
		tx(3, models.TypeIncome, "Salary", 30, "2025-06-05"),
	}

	recent := RecentTransactions(txs, 2)
	assert.Len(t, recent, 2)
	assert.Equal(t, uint(2), recent[0].ID)
	assert.Equal(t, uint(3), recent[1].ID)

	// n 超过集合大小时返回全部
	assert.Len(t, RecentTransactions(txs, 10), 3)

	// 入参切片保持原顺序
	assert.Equal(t, uint(1), txs[0].ID)
}

func TestBuildOverview(t *testing.T) {
	txs := []models.Transaction{
		tx(1, models.TypeIncome, "Salary", 2500, "2025-06-01"),
		tx(2, models.TypeExpense, "Housing", 800, "2025-06-05"),
	}
	budgets := []models.Budget{{ID: 1, Name: "Monthly", Amount: 3000}}
	sources := []models.IncomeSource{
		{ID: 1, Amount: 100, Frequency: models.FrequencyWeekly, IsActive: true},
	}

	ov := BuildOverview(txs, budgets, sources)
	assert.InDelta(t, 2500, ov.TotalIncome, 1e-9)
	assert.InDelta(t, 800, ov.TotalExpenses, 1e-9)
	assert.InDelta(t, 433, ov.MonthlySourceIncome, 1e-9)
	// 净余额同时计入交易收入与收入来源月均收入（沿用既有口径）
	assert.InDelta(t, 2500+433-800, ov.NetBalance, 1e-9)
	assert.InDelta(t, 3000, ov.BudgetAmount, 1e-9)
	assert.InDelta(t, 2200, ov.BudgetRemaining, 1e-9)
	assert.Len(t, ov.SpendingByCategory, 1)
	assert.Len(t, ov.RecentTransactions, 2)
}
