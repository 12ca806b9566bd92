package summary

import (
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySeries_AlwaysSixBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	// 无任何交易时仍然返回 6 个全零桶
	series := MonthlySeries(nil, now)
	require.Len(t, series, 6)
	assert.Equal(t, "Jan", series[0].Name)
	assert.Equal(t, "Jun", series[5].Name)
	for _, b := range series {
		assert.Equal(t, float64(0), b.Income)
		assert.Equal(t, float64(0), b.TotalExpenses)
	}
}

func TestMonthlySeries_WindowBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	txs := []models.Transaction{
		tx(1, models.TypeExpense, "Food", 100, "2025-01-03"), // 5 个月前，计入
		tx(2, models.TypeExpense, "Food", 200, "2024-12-31"), // 6 个月前，不计入
		tx(3, models.TypeExpense, "Food", 300, "2025-06-15"), // 当月，计入
	}

	series := MonthlySeries(txs, now)
	require.Len(t, series, 6)
	assert.InDelta(t, 100, series[0].Food, 1e-9)
	assert.InDelta(t, 300, series[5].Food, 1e-9)

	var total float64
	for _, b := range series {
		total += b.TotalExpenses
	}
	assert.InDelta(t, 400, total, 1e-9)
}

func TestMonthlySeries_YearBoundary(t *testing.T) {
	// 窗口跨年时按 (年, 月) 分桶，前一年的月份不会与同名月份合并
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.Local)
	series := MonthlySeries(nil, now)
	require.Len(t, series, 6)
	assert.Equal(t, 2024, series[0].Year)
	assert.Equal(t, 9, series[0].Month)
	assert.Equal(t, 2025, series[5].Year)
	assert.Equal(t, 2, series[5].Month)
}

func TestMonthlySeries_Classification(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	txs := []models.Transaction{
		tx(1, models.TypeIncome, "Salary", 2500, "2025-06-01"),
		tx(2, models.TypeExpense, "Groceries", 80, "2025-06-02"),
		tx(3, models.TypeExpense, "Rent", 900, "2025-06-03"),
		tx(4, models.TypeExpense, "Gas", 40, "2025-06-04"),
		tx(5, models.TypeExpense, "Streaming Service", 15, "2025-06-05"),
		tx(6, models.TypeExpense, "Clothing", 60, "2025-06-06"),
		tx(7, models.TypeExpense, "Pharmacy", 25, "2025-06-07"),
		tx(8, models.TypeExpense, "Misc", 10, "2025-06-08"),
	}

	series := MonthlySeries(txs, now)
	june := series[5]
	assert.InDelta(t, 2500, june.Income, 1e-9)
	assert.InDelta(t, 80, june.Food, 1e-9)
	assert.InDelta(t, 900, june.Housing, 1e-9)
	assert.InDelta(t, 40, june.Transportation, 1e-9)
	assert.InDelta(t, 15, june.Entertainment, 1e-9)
	assert.InDelta(t, 60, june.Shopping, 1e-9)
	assert.InDelta(t, 25, june.Health, 1e-9)
	assert.InDelta(t, 10, june.Other, 1e-9)

	// TotalExpenses 独立累加，等于各子类之和
	sub := june.Food + june.Housing + june.Transportation + june.Entertainment +
		june.Shopping + june.Health + june.Other
	assert.InDelta(t, sub, june.TotalExpenses, 1e-9)
}

func TestClassifyExpenseCategory(t *testing.T) {
	// 大小写不敏感的子串匹配
	assert.Equal(t, "food", ClassifyExpenseCategory("Fast Food"))
	assert.Equal(t, "food", ClassifyExpenseCategory("DINING out"))
	assert.Equal(t, "housing", ClassifyExpenseCategory("Utilities"))
	assert.Equal(t, "transportation", ClassifyExpenseCategory("Uber/Lyft"))
	assert.Equal(t, "entertainment", ClassifyExpenseCategory("Gaming"))
	assert.Equal(t, "shopping", ClassifyExpenseCategory("Electronics"))
	assert.Equal(t, "health", ClassifyExpenseCategory("Doctor Visit"))
	assert.Equal(t, "other", ClassifyExpenseCategory("Uncategorized"))
	assert.Equal(t, "other", ClassifyExpenseCategory(""))

	// 可命中多条规则时按固定优先级取第一条：food 优先于 housing
	assert.Equal(t, "food", ClassifyExpenseCategory("food at rent party"))
}
