// Package summary 实现财务聚合计算引擎。
//
// 所有函数均为纯函数：只读遍历调用方已加载到内存中的记录集合，
// 不做任何 I/O，复杂度 O(n)。集合的获取与刷新由调用方（handler）负责。
package summary

import (
	"sort"

	"fintrack/models"
)

// CategoryTotal 按类别汇总的金额（派生数据，不落库）
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// 收入来源折算为月均收入的固定乘数。
// 取日历周期的平均近似值，不按实际日历天数重新计算。
const (
	weeklyPerMonth   = 4.33
	biWeeklyPerMonth = 2.17
)

// TotalByType 按交易类型求和。空集合返回 0。
func TotalByType(txs []models.Transaction, txType string) float64 {
	var total float64
	for _, t := range txs {
		if t.Type == txType {
			total += t.Amount
		}
	}
	return total
}

// CategoryTotals 按类别汇总指定类型的交易金额。
// 类别按原始字符串精确匹配（区分大小写、不做裁剪），
// 结果按类别首次出现的顺序返回，排序由调用方自行处理。
func CategoryTotals(txs []models.Transaction, txType string) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txs {
		if t.Type != txType {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}
	result := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryTotal{Category: category, Amount: totals[category]})
	}
	return result
}

// MonthlyAmount 将单次发放金额按发放频率折算为月均金额。
func MonthlyAmount(amount float64, frequency string) float64 {
	switch frequency {
	case models.FrequencyWeekly:
		return amount * weeklyPerMonth
	case models.FrequencyBiWeekly:
		return amount * biWeeklyPerMonth
	case models.FrequencyQuarterly:
		return amount / 3
	case models.FrequencyAnnually:
		return amount / 12
	default:
		// monthly 以及未知频率按原值计
		return amount
	}
}

// TotalMonthlyIncome 所有启用中收入来源的月均收入之和。
// 停用的来源不计入，金额再大也返回 0 贡献。
func TotalMonthlyIncome(sources []models.IncomeSource) float64 {
	var total float64
	for _, s := range sources {
		if !s.IsActive {
			continue
		}
		total += MonthlyAmount(s.Amount, s.Frequency)
	}
	return total
}

// ActiveIncomeSources 过滤出启用中的收入来源
func ActiveIncomeSources(sources []models.IncomeSource) []models.IncomeSource {
	var active []models.IncomeSource
	for _, s := range sources {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

// TotalBudget 计算预算总额。
// 存在总预算（无类别）时取第一个总预算的金额；
// 否则退化为所有预算金额之和。集合顺序由调用方给定，此处不重排。
func TotalBudget(budgets []models.Budget) float64 {
	for _, b := range budgets {
		if b.IsOverall() {
			return b.Amount
		}
	}
	var total float64
	for _, b := range budgets {
		total += b.Amount
	}
	return total
}

// RemainingBudget 预算余额 = 预算总额 - 支出总额。可为负数。
func RemainingBudget(budgets []models.Budget, txs []models.Transaction) float64 {
	return TotalBudget(budgets) - TotalByType(txs, models.TypeExpense)
}

// BudgetProgress 计算预算消耗进度，取值 [0, 1]。
// 预算不存在返回 0（不视为错误）；带类别的预算只统计同类别支出；
// 总预算统计全部支出。预算金额为 0 时返回 0，避免产生非数值结果。
func BudgetProgress(budgets []models.Budget, txs []models.Transaction, budgetID uint) float64 {
	var budget *models.Budget
	for i := range budgets {
		if budgets[i].ID == budgetID {
			budget = &budgets[i]
			break
		}
	}
	if budget == nil {
		return 0
	}
	if budget.Amount <= 0 {
		return 0
	}

	var spent float64
	if budget.IsOverall() {
		spent = TotalByType(txs, models.TypeExpense)
	} else {
		spent = CategorySpent(txs, budget.Category)
	}

	progress := spent / budget.Amount
	if progress > 1 {
		return 1
	}
	return progress
}

// CategorySpent 指定类别的支出总额。
// category 为空时等价于全部支出总额；无匹配交易的类别返回 0。
func CategorySpent(txs []models.Transaction, category string) float64 {
	if category == "" {
		return TotalByType(txs, models.TypeExpense)
	}
	var total float64
	for _, t := range txs {
		if t.Type == models.TypeExpense && t.Category == category {
			total += t.Amount
		}
	}
	return total
}

// RecentTransactions 按日期倒序取最近 n 条交易。不修改入参切片。
func RecentTransactions(txs []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Overview 财务总览（仪表盘数据）
type Overview struct {
	TotalIncome         float64              `json:"total_income"`          // 交易流水中的收入总额
	TotalExpenses       float64              `json:"total_expenses"`        // 支出总额
	MonthlySourceIncome float64              `json:"monthly_source_income"` // 收入来源折算的月均收入
	NetBalance          float64              `json:"net_balance"`
	BudgetAmount        float64              `json:"budget_amount"`
	BudgetRemaining     float64              `json:"budget_remaining"`
	SpendingByCategory  []CategoryTotal      `json:"spending_by_category"`
	RecentTransactions  []models.Transaction `json:"recent_transactions"`
}

// BuildOverview 汇总仪表盘数据。
// 净余额 = (交易收入 + 收入来源月均收入) - 支出总额。
// 同一笔周期性收入如果既配置为收入来源、又记录为收入交易，会被重复计入——
// 这是沿用既有产品口径的已知行为，调整前需产品确认。
func BuildOverview(txs []models.Transaction, budgets []models.Budget, sources []models.IncomeSource) Overview {
	totalIncome := TotalByType(txs, models.TypeIncome)
	totalExpenses := TotalByType(txs, models.TypeExpense)
	monthlyIncome := TotalMonthlyIncome(sources)

	return Overview{
		TotalIncome:         totalIncome,
		TotalExpenses:       totalExpenses,
		MonthlySourceIncome: monthlyIncome,
		NetBalance:          totalIncome + monthlyIncome - totalExpenses,
		BudgetAmount:        TotalBudget(budgets),
		BudgetRemaining:     RemainingBudget(budgets, txs),
		SpendingByCategory:  CategoryTotals(txs, models.TypeExpense),
		RecentTransactions:  RecentTransactions(txs, 5),
	}
}
