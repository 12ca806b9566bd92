// Package legacy 提供早期原型的占位 REST 接口。
// 数据保存在进程内存中，不落库，进程重启即重置，仅用于前端原型联调。
package legacy

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transaction 占位接口的交易记录，日期保持字符串原样存储
type Transaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
}

// Budget 占位接口的预算记录
type Budget struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Period    string  `json:"period"`
	StartDate string  `json:"startDate"`
	Category  string  `json:"category,omitempty"`
}

// CategorySpending 按类别汇总的支出
type CategorySpending struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Summary 占位接口的财务摘要
type Summary struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	NetBalance         float64            `json:"netBalance"`
	BudgetAmount       float64            `json:"budgetAmount"`
	BudgetRemaining    float64            `json:"budgetRemaining"`
	SpendingByCategory []CategorySpending `json:"spendingByCategory"`
	RecentTransactions []Transaction      `json:"recentTransactions"`
}

// Store 进程内存储，互斥锁保护两个切片
type Store struct {
	mu           sync.Mutex
	transactions []Transaction
	budgets      []Budget
}

// NewStore 创建并预置示例数据的存储
func NewStore() *Store {
	return &Store{
		transactions: []Transaction{
			{ID: "1", Amount: 2500, Description: "Salary", Date: "2025-06-01", Type: "income", Category: "Salary"},
			{ID: "2", Amount: 800, Description: "Rent", Date: "2025-06-05", Type: "expense", Category: "Housing"},
		},
		budgets: []Budget{
			{ID: "1", Name: "Monthly Budget", Amount: 3000, Period: "monthly", StartDate: "2025-06-01"},
		},
	}
}

// ListTransactions 返回全部交易的副本
func (s *Store) ListTransactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// GetTransaction 按ID查找交易
func (s *Store) GetTransaction(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// CreateTransaction 追加一条交易并分配 UUID
func (s *Store) CreateTransaction(t Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.transactions = append(s.transactions, t)
	return t
}

// UpdateTransaction 按ID部分更新交易，零值字段保留原值
func (s *Store) UpdateTransaction(id string, patch Transaction) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		if patch.Amount != 0 {
			s.transactions[i].Amount = patch.Amount
		}
		if patch.Description != "" {
			s.transactions[i].Description = patch.Description
		}
		if patch.Date != "" {
			s.transactions[i].Date = patch.Date
		}
		if patch.Type != "" {
			s.transactions[i].Type = patch.Type
		}
		if patch.Category != "" {
			s.transactions[i].Category = patch.Category
		}
		return s.transactions[i], true
	}
	return Transaction{}, false
}

// DeleteTransaction 按ID删除交易
func (s *Store) DeleteTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// ListBudgets 返回全部预算的副本
func (s *Store) ListBudgets() []Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// GetBudget 按ID查找预算
func (s *Store) GetBudget(id string) (Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true
		}
	}
	return Budget{}, false
}

// CreateBudget 追加一条预算并分配 UUID
func (s *Store) CreateBudget(b Budget) Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.NewString()
	s.budgets = append(s.budgets, b)
	return b
}

// UpdateBudget 按ID部分更新预算，零值字段保留原值。
// category 通过指针传入：nil 表示不修改，空串表示清空为总预算。
func (s *Store) UpdateBudget(id string, patch Budget, category *string) (Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID != id {
			continue
		}
		if patch.Name != "" {
			s.budgets[i].Name = patch.Name
		}
		if patch.Amount != 0 {
			s.budgets[i].Amount = patch.Amount
		}
		if patch.Period != "" {
			s.budgets[i].Period = patch.Period
		}
		if patch.StartDate != "" {
			s.budgets[i].StartDate = patch.StartDate
		}
		if category != nil {
			s.budgets[i].Category = *category
		}
		return s.budgets[i], true
	}
	return Budget{}, false
}

// DeleteBudget 按ID删除预算
func (s *Store) DeleteBudget(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return true
		}
	}
	return false
}

// Summary 计算财务摘要。
// 主预算取第一条无类别预算，没有则取第一条预算；剩余预算下限为 0。
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totalIncome, totalExpenses float64
	for _, t := range s.transactions {
		switch t.Type {
		case "income":
			totalIncome += t.Amount
		case "expense":
			totalExpenses += t.Amount
		}
	}

	var budgetAmount float64
	if len(s.budgets) > 0 {
		main := s.budgets[0]
		for _, b := range s.budgets {
			if b.Category == "" {
				main = b
				break
			}
		}
		budgetAmount = main.Amount
	}

	budgetRemaining := budgetAmount - totalExpenses
	if budgetRemaining < 0 {
		budgetRemaining = 0
	}

	// 按类别汇总支出，保持首次出现的顺序
	spending := []CategorySpending{}
	index := make(map[string]int)
	for _, t := range s.transactions {
		if t.Type != "expense" {
			continue
		}
		if i, ok := index[t.Category]; ok {
			spending[i].Amount += t.Amount
		} else {
			index[t.Category] = len(spending)
			spending = append(spending, CategorySpending{Category: t.Category, Amount: t.Amount})
		}
	}

	// 最近5条交易，按日期倒序
	recent := make([]Transaction, len(s.transactions))
	copy(recent, s.transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return parseDate(recent[i].Date).After(parseDate(recent[j].Date))
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return Summary{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetBalance:         totalIncome - totalExpenses,
		BudgetAmount:       budgetAmount,
		BudgetRemaining:    budgetRemaining,
		SpendingByCategory: spending,
		RecentTransactions: recent,
	}
}

// parseDate 解析日期字符串，失败返回零值时间（排序时垫底）
func parseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return d
}
