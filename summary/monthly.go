package summary

import (
	"strings"
	"time"

	"fintrack/models"
)

// MonthBucket 单个月份的收支汇总（图表数据）。
// 内部以 (年, 月) 作为桶的键，跨年窗口不会因月份短名相同而合并；
// Name 仅用于展示。
type MonthBucket struct {
	Name           string  `json:"name"` // 月份短名，如 "Jan"
	Year           int     `json:"year"`
	Month          int     `json:"month"` // 1-12
	Income         float64 `json:"income"`
	TotalExpenses  float64 `json:"total_expenses"` // 各支出子类之和，独立累加
	Food           float64 `json:"food"`
	Housing        float64 `json:"housing"`
	Transportation float64 `json:"transportation"`
	Entertainment  float64 `json:"entertainment"`
	Shopping       float64 `json:"shopping"`
	Health         float64 `json:"health"`
	Other          float64 `json:"other"`
}

// 支出子类的关键字规则。类别字符串转小写后做子串匹配，
// 命中多条规则时按此处的先后顺序取第一条，均未命中归入 other。
var expenseKeywordRules = []struct {
	bucket   string
	keywords []string
}{
	{"food", []string{"food", "groceries", "restaurant", "dining"}},
	{"housing", []string{"housing", "rent", "utilities", "mortgage"}},
	{"transportation", []string{"transportation", "gas", "car", "uber", "taxi"}},
	{"entertainment", []string{"entertainment", "movies", "streaming", "gaming"}},
	{"shopping", []string{"shopping", "clothing", "electronics", "retail"}},
	{"health", []string{"health", "medical", "pharmacy", "doctor"}},
}

// ClassifyExpenseCategory 将自由文本类别映射到固定的支出子类。
func ClassifyExpenseCategory(category string) string {
	lower := strings.ToLower(category)
	for _, rule := range expenseKeywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.bucket
			}
		}
	}
	return "other"
}

// MonthlySeries 生成覆盖 [当前月-5, 当前月] 的 6 个月份桶。
// 没有交易的月份保留全零桶，时间序列始终恰好 6 个点；
// 窗口之外的交易（含 6 个月前）不计入。
func MonthlySeries(txs []models.Transaction, now time.Time) []MonthBucket {
	type key struct {
		year  int
		month time.Month
	}

	buckets := make([]MonthBucket, 0, 6)
	index := make(map[key]int, 6)
	for i := 5; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		index[key{d.Year(), d.Month()}] = len(buckets)
		buckets = append(buckets, MonthBucket{
			Name:  d.Format("Jan"),
			Year:  d.Year(),
			Month: int(d.Month()),
		})
	}

	for _, t := range txs {
		d := t.Date.In(now.Location())
		i, ok := index[key{d.Year(), d.Month()}]
		if !ok {
			continue
		}
		b := &buckets[i]
		if t.Type == models.TypeIncome {
			b.Income += t.Amount
			continue
		}
		b.TotalExpenses += t.Amount
		switch ClassifyExpenseCategory(t.Category) {
		case "food":
			b.Food += t.Amount
		case "housing":
			b.Housing += t.Amount
		case "transportation":
			b.Transportation += t.Amount
		case "entertainment":
			b.Entertainment += t.Amount
		case "shopping":
			b.Shopping += t.Amount
		case "health":
			b.Health += t.Amount
		default:
			b.Other += t.Amount
		}
	}

	return buckets
}
