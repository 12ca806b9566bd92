package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "amount", "description", "date", "type", "category", "created_at", "updated_at", "deleted_at"})
}

func TestSummaryHandler_GetOverview(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()

	// 交易、预算、收入来源按顺序各查一次
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(uint(1)).
		WillReturnRows(transactionRows().
			AddRow(2, 1, 800.0, "Rent", now.AddDate(0, 0, -5), "expense", "Housing", now, now, nil).
			AddRow(1, 1, 2500.0, "Salary", now.AddDate(0, 0, -10), "income", "Salary", now, now, nil))

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "period", "start_date", "category", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "Monthly Budget", 3000.0, "monthly", now, "", now, now, nil))

	mock.ExpectQuery("SELECT .* FROM `income_sources`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "frequency", "source_type", "bank_account_id", "is_active", "next_payment_date", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "Side gig", 1000.0, "monthly", "manual", nil, true, nil, now, now, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/summary", NewSummaryHandler().GetOverview)

	req := httptest.NewRequest("GET", "/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, 2500.0, data["total_income"])
	assert.Equal(t, 800.0, data["total_expenses"])
	assert.Equal(t, 1000.0, data["monthly_source_income"])
	// 净余额 = 交易收入 + 月均收入来源 - 支出
	assert.Equal(t, 2700.0, data["net_balance"])
	assert.Equal(t, 3000.0, data["budget_amount"])
	assert.Equal(t, 2200.0, data["budget_remaining"])

	spending := data["spending_by_category"].([]interface{})
	require.Len(t, spending, 1)
	first := spending[0].(map[string]interface{})
	assert.Equal(t, "Housing", first["category"])
	assert.Equal(t, 800.0, first["amount"])

	recent := data["recent_transactions"].([]interface{})
	assert.Len(t, recent, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_GetMonthlySeries(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(uint(1)).
		WillReturnRows(transactionRows())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/summary/monthly", NewSummaryHandler().GetMonthlySeries)

	req := httptest.NewRequest("GET", "/summary/monthly", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 没有任何交易也返回固定6个月份桶
	series := resp["data"].([]interface{})
	assert.Len(t, series, 6)

	require.NoError(t, mock.ExpectationsWereMet())
}
