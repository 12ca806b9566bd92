package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "period", "start_date", "category", "created_at", "updated_at", "deleted_at"})
}

func TestBudgetHandler_Update_ClearCategoryToOverall(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()

	// 查询现有预算（带类别）
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().
			AddRow(1, 1, "Food Budget", 500.0, "monthly", now, "Food", now, now, nil))

	// 显式空串类别触发 UPDATE
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 重新加载，类别已清空为总预算
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().
			AddRow(1, 1, "Food Budget", 500.0, "monthly", now, "", now, now, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/:id", NewBudgetHandler().Update)

	body := `{"category":""}`
	req := httptest.NewRequest("PUT", "/budgets/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "", data["category"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Update_CategoryOmittedKeepsValue(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().
			AddRow(1, 1, "Food Budget", 500.0, "monthly", now, "Food", now, now, nil))

	// 只更新金额，category 未传不应出现在 SET 子句中
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(budgetRows().
			AddRow(1, 1, "Food Budget", 600.0, "monthly", now, "Food", now, now, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/:id", NewBudgetHandler().Update)

	body := `{"amount":600}`
	req := httptest.NewRequest("PUT", "/budgets/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Food", data["category"])
	require.NoError(t, mock.ExpectationsWereMet())
}
