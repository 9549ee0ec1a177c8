package api

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func expenseColumns() []string {
	return []string{"id", "user_id", "category", "title", "paid_to", "amount",
		"payment_method", "date", "month", "year", "created_at", "updated_at", "deleted_at"}
}

func expenseRow(rows *sqlmock.Rows, id, userID uint, category, title, paidTo string, amount float64, method string, date time.Time) *sqlmock.Rows {
	return rows.AddRow(id, userID, category, title, paidTo, amount, method,
		date, models.MonthName(int(date.Month())), date.Year(), time.Now(), time.Now(), nil)
}

func TestExpenseHandler_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = testConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	body := `{"category":"Food","title":"Lunch","amount":250,"date":"2024-03-15","month":"March","year":2024}`
	w := postJSON(router, "/expense", body)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Expense created successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	// 未提交的可选字段落默认值
	assert.Equal(t, "Cash", data["paymentMethod"])
	assert.Equal(t, "", data["paidTo"])
	assert.Equal(t, float64(250), data["amount"])
	// 归属人强制为当前登录用户
	assert.Equal(t, float64(1), data["user_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_MonthMismatch(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	body := `{"category":"Food","title":"Lunch","amount":250,"date":"2024-03-15","month":"April","year":2024}`
	w := postJSON(router, "/expense", body)

	// 一致性违规与其他校验失败同构：统一 errors 列表
	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp["message"])
	errs := resp["errors"].([]interface{})
	require.Len(t, errs, 1)
	violation := errs[0].(map[string]interface{})
	assert.Equal(t, "month", violation["field"])
	assert.Equal(t, "Date does not match provided month or year", violation["message"])
}

func TestExpenseHandler_Create_YearMismatch(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	body := `{"category":"Food","title":"Lunch","amount":250,"date":"2024-03-15","month":"March","year":2023}`
	w := postJSON(router, "/expense", body)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Date does not match provided month or year")
}

func TestExpenseHandler_Create_FutureDate(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	future := time.Now().AddDate(0, 0, 2)
	body := fmt.Sprintf(`{"category":"Food","title":"Lunch","amount":10,"date":"%s","month":"%s","year":%d}`,
		future.Format("2006-01-02"), models.MonthName(int(future.Month())), future.Year())
	w := postJSON(router, "/expense", body)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Date cannot be in the future")
}

func TestExpenseHandler_Create_NegativeAmount(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	body := `{"category":"Food","title":"Lunch","amount":-5,"date":"2024-03-15","month":"March","year":2024}`
	w := postJSON(router, "/expense", body)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errs := resp["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].(map[string]interface{})["field"])
}

func TestExpenseHandler_Create_InvalidCategory(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expense", NewExpenseHandler(db).Create)

	body := `{"category":"Gambling","title":"Lunch","amount":10,"date":"2024-03-15","month":"March","year":2024}`
	w := postJSON(router, "/expense", body)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid category")
}

func TestExpenseHandler_List_OwnerScoped(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	rows := expenseRow(sqlmock.NewRows(expenseColumns()), 1, 7, "Food", "Lunch", "", 250, "Cash", date)
	// 查询按归属人过滤
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(7).
		WillReturnRows(rows)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(7))
	router.GET("/expense", NewExpenseHandler(db).List)

	req := httptest.NewRequest("GET", "/expense", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, float64(7), list[0].(map[string]interface{})["user_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_YearMonthFilter(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(1, 2024, "March").
		WillReturnRows(sqlmock.NewRows(expenseColumns()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/expense", NewExpenseHandler(db).List)

	req := httptest.NewRequest("GET", "/expense?year=2024&month=March", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 空结果返回空数组而不是 null
	list, ok := resp["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NotOwned(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 记录存在但属于他人：归属过滤后查不到，今次与不存在一致返回 404
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows(expenseColumns()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/expense/:id", NewExpenseHandler(db).Update)

	req := httptest.NewRequest("PUT", "/expense/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Expense not found or not authorized")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_DateRederivesMonthYear(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = testConfig()
	defer func() { config.GlobalConfig = nil }()

	oldDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	newDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(5, 1).
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "", 250, "Cash", oldDate))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "", 250, "Cash", newDate))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/expense/:id", NewExpenseHandler(db).Update)

	w := putJSON(router, "/expense/5", `{"date":"2024-04-02"}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "April", data["month"])
	assert.Equal(t, float64(2024), data["year"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_MonthConflictsWithStoredDate(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	oldDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(5, 1).
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "", 250, "Cash", oldDate))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/expense/:id", NewExpenseHandler(db).Update)

	// 不改日期的情况下单独改 month，与存量日期不符，拒绝
	w := putJSON(router, "/expense/5", `{"month":"April"}`)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp["message"])
	errs := resp["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "month", errs[0].(map[string]interface{})["field"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_ClearPaidTo(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = testConfig()
	defer func() { config.GlobalConfig = nil }()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(5, 1).
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "Corner Deli", 250, "Cash", date))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "", 250, "Cash", date))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/expense/:id", NewExpenseHandler(db).Update)

	// 显式空串是合法值
	w := putJSON(router, "/expense/5", `{"paidTo":""}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "", data["paidTo"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = testConfig()
	defer func() { config.GlobalConfig = nil }()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(5, 1).
		WillReturnRows(expenseRow(sqlmock.NewRows(expenseColumns()), 5, 1, "Food", "Lunch", "", 250, "Cash", date))

	// 软删除
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/expense/:id", NewExpenseHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/expense/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Expense deleted successfully")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(expenseColumns()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/expense/:id", NewExpenseHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/expense/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
