package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

func testClaims(sub string) *models.AuthClaims {
	return &models.AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}
}

func postJSON(body string, claims *models.AuthClaims) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		c.Set("user", claims)
	}
	return c, w
}

func TestHandleSaveBudget_RequiresPeriod(t *testing.T) {
	cases := []string{
		`{"income": 1000}`,
		`{"income": 1000, "period": {"month": 0, "year": 2024}}`,
		`{"income": 1000, "period": {"month": 13, "year": 2024}}`,
		`{"income": 1000, "period": {"month": 5}}`,
	}
	for _, body := range cases {
		c, w := postJSON(body, testClaims("u1"))
		HandleSaveBudget(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestHandleSaveBudget_Unauthenticated(t *testing.T) {
	c, w := postJSON(`{}`, nil)
	HandleSaveBudget(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAddExpense_RequiresFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"category": "needs"}`,
		`{"category": "needs", "amount": 10}`,
		`{"amount": 10, "date": "2024-01-05"}`,
		`{"category": "needs", "date": "2024-01-05"}`,
	}
	for _, body := range cases {
		c, w := postJSON(body, testClaims("u1"))
		HandleAddExpense(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestHandleAddExpense_RejectsBadDate(t *testing.T) {
	c, w := postJSON(`{"category": "needs", "amount": 10, "date": "next tuesday"}`, testClaims("u1"))
	HandleAddExpense(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAddExpense_RejectsHalfSpecifiedPeriod(t *testing.T) {
	cases := []string{
		`{"category": "needs", "amount": 10, "date": "2024-01-05", "month": 5}`,
		`{"category": "needs", "amount": 10, "date": "2024-01-05", "year": 2024}`,
	}
	for _, body := range cases {
		c, w := postJSON(body, testClaims("u1"))
		HandleAddExpense(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestHandleAddExpense_RejectsBadMonth(t *testing.T) {
	c, w := postJSON(`{"category": "needs", "amount": 10, "date": "2024-01-05", "month": 14, "year": 2024}`, testClaims("u1"))
	HandleAddExpense(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetMyBudget_RequiresMonthAndYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, query := range []string{"", "month=5", "year=2024", "month=0&year=2024", "month=abc&year=2024"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		c.Set("user", testClaims("u1"))

		HandleGetMyBudget(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}
