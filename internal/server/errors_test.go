package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shivbooks/books/internal/auth"
	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	"github.com/shivbooks/books/internal/config"
	contactdomain "github.com/shivbooks/books/internal/contact/domain"
	orderdomain "github.com/shivbooks/books/internal/order/domain"
	reportsdomain "github.com/shivbooks/books/internal/reports/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"validation", orderdomain.ErrTotalMismatch, http.StatusBadRequest, "validation_error"},
		{"not found", contactdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"invalid state", billingdomain.ErrAlreadyBilled, http.StatusConflict, "invalid_state"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"report failed", reportsdomain.ErrReportFailed, http.StatusInternalServerError, "report_failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantType, payload.Type)
		})
	}
}

func TestMapErrorHidesInternalDetails(t *testing.T) {
	_, payload := mapError(errors.New("pq: connection refused"))
	assert.Equal(t, "internal server error", payload.Message)
}

func newAuthEngine(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{verifier: auth.NewVerifier(config.Config{APIToken: token})}

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())
	engine.GET("/api/ping", srv.TokenRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func TestTokenRequired(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"open when unconfigured", "", "", http.StatusOK},
		{"matching token", "s3cret", "Bearer s3cret", http.StatusOK},
		{"missing token", "s3cret", "", http.StatusUnauthorized},
		{"wrong token", "s3cret", "Bearer nope", http.StatusUnauthorized},
		{"malformed header", "s3cret", "s3cret", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newAuthEngine(tt.configured)

			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
