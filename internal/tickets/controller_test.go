package tickets_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"festtix/internal/tickets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	tickets.SetupTicketRoutes(e.Group("/api/v1"), tickets.NewController())
	return e
}

func TestController_ValidateSelection(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		code      int
		valid     bool
		unitPrice *float64
		message   string
	}{
		{
			name:      "valid saturday vip",
			body:      `{"product_code":"vip_1_day","days":["sat"]}`,
			code:      http.StatusOK,
			valid:     true,
			unitPrice: ptr(350),
		},
		{
			name:    "rejected two day",
			body:    `{"product_code":"GENERAL_2_DAY","days":["FRI","SAT"]}`,
			code:    http.StatusOK,
			message: "The 2-day pass is valid on Friday, Sunday and Monday only.",
		},
		{
			name:    "unknown product",
			body:    `{"product_code":"BACKSTAGE","days":[]}`,
			code:    http.StatusOK,
			message: "Invalid product code.",
		},
		{
			name: "missing product",
			body: `{"days":["FRI"]}`,
			code: http.StatusBadRequest,
		},
		{
			name: "bad json",
			body: `{`,
			code: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/validate", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			newEngine().ServeHTTP(w, r)

			require.Equal(t, tt.code, w.Code)
			if tt.code != http.StatusOK {
				return
			}

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			var data struct {
				Valid     bool     `json:"valid"`
				Message   string   `json:"message"`
				UnitPrice *float64 `json:"unit_price"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			require.Equal(t, tt.valid, data.Valid)
			require.Equal(t, tt.message, data.Message)
			require.Equal(t, tt.unitPrice, data.UnitPrice)
		})
	}
}

func TestController_GetCatalog(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", http.NoBody)
	newEngine().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 6)
	require.Equal(t, "GENERAL_1_DAY", entries[0]["code"])
}

func ptr(f float64) *float64 { return &f }
