package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonRequest(handler gin.HandlerFunc, method, target, body string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "empty cart",
			body:     `{"items":[],"sessionDay":"2026-08-31","orderType":"onsite","paymentMethod":"cash"}`,
			wantCode: 400,
			wantErr:  "at least one item",
		},
		{
			name:     "bad session day",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"31-08-2026","orderType":"onsite","paymentMethod":"cash"}`,
			wantCode: 400,
			wantErr:  "sessionDay",
		},
		{
			name:     "unknown order type",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"2026-08-31","orderType":"spaceship","paymentMethod":"cash"}`,
			wantCode: 400,
			wantErr:  "order type",
		},
		{
			name:     "unknown product",
			body:     `{"items":[{"name":"Zupa dnia","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","paymentMethod":"cash"}`,
			wantCode: 400,
			wantErr:  "unknown product",
		},
		{
			name:     "burger without meat variant",
			body:     `{"items":[{"name":"CLASSIC","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","paymentMethod":"cash"}`,
			wantCode: 400,
			wantErr:  "no price",
		},
		{
			name:     "unknown payment method",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","paymentMethod":"goats"}`,
			wantCode: 400,
			wantErr:  "payment method",
		},
		{
			name:     "negative discount",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","paymentMethod":"cash","discount":-1}`,
			wantCode: 400,
			wantErr:  "negative",
		},
		{
			// items 3.00, discount 5.00: the displayed total clamps to zero
			// but the split must settle -2.00, so near-zero entries fail
			name:     "split settles the unclamped total",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","discount":5,"splitPayment":[{"method":"cash","amount":0.01}]}`,
			wantCode: 400,
			wantErr:  "split payments sum",
		},
		{
			name:     "split with only zero amounts",
			body:     `{"items":[{"name":"Sos","qty":1}],"sessionDay":"2026-08-31","orderType":"onsite","splitPayment":[{"method":"cash","amount":0}]}`,
			wantCode: 400,
			wantErr:  "at least one amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := jsonRequest(CreateOrder, "POST", "/orders", tt.body, nil)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestEditOrderValidation(t *testing.T) {
	params := gin.Params{{Key: "id", Value: "64f000000000000000000001"}}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown order type",
			body:    `{"items":[{"name":"Sos","qty":1,"price":3}],"orderType":"spaceship"}`,
			wantErr: "order type",
		},
		{
			name:    "unknown payment method",
			body:    `{"items":[{"name":"Sos","qty":1,"price":3}],"orderType":"onsite","paymentMethod":"goats"}`,
			wantErr: "payment method",
		},
		{
			name:    "negative discount",
			body:    `{"items":[{"name":"Sos","qty":1,"price":3}],"orderType":"onsite","paymentMethod":"cash","discount":-2}`,
			wantErr: "negative",
		},
		{
			name:    "empty items",
			body:    `{"items":[],"orderType":"onsite","paymentMethod":"cash"}`,
			wantErr: "at least one item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := jsonRequest(EditOrder, "PUT", "/orders/64f000000000000000000001", tt.body, params)
			assert.Equal(t, 400, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}
