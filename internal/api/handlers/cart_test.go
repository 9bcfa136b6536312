package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/pkg/errors"
)

func TestRespondCartErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"NotConfigured", &errors.ErrNotConfigured{}, http.StatusServiceUnavailable},
		{"Validation", &errors.ErrValidation{Message: "quantity must be positive"}, http.StatusUnprocessableEntity},
		{"RemoteValidation", &errors.ErrRemoteValidation{Op: "cartLinesAdd", Messages: []string{"out of stock"}}, http.StatusUnprocessableEntity},
		{"NotFound", &errors.ErrNotFound{Resource: "cart", ID: "x"}, http.StatusNotFound},
		{"Transport", &errors.ErrTransport{Op: "cartCreate", Err: fmt.Errorf("dial tcp: refused")}, http.StatusBadGateway},
		{"Unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondCartError(c, zap.NewNop(), "test", tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRespondCartErrorSurfacesRemoteMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondCartError(c, zap.NewNop(), "add lines", &errors.ErrRemoteValidation{
		Op:       "cartLinesAdd",
		Messages: []string{"The variant is out of stock", "Invalid merchandise"},
	})

	var body struct {
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"The variant is out of stock", "Invalid merchandise"}, body.Messages)
}

func TestRespondCartErrorHidesTransportDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondCartError(c, zap.NewNop(), "get cart", &errors.ErrTransport{
		Op:  "getCart",
		Err: fmt.Errorf("dial tcp 10.0.0.5:443: i/o timeout"),
	})

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
