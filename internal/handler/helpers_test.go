package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"teamhub/internal/middleware"
	"teamhub/internal/models"
	"teamhub/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// withContext stands in for the auth and team middleware.
func withContext(user *models.User, team *models.Team) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserIDKey, user.ID.Hex())
			c.Set(middleware.UserKey, user)
		}
		if team != nil {
			c.Set(middleware.TeamKey, team)
		}
		c.Next()
	}
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()
	if s, ok := body.(string); ok {
		return bytes.NewBufferString(s)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func serve(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
	Fields  map[string]string      `json:"fields"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
