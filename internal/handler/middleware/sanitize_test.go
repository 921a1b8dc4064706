//go:build unit

package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skipass-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", mw, func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func TestSanitizeJSON(t *testing.T) {
	r := echoRouter(middleware.SanitizeJSON("name"))

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success: strips markup from named fields only", func(t *testing.T) {
		w := send(`{"name":"<script>alert(1)</script>Ana","password":"<b>p@ss</b>"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Ana", got["name"])
		assert.Equal(t, "<b>p@ss</b>", got["password"])
	})

	t.Run("success: ampersands and apostrophes survive as plain text", func(t *testing.T) {
		w := send(`{"name":"Ana & Bob O'Neil <b>x</b>"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Ana & Bob O'Neil x", got["name"])
	})

	t.Run("success: entity-encoded markup is stripped too", func(t *testing.T) {
		w := send(`{"name":"Ana &lt;script&gt;alert(1)&lt;/script&gt;"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Ana ", got["name"])
	})

	t.Run("success: text without markup is untouched", func(t *testing.T) {
		body := `{"name":"Ana & Bob O'Neil"}`
		w := send(body)
		assert.Equal(t, body, w.Body.String())
	})

	t.Run("success: clean body passes through byte for byte", func(t *testing.T) {
		body := `{"name":"Ana Pop"}`
		w := send(body)
		assert.Equal(t, body, w.Body.String())
	})

	t.Run("error: malformed JSON is 400", func(t *testing.T) {
		w := send(`{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Malformed JSON")
	})
}
