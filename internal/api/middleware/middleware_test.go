package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"balloon-flights-backend/internal/config"
	"balloon-flights-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(), Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(&config.Config{AllowedOrigins: []string{"http://flights.local"}}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://flights.local")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://flights.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSanitize(t *testing.T) {
	router := gin.New()
	router.Use(Sanitize())
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	send := func(contentType, body string) string {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	t.Run("strips markup from json strings", func(t *testing.T) {
		out := send("application/json", `{"code":"<b>ABC123</b><script>x()</script>","year":1999}`)
		assert.JSONEq(t, `{"code":"ABC123","year":1999}`, out)
	})

	t.Run("plain text kept as typed", func(t *testing.T) {
		out := send("application/json", `{"last_name":"O'Brien","name":"Smith & Co","code":"a < b"}`)
		assert.JSONEq(t, `{"last_name":"O'Brien","name":"Smith & Co","code":"a < b"}`, out)
	})

	t.Run("entity encoded markup is stripped", func(t *testing.T) {
		out := send("application/json", `{"name":"&lt;script&gt;x()&lt;/script&gt;Balkan Air"}`)
		assert.JSONEq(t, `{"name":"Balkan Air"}`, out)
	})

	t.Run("malformed json passes through", func(t *testing.T) {
		assert.Equal(t, `{"code":`, send("application/json", `{"code":`))
	})

	t.Run("other content types untouched", func(t *testing.T) {
		assert.Equal(t, "code=<b>x</b>", send("application/x-www-form-urlencoded", "code=<b>x</b>"))
	})
}

func TestLimitBody(t *testing.T) {
	router := gin.New()
	router.Use(LimitBody(16), Sanitize())
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	t.Run("within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("json over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestNoSniff(t *testing.T) {
	router := gin.New()
	router.Use(NoSniff())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestLoggerRecordsAuthenticatedUser(t *testing.T) {
	logger.Setup("info")
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logger.Setup("info") })

	router := gin.New()
	router.Use(Logger())
	router.GET("/me", func(c *gin.Context) {
		// RequireAuth stores the username under this key
		c.Set("username", "ana")
		c.Status(http.StatusOK)
	})
	router.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })

	readLine := func() map[string]interface{} {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
		buf.Reset()
		return line
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))
	line := readLine()
	assert.Equal(t, "ana", line["user"])
	assert.Equal(t, "/me", line["path"])
	assert.EqualValues(t, http.StatusOK, line["status"])

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, "anonymous", readLine()["user"])
}
