package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/infrastructure/auth"
	"github.com/gymdesk/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "gymdesk-test",
		MaxRefreshCount:        3,
	})
}

func accessTokenFor(t *testing.T, svc *auth.JWTService, role string) string {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "staff@example.com",
		Role:   role,
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func newJWTTestEngine(svc *auth.JWTService) *gin.Engine {
	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{
		JWTService: svc,
		SkipPaths:  []string{"/open"},
	}))
	engine.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	engine.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": GetJWTRole(c)})
	})
	return engine
}

func doRequest(engine *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set(AuthHeaderKey, bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	svc := newTestJWTService()
	engine := newJWTTestEngine(svc)

	w := doRequest(engine, "/protected", BearerPrefix+accessTokenFor(t, svc, "staff"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role": "staff"}`, w.Body.String())
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	engine := newJWTTestEngine(newTestJWTService())

	w := doRequest(engine, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_INVALID", errorCode(t, w))
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	engine := newJWTTestEngine(newTestJWTService())

	w := doRequest(engine, "/protected", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	other := auth.NewJWTService(config.JWTConfig{
		Secret:                 "a-different-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "gymdesk-test",
	})
	engine := newJWTTestEngine(newTestJWTService())

	w := doRequest(engine, "/protected", BearerPrefix+accessTokenFor(t, other, "staff"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_INVALID", errorCode(t, w))
}

func TestJWTAuthMiddleware_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newTestJWTService()
	engine := newJWTTestEngine(svc)

	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "staff@example.com",
		Role:   "staff",
	})
	require.NoError(t, err)

	w := doRequest(engine, "/protected", BearerPrefix+pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_SkipPath(t *testing.T) {
	engine := newJWTTestEngine(newTestJWTService())

	w := doRequest(engine, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
