package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/config"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessExpiration = 900
	cfg.JWT.RefreshExpiration = 1209600

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)
	return h
}

func TestGenerateTokenPair(t *testing.T) {
	h := newTestHandler(t)
	employee := &domain.Employee{ID: 42, Role: domain.RoleModerator, SubunitID: 3}

	pair, err := h.generateTokenPair(employee)
	require.NoError(t, err)
	assert.Equal(t, int64(42), pair.EmployeeID)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// 访问令牌应该带上员工 ID 和角色
	claims := &AuthClaims{}
	_, err = jwt.ParseWithClaims(pair.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(employee.ID, 10), claims.Subject)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, "access", claims.TokenType)

	// 刷新令牌可以解析回员工 ID
	employeeID, err := h.parseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), employeeID)
}

func TestAuthMiddlewareAcceptsAccessToken(t *testing.T) {
	h := newTestHandler(t)
	employee := &domain.Employee{ID: 5, Role: domain.RoleEmployee}

	pair, err := h.generateTokenPair(employee)
	require.NoError(t, err)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		assert.Equal(t, "5", r.Context().Value(SubCtxKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/identity", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)
	assert.True(t, reached, "携带访问令牌的请求应该通过认证")
}

// 刷新令牌不能当作访问令牌使用
func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	h := newTestHandler(t)
	employee := &domain.Employee{ID: 5, Role: domain.RoleEmployee}

	pair, err := h.generateTokenPair(employee)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("携带刷新令牌的请求不应该通过认证")
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/identity", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	h := newTestHandler(t)
	employee := &domain.Employee{ID: 7, Role: domain.RoleEmployee}

	pair, err := h.generateTokenPair(employee)
	require.NoError(t, err)

	// 访问令牌不是刷新令牌，不能用来刷新
	_, err = h.parseRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsWrongSecret(t *testing.T) {
	h := newTestHandler(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   "1",
		},
	})
	signed, err := token.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = h.parseRefreshToken(signed)
	assert.Error(t, err, "其他密钥签发的令牌应该被拒绝")
}

func TestParseRefreshTokenRejectsExpired(t *testing.T) {
	h := newTestHandler(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Subject:   "1",
		},
	})
	signed, err := token.SignedString([]byte(h.config.JWT.Secret))
	require.NoError(t, err)

	_, err = h.parseRefreshToken(signed)
	assert.Error(t, err, "过期的刷新令牌应该被拒绝")
}
