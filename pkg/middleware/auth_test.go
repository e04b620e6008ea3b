package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/pkg/constants"
	"vivere-estoque/pkg/service"
)

func authTestSetup(t *testing.T) (*echo.Echo, *AuthMiddleware, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("chave-de-teste", time.Hour, 24*time.Hour, zap.NewNop())
	return echo.New(), NewAuthMiddleware(jwtSvc, zap.NewNop()), jwtSvc
}

func performAuth(e *echo.Echo, mw *AuthMiddleware, header string) (*httptest.ResponseRecorder, authz.Session) {
	var captured authz.Session
	handler := mw.Auth(func(c echo.Context) error {
		captured = authz.FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/depositos", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec, captured
}

func TestAuth_ValidTokenBuildsSession(t *testing.T) {
	e, mw, jwtSvc := authTestSetup(t)

	depositoID := uint64(3)
	access, _, err := jwtSvc.GenerateTokens(42, constants.PerfilGestor, &depositoID)
	require.NoError(t, err)

	rec, session := performAuth(e, mw, "Bearer "+access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), session.UserID)
	assert.True(t, session.IsGestor())
	assert.Equal(t, uint64(3), session.Warehouse())
}

func TestAuth_MissingHeader(t *testing.T) {
	e, mw, _ := authTestSetup(t)

	rec, _ := performAuth(e, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	e, mw, _ := authTestSetup(t)

	rec, _ := performAuth(e, mw, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	e, mw, jwtSvc := authTestSetup(t)

	_, refresh, err := jwtSvc.GenerateTokens(42, constants.PerfilAdministrador, nil)
	require.NoError(t, err)

	rec, _ := performAuth(e, mw, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	e, mw, _ := authTestSetup(t)

	handler := mw.AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(s authz.Session) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
		req = req.WithContext(authz.WithSession(req.Context(), s))
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
		return rec
	}

	depositoID := uint64(1)
	rec := run(authz.Session{UserID: 2, Perfil: constants.PerfilGestor, DepositoID: &depositoID})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = run(authz.Session{UserID: 1, Perfil: constants.PerfilAdministrador})
	assert.Equal(t, http.StatusOK, rec.Code)
}
