package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/service"
	"vivere-estoque/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth validates the bearer token and stores the rebuilt session in the
// request context. A missing or malformed token yields 401, never a
// panic: restoring a session from bad durable state just means
// "anonymous".
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token rejeitado", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		session := authz.Session{
			UserID:     claims.UserID,
			Perfil:     claims.Perfil,
			DepositoID: claims.DepositoID,
		}
		c.SetRequest(c.Request().WithContext(authz.WithSession(c.Request().Context(), session)))

		return next(c)
	}
}

// AdminOnly must be chained after Auth.
func (m *AuthMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := authz.FromContext(c.Request().Context())
		if !session.IsAdmin() {
			m.logger.Warn("acesso restrito a administradores",
				zap.Uint64("userID", session.UserID),
				zap.String("perfil", session.Perfil),
			)
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}
