package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/services"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/service"
	"vivere-estoque/pkg/utils"
)

const refreshCookieName = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Formato de dados inválido para login"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	usuario, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(usuario.ID, usuario.Perfil, usuario.DepositoID)
	if err != nil {
		ctrl.logger.Error("falha ao gerar tokens", zap.Uint64("usuarioID", usuario.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setRefreshCookie(c, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	response := dto.LoginResponseDTO{
		AccessToken: accessToken,
		Usuario: dto.UsuarioDTO{
			ID:         usuario.ID,
			Nome:       usuario.Nome,
			Email:      usuario.Email,
			Perfil:     usuario.Perfil,
			DepositoID: usuario.DepositoID,
		},
	}

	return utils.SuccessResponse(c, response, "Autenticação realizada com sucesso", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	c.SetCookie(cookie)

	return utils.SuccessResponse(c, nil, "Sessão encerrada com sucesso", http.StatusOK)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	// Re-read the user so a perfil or warehouse change since the last
	// login lands in the new tokens.
	usuario, err := ctrl.authService.GetUsuarioByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(usuario.ID, usuario.Perfil, usuario.DepositoID)
	if err != nil {
		ctrl.logger.Error("falha ao gerar tokens no refresh", zap.Uint64("usuarioID", usuario.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setRefreshCookie(c, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	return utils.SuccessResponse(c, map[string]string{"access_token": accessToken}, "Tokens renovados com sucesso", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	session := authz.FromContext(c.Request().Context())
	if session.UserID == 0 {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	usuario, err := ctrl.authService.GetUsuarioByID(c.Request().Context(), session.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	response := dto.UsuarioDTO{
		ID:         usuario.ID,
		Nome:       usuario.Nome,
		Email:      usuario.Email,
		Perfil:     usuario.Perfil,
		DepositoID: usuario.DepositoID,
	}

	return utils.SuccessResponse(c, response, "Perfil do usuário obtido com sucesso", http.StatusOK)
}

func (ctrl *AuthController) setRefreshCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
