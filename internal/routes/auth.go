package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.RefreshToken)

	secure.POST("/auth/logout", ctrl.Logout)
	secure.GET("/auth/me", ctrl.Me)
}
