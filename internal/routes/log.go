package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
	"vivere-estoque/pkg/middleware"
)

func runLogRouter(g *echo.Group, ctrl *controllers.LogController, authMW *middleware.AuthMiddleware) {
	g.GET("/logs", ctrl.GetLogs, authMW.AdminOnly)
}
