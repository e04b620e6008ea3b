package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
	"vivere-estoque/pkg/middleware"
)

func runUsuarioRouter(g *echo.Group, ctrl *controllers.UsuarioController, authMW *middleware.AuthMiddleware) {
	usuarios := g.Group("/usuarios", authMW.AdminOnly)

	usuarios.GET("", ctrl.GetUsuarios)
	usuarios.GET("/:id", ctrl.FindUsuario)
	usuarios.POST("", ctrl.CreateUsuario)
	usuarios.PUT("/:id", ctrl.UpdateUsuario)
	usuarios.DELETE("/:id", ctrl.DeleteUsuario)
}
