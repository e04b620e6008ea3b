package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runEventoRouter(g *echo.Group, ctrl *controllers.EventoController) {
	g.GET("/eventos", ctrl.GetEventos)
	g.GET("/eventos/:id", ctrl.FindEvento)
	g.POST("/eventos", ctrl.CreateEvento)
	g.PUT("/eventos/:id", ctrl.UpdateEvento)
	g.DELETE("/eventos/:id", ctrl.DeleteEvento)
}
