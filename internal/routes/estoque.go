package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runEstoqueRouter(g *echo.Group, ctrl *controllers.EstoqueController) {
	g.GET("/estoque", ctrl.GetEstoque)
	g.GET("/estoque/:id", ctrl.FindEstoque)
	g.POST("/estoque", ctrl.CreateEstoque)
	g.POST("/estoque/ajuste", ctrl.AjustarEstoque)
	g.DELETE("/estoque/:id", ctrl.DeleteEstoque)

	// Read alias kept for older screens that still call the stock
	// listing "inventário".
	g.GET("/inventario", ctrl.GetEstoque)
}
