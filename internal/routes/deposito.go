package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runDepositoRouter(g *echo.Group, ctrl *controllers.DepositoController) {
	g.GET("/depositos", ctrl.GetDepositos)
	g.GET("/depositos/:id", ctrl.FindDeposito)
	g.POST("/depositos", ctrl.CreateDeposito)
	g.PUT("/depositos/:id", ctrl.UpdateDeposito)
	g.DELETE("/depositos/:id", ctrl.DeleteDeposito)
}
