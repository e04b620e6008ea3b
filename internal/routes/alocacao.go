package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runAlocacaoRouter(g *echo.Group, ctrl *controllers.AlocacaoController) {
	g.GET("/alocacoes", ctrl.GetAlocacoes)
	g.GET("/alocacoes/deposito/:id", ctrl.GetAlocacoesByDeposito)
	g.GET("/alocacoes/:id", ctrl.FindAlocacao)
	g.POST("/alocacoes", ctrl.CreateAlocacao)
	g.PUT("/alocacoes/:id", ctrl.UpdateAlocacao)
	g.DELETE("/alocacoes/:id", ctrl.DeleteAlocacao)
}
