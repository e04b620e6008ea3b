package routes

import (
	"github.com/labstack/echo/v4"

	"vivere-estoque/internal/controllers"
)

func runMaterialRouter(g *echo.Group, ctrl *controllers.MaterialController) {
	g.GET("/materiais", ctrl.GetMateriais)
	g.GET("/materiais/:id", ctrl.FindMaterial)
	g.POST("/materiais", ctrl.CreateMaterial)
	g.PUT("/materiais/:id", ctrl.UpdateMaterial)
	g.DELETE("/materiais/:id", ctrl.DeleteMaterial)
}
