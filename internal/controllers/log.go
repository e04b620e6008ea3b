package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vivere-estoque/internal/services"
	"vivere-estoque/pkg/utils"
)

type LogController struct {
	logService services.LogServiceInterface
	logger     *zap.Logger
}

func NewLogController(logService services.LogServiceInterface, logger *zap.Logger) *LogController {
	return &LogController{logService: logService, logger: logger}
}

func (c *LogController) GetLogs(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	logs, total, err := c.logService.GetLogs(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, logs, "Logs de auditoria obtidos com sucesso", http.StatusOK, total)
}
