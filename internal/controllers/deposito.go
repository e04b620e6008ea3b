package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/services"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/utils"
)

type DepositoController struct {
	depositoService services.DepositoServiceInterface
	logger          *zap.Logger
}

func NewDepositoController(depositoService services.DepositoServiceInterface, logger *zap.Logger) *DepositoController {
	return &DepositoController{depositoService: depositoService, logger: logger}
}

func (c *DepositoController) GetDepositos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	depositos, total, err := c.depositoService.GetDepositos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, depositos, "Lista de depósitos obtida com sucesso", http.StatusOK, total)
}

func (c *DepositoController) FindDeposito(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de depósito inválido"), c.logger)
	}

	res, err := c.depositoService.FindDeposito(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Depósito encontrado com sucesso", http.StatusOK)
}

func (c *DepositoController) CreateDeposito(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateDepositoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.depositoService.CreateDeposito(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Depósito criado com sucesso", http.StatusCreated)
}

func (c *DepositoController) UpdateDeposito(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de depósito inválido"), c.logger)
	}

	var payload dto.UpdateDepositoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.depositoService.UpdateDeposito(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Depósito atualizado com sucesso", http.StatusOK)
}

func (c *DepositoController) DeleteDeposito(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de depósito inválido"), c.logger)
	}

	if err := c.depositoService.DeleteDeposito(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
