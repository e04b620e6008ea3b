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

type EstoqueController struct {
	estoqueService services.EstoqueServiceInterface
	logger         *zap.Logger
}

func NewEstoqueController(estoqueService services.EstoqueServiceInterface, logger *zap.Logger) *EstoqueController {
	return &EstoqueController{estoqueService: estoqueService, logger: logger}
}

func (c *EstoqueController) GetEstoque(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	estoque, total, err := c.estoqueService.GetEstoque(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, estoque, "Estoque obtido com sucesso", http.StatusOK, total)
}

func (c *EstoqueController) FindEstoque(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de estoque inválido"), c.logger)
	}

	res, err := c.estoqueService.FindEstoque(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Registro de estoque encontrado com sucesso", http.StatusOK)
}

func (c *EstoqueController) CreateEstoque(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateEstoqueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.estoqueService.CreateEstoque(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Registro de estoque criado com sucesso", http.StatusCreated)
}

// AjustarEstoque handles POST /estoque/ajuste, the only mutation path
// for stock quantities.
func (c *EstoqueController) AjustarEstoque(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.AjusteEstoqueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.estoqueService.AjustarEstoque(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Estoque ajustado com sucesso", http.StatusOK)
}

func (c *EstoqueController) DeleteEstoque(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de estoque inválido"), c.logger)
	}

	if err := c.estoqueService.DeleteEstoque(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
