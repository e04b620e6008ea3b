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

type AlocacaoController struct {
	alocacaoService services.AlocacaoServiceInterface
	logger          *zap.Logger
}

func NewAlocacaoController(alocacaoService services.AlocacaoServiceInterface, logger *zap.Logger) *AlocacaoController {
	return &AlocacaoController{alocacaoService: alocacaoService, logger: logger}
}

func (c *AlocacaoController) GetAlocacoes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	alocacoes, total, err := c.alocacaoService.GetAlocacoes(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, alocacoes, "Lista de alocações obtida com sucesso", http.StatusOK, total)
}

func (c *AlocacaoController) GetAlocacoesByDeposito(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	depositoID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de depósito inválido"), c.logger)
	}

	alocacoes, err := c.alocacaoService.GetAlocacoesByDeposito(reqCtx, depositoID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, alocacoes, "Alocações do depósito obtidas com sucesso", http.StatusOK)
}

func (c *AlocacaoController) FindAlocacao(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de alocação inválido"), c.logger)
	}

	res, err := c.alocacaoService.FindAlocacao(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Alocação encontrada com sucesso", http.StatusOK)
}

func (c *AlocacaoController) CreateAlocacao(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateAlocacaoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.alocacaoService.CreateAlocacao(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Alocação criada com sucesso", http.StatusCreated)
}

func (c *AlocacaoController) UpdateAlocacao(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de alocação inválido"), c.logger)
	}

	var payload dto.UpdateAlocacaoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.alocacaoService.UpdateAlocacao(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Alocação atualizada com sucesso", http.StatusOK)
}

func (c *AlocacaoController) DeleteAlocacao(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de alocação inválido"), c.logger)
	}

	if err := c.alocacaoService.DeleteAlocacao(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
