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

type MaterialController struct {
	materialService services.MaterialServiceInterface
	logger          *zap.Logger
}

func NewMaterialController(materialService services.MaterialServiceInterface, logger *zap.Logger) *MaterialController {
	return &MaterialController{materialService: materialService, logger: logger}
}

func (c *MaterialController) GetMateriais(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	materiais, total, err := c.materialService.GetMateriais(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, materiais, "Lista de materiais obtida com sucesso", http.StatusOK, total)
}

func (c *MaterialController) FindMaterial(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de material inválido"), c.logger)
	}

	res, err := c.materialService.FindMaterial(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Material encontrado com sucesso", http.StatusOK)
}

func (c *MaterialController) CreateMaterial(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.materialService.CreateMaterial(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Material criado com sucesso", http.StatusCreated)
}

func (c *MaterialController) UpdateMaterial(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de material inválido"), c.logger)
	}

	var payload dto.UpdateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.materialService.UpdateMaterial(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Material atualizado com sucesso", http.StatusOK)
}

func (c *MaterialController) DeleteMaterial(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de material inválido"), c.logger)
	}

	if err := c.materialService.DeleteMaterial(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
