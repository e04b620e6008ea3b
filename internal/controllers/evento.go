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

type EventoController struct {
	eventoService services.EventoServiceInterface
	logger        *zap.Logger
}

func NewEventoController(eventoService services.EventoServiceInterface, logger *zap.Logger) *EventoController {
	return &EventoController{eventoService: eventoService, logger: logger}
}

func (c *EventoController) GetEventos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	eventos, total, err := c.eventoService.GetEventos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, eventos, "Lista de eventos obtida com sucesso", http.StatusOK, total)
}

func (c *EventoController) FindEvento(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de evento inválido"), c.logger)
	}

	res, err := c.eventoService.FindEvento(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Evento encontrado com sucesso", http.StatusOK)
}

func (c *EventoController) CreateEvento(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateEventoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventoService.CreateEvento(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Evento criado com sucesso", http.StatusCreated)
}

func (c *EventoController) UpdateEvento(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de evento inválido"), c.logger)
	}

	var payload dto.UpdateEventoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de dados inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventoService.UpdateEvento(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Evento atualizado com sucesso", http.StatusOK)
}

func (c *EventoController) DeleteEvento(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de evento inválido"), c.logger)
	}

	if err := c.eventoService.DeleteEvento(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
