package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/constants"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
)

const eventoDateLayout = "2006-01-02"

type EventoServiceInterface interface {
	GetEventos(ctx context.Context, filter types.Filter) ([]dto.EventoDTO, uint64, error)
	FindEvento(ctx context.Context, id uint64) (*dto.EventoDTO, error)
	CreateEvento(ctx context.Context, payload dto.CreateEventoDTO) (*dto.EventoDTO, error)
	UpdateEvento(ctx context.Context, id uint64, payload dto.UpdateEventoDTO) (*dto.EventoDTO, error)
	DeleteEvento(ctx context.Context, id uint64) error
}

type EventoService struct {
	eventoRepo   repositories.EventoRepositoryInterface
	alocacaoRepo repositories.AlocacaoRepositoryInterface
	txManager    repositories.TxManagerInterface
	audit        AuditServiceInterface
	logger       *zap.Logger
}

func NewEventoService(
	eventoRepo repositories.EventoRepositoryInterface,
	alocacaoRepo repositories.AlocacaoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
) EventoServiceInterface {
	return &EventoService{
		eventoRepo:   eventoRepo,
		alocacaoRepo: alocacaoRepo,
		txManager:    txManager,
		audit:        audit,
		logger:       logger,
	}
}

func toEventoDTO(e entities.Evento) dto.EventoDTO {
	return dto.EventoDTO{
		ID:         e.ID,
		NomeEvento: e.NomeEvento,
		Cliente:    e.Cliente,
		Status:     e.Status,
		DataInicio: e.DataInicio.Format(eventoDateLayout),
		DataFim:    e.DataFim.Format(eventoDateLayout),
	}
}

func validEventoStatus(status string) bool {
	switch status {
	case constants.EventoConfirmado, constants.EventoEmAndamento,
		constants.EventoFinalizado, constants.EventoCancelado:
		return true
	}
	return false
}

func (s *EventoService) GetEventos(ctx context.Context, filter types.Filter) ([]dto.EventoDTO, uint64, error) {
	eventos, total, err := s.eventoRepo.GetEventos(ctx, filter, scopeFor(ctx))
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EventoDTO, 0, len(eventos))
	for _, e := range eventos {
		result = append(result, toEventoDTO(e))
	}
	return result, total, nil
}

func (s *EventoService) FindEvento(ctx context.Context, id uint64) (*dto.EventoDTO, error) {
	evento, err := s.eventoRepo.FindEvento(ctx, id)
	if err != nil {
		return nil, err
	}

	session := authz.FromContext(ctx)
	if session.IsGestor() {
		visible, err := s.eventoVisibleToGestor(ctx, id, session.Warehouse())
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, apperrors.ErrForbidden
		}
	}

	result := toEventoDTO(*evento)
	return &result, nil
}

// eventoVisibleToGestor reports whether at least one allocation of the
// event draws from the gestor's warehouse.
func (s *EventoService) eventoVisibleToGestor(ctx context.Context, eventoID, depositoID uint64) (bool, error) {
	alocacoes, err := s.alocacaoRepo.GetAlocacoesByEvento(ctx, eventoID)
	if err != nil {
		return false, err
	}
	for _, a := range alocacoes {
		if a.DepositoID == depositoID {
			return true, nil
		}
	}
	return false, nil
}

func (s *EventoService) CreateEvento(ctx context.Context, payload dto.CreateEventoDTO) (*dto.EventoDTO, error) {
	dataInicio, err := time.Parse(eventoDateLayout, payload.DataInicio)
	if err != nil {
		return nil, apperrors.NewBadRequestError("data_inicio inválida: use o formato AAAA-MM-DD")
	}
	dataFim, err := time.Parse(eventoDateLayout, payload.DataFim)
	if err != nil {
		return nil, apperrors.NewBadRequestError("data_fim inválida: use o formato AAAA-MM-DD")
	}
	if dataFim.Before(dataInicio) {
		return nil, apperrors.NewBadRequestError("data_fim não pode ser anterior a data_inicio")
	}

	status := payload.Status
	if status == "" {
		status = constants.EventoConfirmado
	}
	if !validEventoStatus(status) {
		return nil, apperrors.NewBadRequestError("status de evento inválido")
	}

	var newID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.eventoRepo.CreateEvento(ctx, tx, entities.Evento{
			NomeEvento: payload.NomeEvento,
			Cliente:    payload.Cliente,
			Status:     status,
			DataInicio: dataInicio,
			DataFim:    dataFim,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_EVENTO", fmt.Sprintf("evento %q criado (id %d)", payload.NomeEvento, newID))
	return s.FindEvento(ctx, newID)
}

func (s *EventoService) UpdateEvento(ctx context.Context, id uint64, payload dto.UpdateEventoDTO) (*dto.EventoDTO, error) {
	existing, err := s.eventoRepo.FindEvento(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.NomeEvento.Valid {
		updated.NomeEvento = payload.NomeEvento.String
	}
	if payload.Cliente.Valid {
		updated.Cliente = payload.Cliente.String
	}
	if payload.Status.Valid {
		if !validEventoStatus(payload.Status.String) {
			return nil, apperrors.NewBadRequestError("status de evento inválido")
		}
		updated.Status = payload.Status.String
	}
	if payload.DataInicio.Valid {
		dataInicio, err := time.Parse(eventoDateLayout, payload.DataInicio.String)
		if err != nil {
			return nil, apperrors.NewBadRequestError("data_inicio inválida: use o formato AAAA-MM-DD")
		}
		updated.DataInicio = dataInicio
	}
	if payload.DataFim.Valid {
		dataFim, err := time.Parse(eventoDateLayout, payload.DataFim.String)
		if err != nil {
			return nil, apperrors.NewBadRequestError("data_fim inválida: use o formato AAAA-MM-DD")
		}
		updated.DataFim = dataFim
	}
	if updated.DataFim.Before(updated.DataInicio) {
		return nil, apperrors.NewBadRequestError("data_fim não pode ser anterior a data_inicio")
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.eventoRepo.UpdateEvento(ctx, tx, id, updated)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "ATUALIZAR_EVENTO", fmt.Sprintf("evento %d atualizado", id))
	return s.FindEvento(ctx, id)
}

func (s *EventoService) DeleteEvento(ctx context.Context, id uint64) error {
	if err := s.eventoRepo.DeleteEvento(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_EVENTO", fmt.Sprintf("evento %d excluído", id))
	return nil
}
