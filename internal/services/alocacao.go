package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
)

type AlocacaoServiceInterface interface {
	GetAlocacoes(ctx context.Context, filter types.Filter) ([]dto.AlocacaoDTO, uint64, error)
	GetAlocacoesByDeposito(ctx context.Context, depositoID uint64) ([]dto.AlocacaoDTO, error)
	FindAlocacao(ctx context.Context, id uint64) (*dto.AlocacaoDTO, error)
	CreateAlocacao(ctx context.Context, payload dto.CreateAlocacaoDTO) (*dto.AlocacaoDTO, error)
	UpdateAlocacao(ctx context.Context, id uint64, payload dto.UpdateAlocacaoDTO) (*dto.AlocacaoDTO, error)
	DeleteAlocacao(ctx context.Context, id uint64) error
}

type AlocacaoService struct {
	alocacaoRepo repositories.AlocacaoRepositoryInterface
	eventoRepo   repositories.EventoRepositoryInterface
	materialRepo repositories.MaterialRepositoryInterface
	depositoRepo repositories.DepositoRepositoryInterface
	txManager    repositories.TxManagerInterface
	audit        AuditServiceInterface
	logger       *zap.Logger
}

func NewAlocacaoService(
	alocacaoRepo repositories.AlocacaoRepositoryInterface,
	eventoRepo repositories.EventoRepositoryInterface,
	materialRepo repositories.MaterialRepositoryInterface,
	depositoRepo repositories.DepositoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
) AlocacaoServiceInterface {
	return &AlocacaoService{
		alocacaoRepo: alocacaoRepo,
		eventoRepo:   eventoRepo,
		materialRepo: materialRepo,
		depositoRepo: depositoRepo,
		txManager:    txManager,
		audit:        audit,
		logger:       logger,
	}
}

func toAlocacaoDTO(a entities.Alocacao) dto.AlocacaoDTO {
	result := dto.AlocacaoDTO{
		ID:                a.ID,
		EventoID:          a.EventoID,
		MaterialID:        a.MaterialID,
		DepositoID:        a.DepositoID,
		QuantidadeAlocada: a.QuantidadeAlocada,
		Observacao:        a.Observacao,
	}
	if a.Evento != nil {
		result.NomeEvento = a.Evento.NomeEvento
	}
	if a.Material != nil {
		result.NomeItem = a.Material.NomeItem
	}
	if a.Deposito != nil {
		result.NomeDeposito = a.Deposito.NomeDeposito
	}
	return result
}

func (s *AlocacaoService) GetAlocacoes(ctx context.Context, filter types.Filter) ([]dto.AlocacaoDTO, uint64, error) {
	alocacoes, total, err := s.alocacaoRepo.GetAlocacoes(ctx, filter, scopeFor(ctx))
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.AlocacaoDTO, 0, len(alocacoes))
	for _, a := range alocacoes {
		result = append(result, toAlocacaoDTO(a))
	}
	return result, total, nil
}

func (s *AlocacaoService) GetAlocacoesByDeposito(ctx context.Context, depositoID uint64) ([]dto.AlocacaoDTO, error) {
	session := authz.FromContext(ctx)
	if session.IsGestor() && session.Warehouse() != depositoID {
		return nil, apperrors.ErrForbidden
	}

	filter := types.Filter{Filter: map[string]interface{}{"deposito_id": depositoID}}
	alocacoes, _, err := s.alocacaoRepo.GetAlocacoes(ctx, filter, &depositoID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AlocacaoDTO, 0, len(alocacoes))
	for _, a := range alocacoes {
		result = append(result, toAlocacaoDTO(a))
	}
	return result, nil
}

func (s *AlocacaoService) FindAlocacao(ctx context.Context, id uint64) (*dto.AlocacaoDTO, error) {
	alocacao, err := s.alocacaoRepo.FindAlocacao(ctx, id)
	if err != nil {
		return nil, err
	}

	session := authz.FromContext(ctx)
	if session.IsGestor() && alocacao.DepositoID != session.Warehouse() {
		return nil, apperrors.ErrForbidden
	}

	result := toAlocacaoDTO(*alocacao)
	return &result, nil
}

// checkReferences rejects an allocation pointing at records that do not
// exist, answering 400 instead of surfacing a constraint violation.
func (s *AlocacaoService) checkReferences(ctx context.Context, eventoID, materialID, depositoID uint64) error {
	if _, err := s.eventoRepo.FindEvento(ctx, eventoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError(fmt.Sprintf("evento %d não existe", eventoID))
		}
		return err
	}
	if _, err := s.materialRepo.FindMaterial(ctx, materialID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError(fmt.Sprintf("material %d não existe", materialID))
		}
		return err
	}
	if _, err := s.depositoRepo.FindDeposito(ctx, depositoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError(fmt.Sprintf("depósito %d não existe", depositoID))
		}
		return err
	}
	return nil
}

func (s *AlocacaoService) CreateAlocacao(ctx context.Context, payload dto.CreateAlocacaoDTO) (*dto.AlocacaoDTO, error) {
	session := authz.FromContext(ctx)
	if session.IsGestor() && session.Warehouse() != payload.DepositoID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.checkReferences(ctx, payload.EventoID, payload.MaterialID, payload.DepositoID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.alocacaoRepo.CreateAlocacao(ctx, tx, entities.Alocacao{
			EventoID:          payload.EventoID,
			MaterialID:        payload.MaterialID,
			DepositoID:        payload.DepositoID,
			QuantidadeAlocada: payload.QuantidadeAlocada,
			Observacao:        payload.Observacao,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_ALOCACAO",
		fmt.Sprintf("alocação de %d unidades do material %d (depósito %d) para o evento %d",
			payload.QuantidadeAlocada, payload.MaterialID, payload.DepositoID, payload.EventoID))
	return s.FindAlocacao(ctx, newID)
}

func (s *AlocacaoService) UpdateAlocacao(ctx context.Context, id uint64, payload dto.UpdateAlocacaoDTO) (*dto.AlocacaoDTO, error) {
	existing, err := s.alocacaoRepo.FindAlocacao(ctx, id)
	if err != nil {
		return nil, err
	}

	session := authz.FromContext(ctx)
	if session.IsGestor() {
		if existing.DepositoID != session.Warehouse() || payload.DepositoID != session.Warehouse() {
			return nil, apperrors.ErrForbidden
		}
	}

	if _, err := s.depositoRepo.FindDeposito(ctx, payload.DepositoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("depósito %d não existe", payload.DepositoID))
		}
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.alocacaoRepo.UpdateAlocacao(ctx, tx, id, entities.Alocacao{
			DepositoID:        payload.DepositoID,
			QuantidadeAlocada: payload.QuantidadeAlocada,
			Observacao:        payload.Observacao,
		})
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "ATUALIZAR_ALOCACAO", fmt.Sprintf("alocação %d atualizada", id))
	return s.FindAlocacao(ctx, id)
}

func (s *AlocacaoService) DeleteAlocacao(ctx context.Context, id uint64) error {
	existing, err := s.alocacaoRepo.FindAlocacao(ctx, id)
	if err != nil {
		return err
	}

	session := authz.FromContext(ctx)
	if session.IsGestor() && existing.DepositoID != session.Warehouse() {
		return apperrors.ErrForbidden
	}

	if err := s.alocacaoRepo.DeleteAlocacao(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_ALOCACAO", fmt.Sprintf("alocação %d excluída", id))
	return nil
}
