package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/types"
)

type DepositoServiceInterface interface {
	GetDepositos(ctx context.Context, filter types.Filter) ([]dto.DepositoDTO, uint64, error)
	FindDeposito(ctx context.Context, id uint64) (*dto.DepositoDTO, error)
	CreateDeposito(ctx context.Context, payload dto.CreateDepositoDTO) (*dto.DepositoDTO, error)
	UpdateDeposito(ctx context.Context, id uint64, payload dto.UpdateDepositoDTO) (*dto.DepositoDTO, error)
	DeleteDeposito(ctx context.Context, id uint64) error
}

type DepositoService struct {
	depositoRepo repositories.DepositoRepositoryInterface
	txManager    repositories.TxManagerInterface
	audit        AuditServiceInterface
	logger       *zap.Logger
}

func NewDepositoService(
	depositoRepo repositories.DepositoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
) DepositoServiceInterface {
	return &DepositoService{
		depositoRepo: depositoRepo,
		txManager:    txManager,
		audit:        audit,
		logger:       logger,
	}
}

func toDepositoDTO(d entities.Deposito) dto.DepositoDTO {
	return dto.DepositoDTO{
		ID:           d.ID,
		NomeDeposito: d.NomeDeposito,
		Endereco:     d.Endereco,
	}
}

func (s *DepositoService) GetDepositos(ctx context.Context, filter types.Filter) ([]dto.DepositoDTO, uint64, error) {
	depositos, total, err := s.depositoRepo.GetDepositos(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.DepositoDTO, 0, len(depositos))
	for _, d := range depositos {
		result = append(result, toDepositoDTO(d))
	}
	return result, total, nil
}

func (s *DepositoService) FindDeposito(ctx context.Context, id uint64) (*dto.DepositoDTO, error) {
	deposito, err := s.depositoRepo.FindDeposito(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toDepositoDTO(*deposito)
	return &result, nil
}

func (s *DepositoService) CreateDeposito(ctx context.Context, payload dto.CreateDepositoDTO) (*dto.DepositoDTO, error) {
	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.depositoRepo.CreateDeposito(ctx, tx, entities.Deposito{
			NomeDeposito: payload.NomeDeposito,
			Endereco:     payload.Endereco,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_DEPOSITO", fmt.Sprintf("depósito %q criado (id %d)", payload.NomeDeposito, newID))
	return s.FindDeposito(ctx, newID)
}

func (s *DepositoService) UpdateDeposito(ctx context.Context, id uint64, payload dto.UpdateDepositoDTO) (*dto.DepositoDTO, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.depositoRepo.UpdateDeposito(ctx, tx, id, entities.Deposito{
			NomeDeposito: payload.NomeDeposito,
			Endereco:     payload.Endereco,
		})
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "ATUALIZAR_DEPOSITO", fmt.Sprintf("depósito %d atualizado", id))
	return s.FindDeposito(ctx, id)
}

func (s *DepositoService) DeleteDeposito(ctx context.Context, id uint64) error {
	if err := s.depositoRepo.DeleteDeposito(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_DEPOSITO", fmt.Sprintf("depósito %d excluído", id))
	return nil
}
