package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/config"
	"vivere-estoque/pkg/constants"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
)

type EstoqueServiceInterface interface {
	GetEstoque(ctx context.Context, filter types.Filter) ([]dto.EstoqueDTO, uint64, error)
	FindEstoque(ctx context.Context, id uint64) (*dto.EstoqueDTO, error)
	CreateEstoque(ctx context.Context, payload dto.CreateEstoqueDTO) (*dto.EstoqueDTO, error)
	AjustarEstoque(ctx context.Context, payload dto.AjusteEstoqueDTO) (*dto.EstoqueDTO, error)
	DeleteEstoque(ctx context.Context, id uint64) error
}

type EstoqueService struct {
	estoqueRepo repositories.EstoqueRepositoryInterface
	txManager   repositories.TxManagerInterface
	audit       AuditServiceInterface
	logger      *zap.Logger
	cfg         *config.InventoryConfig
}

func NewEstoqueService(
	estoqueRepo repositories.EstoqueRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
	cfg *config.InventoryConfig,
) EstoqueServiceInterface {
	return &EstoqueService{
		estoqueRepo: estoqueRepo,
		txManager:   txManager,
		audit:       audit,
		logger:      logger,
		cfg:         cfg,
	}
}

func toEstoqueDTO(e entities.Estoque) dto.EstoqueDTO {
	result := dto.EstoqueDTO{
		ID:                   e.ID,
		MaterialID:           e.MaterialID,
		DepositoID:           e.DepositoID,
		QuantidadeDisponivel: e.QuantidadeDisponivel,
	}
	if e.Material != nil {
		result.NomeItem = e.Material.NomeItem
		result.Categoria = e.Material.Categoria
	}
	if e.Deposito != nil {
		result.NomeDeposito = e.Deposito.NomeDeposito
	}
	return result
}

// scopeFor narrows queries to the session's own warehouse. Admins see
// everything; a gestor only their depósito, enforced in SQL and not in
// the client.
func scopeFor(ctx context.Context) *uint64 {
	session := authz.FromContext(ctx)
	if session.IsGestor() {
		return session.DepositoID
	}
	return nil
}

func (s *EstoqueService) GetEstoque(ctx context.Context, filter types.Filter) ([]dto.EstoqueDTO, uint64, error) {
	estoques, total, err := s.estoqueRepo.GetEstoque(ctx, filter, scopeFor(ctx))
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EstoqueDTO, 0, len(estoques))
	for _, e := range estoques {
		result = append(result, toEstoqueDTO(e))
	}
	return result, total, nil
}

func (s *EstoqueService) FindEstoque(ctx context.Context, id uint64) (*dto.EstoqueDTO, error) {
	estoque, err := s.estoqueRepo.FindEstoque(ctx, id)
	if err != nil {
		return nil, err
	}

	session := authz.FromContext(ctx)
	if session.IsGestor() && estoque.DepositoID != session.Warehouse() {
		return nil, apperrors.ErrForbidden
	}

	result := toEstoqueDTO(*estoque)
	return &result, nil
}

func (s *EstoqueService) CreateEstoque(ctx context.Context, payload dto.CreateEstoqueDTO) (*dto.EstoqueDTO, error) {
	if err := s.checkWarehouseAccess(ctx, payload.DepositoID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.estoqueRepo.CreateEstoque(ctx, tx, entities.Estoque{
			MaterialID:           payload.MaterialID,
			DepositoID:           payload.DepositoID,
			QuantidadeDisponivel: payload.Quantidade,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_ESTOQUE",
		fmt.Sprintf("estoque criado para material %d no depósito %d (id %d)", payload.MaterialID, payload.DepositoID, newID))
	return s.FindEstoque(ctx, newID)
}

func (s *EstoqueService) AjustarEstoque(ctx context.Context, payload dto.AjusteEstoqueDTO) (*dto.EstoqueDTO, error) {
	if err := s.checkWarehouseAccess(ctx, payload.DepositoID); err != nil {
		return nil, err
	}

	var rowID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		estoque, err := s.estoqueRepo.FindForUpdate(ctx, tx, payload.MaterialID, payload.DepositoID)
		if err != nil {
			return err
		}
		rowID = estoque.ID

		novaQuantidade := estoque.QuantidadeDisponivel
		switch payload.Tipo {
		case constants.AjusteEntrada:
			novaQuantidade += payload.Quantidade
		case constants.AjusteSaida:
			if payload.Quantidade > estoque.QuantidadeDisponivel {
				return apperrors.NewBadRequestError(fmt.Sprintf(
					"saída de %d unidades excede a quantidade disponível (%d)",
					payload.Quantidade, estoque.QuantidadeDisponivel,
				))
			}
			novaQuantidade -= payload.Quantidade
		default:
			return apperrors.NewBadRequestError("tipo de ajuste inválido: use 'entrada' ou 'saida'")
		}

		return s.estoqueRepo.UpdateQuantidade(ctx, tx, estoque.ID, novaQuantidade)
	})
	if err != nil {
		return nil, err
	}

	descricao := fmt.Sprintf("%s de %d unidades do material %d no depósito %d",
		payload.Tipo, payload.Quantidade, payload.MaterialID, payload.DepositoID)
	if payload.Observacao != "" {
		descricao += ": " + payload.Observacao
	}
	s.audit.Record(ctx, nil, "AJUSTAR_ESTOQUE", descricao)

	return s.FindEstoque(ctx, rowID)
}

func (s *EstoqueService) DeleteEstoque(ctx context.Context, id uint64) error {
	estoque, err := s.estoqueRepo.FindEstoque(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkWarehouseAccess(ctx, estoque.DepositoID); err != nil {
		return err
	}

	if err := s.estoqueRepo.DeleteEstoque(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_ESTOQUE", fmt.Sprintf("registro de estoque %d excluído", id))
	return nil
}

func (s *EstoqueService) checkWarehouseAccess(ctx context.Context, depositoID uint64) error {
	session := authz.FromContext(ctx)
	if session.IsGestor() && session.Warehouse() != depositoID {
		return apperrors.ErrForbidden
	}
	return nil
}
