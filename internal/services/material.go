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

type MaterialServiceInterface interface {
	GetMateriais(ctx context.Context, filter types.Filter) ([]dto.MaterialDTO, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*dto.MaterialDTO, error)
	CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*dto.MaterialDTO, error)
	UpdateMaterial(ctx context.Context, id uint64, payload dto.UpdateMaterialDTO) (*dto.MaterialDTO, error)
	DeleteMaterial(ctx context.Context, id uint64) error
}

type MaterialService struct {
	materialRepo repositories.MaterialRepositoryInterface
	txManager    repositories.TxManagerInterface
	audit        AuditServiceInterface
	logger       *zap.Logger
}

func NewMaterialService(
	materialRepo repositories.MaterialRepositoryInterface,
	txManager repositories.TxManagerInterface,
	audit AuditServiceInterface,
	logger *zap.Logger,
) MaterialServiceInterface {
	return &MaterialService{
		materialRepo: materialRepo,
		txManager:    txManager,
		audit:        audit,
		logger:       logger,
	}
}

func toMaterialDTO(m entities.Material) dto.MaterialDTO {
	return dto.MaterialDTO{
		ID:        m.ID,
		NomeItem:  m.NomeItem,
		Categoria: m.Categoria,
	}
}

func (s *MaterialService) GetMateriais(ctx context.Context, filter types.Filter) ([]dto.MaterialDTO, uint64, error) {
	materiais, total, err := s.materialRepo.GetMateriais(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.MaterialDTO, 0, len(materiais))
	for _, m := range materiais {
		result = append(result, toMaterialDTO(m))
	}
	return result, total, nil
}

func (s *MaterialService) FindMaterial(ctx context.Context, id uint64) (*dto.MaterialDTO, error) {
	material, err := s.materialRepo.FindMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toMaterialDTO(*material)
	return &result, nil
}

func (s *MaterialService) CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*dto.MaterialDTO, error) {
	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newID, err = s.materialRepo.CreateMaterial(ctx, tx, entities.Material{
			NomeItem:  payload.NomeItem,
			Categoria: payload.Categoria,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "CRIAR_MATERIAL", fmt.Sprintf("material %q criado (id %d)", payload.NomeItem, newID))
	return s.FindMaterial(ctx, newID)
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id uint64, payload dto.UpdateMaterialDTO) (*dto.MaterialDTO, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.materialRepo.UpdateMaterial(ctx, tx, id, entities.Material{
			NomeItem:  payload.NomeItem,
			Categoria: payload.Categoria,
		})
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, nil, "ATUALIZAR_MATERIAL", fmt.Sprintf("material %d atualizado", id))
	return s.FindMaterial(ctx, id)
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uint64) error {
	if err := s.materialRepo.DeleteMaterial(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, nil, "EXCLUIR_MATERIAL", fmt.Sprintf("material %d excluído", id))
	return nil
}
