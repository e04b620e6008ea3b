package services

import (
	"context"

	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/types"
)

type ReportServiceInterface interface {
	GetEstoqueReport(ctx context.Context) ([]dto.EstoqueDTO, error)
}

// reportService feeds the stock export. The same warehouse scoping of
// the stock listing applies: a gestor exports only their depósito.
type reportService struct {
	estoqueRepo repositories.EstoqueRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(
	estoqueRepo repositories.EstoqueRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{estoqueRepo: estoqueRepo, logger: logger}
}

func (s *reportService) GetEstoqueReport(ctx context.Context) ([]dto.EstoqueDTO, error) {
	filter := types.Filter{WithPagination: false}
	estoques, _, err := s.estoqueRepo.GetEstoque(ctx, filter, scopeFor(ctx))
	if err != nil {
		return nil, err
	}

	result := make([]dto.EstoqueDTO, 0, len(estoques))
	for _, e := range estoques {
		result = append(result, toEstoqueDTO(e))
	}
	return result, nil
}
