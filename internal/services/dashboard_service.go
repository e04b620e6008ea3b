package services

import (
	"context"

	"go.uber.org/zap"

	"vivere-estoque/internal/authz"
	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/config"
	apperrors "vivere-estoque/pkg/errors"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	estoqueRepo   repositories.EstoqueRepositoryInterface
	logger        *zap.Logger
	cfg           *config.InventoryConfig
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	estoqueRepo repositories.EstoqueRepositoryInterface,
	logger *zap.Logger,
	cfg *config.InventoryConfig,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		estoqueRepo:   estoqueRepo,
		logger:        logger,
		cfg:           cfg,
	}
}

// GetDashboard answers with the block matching the session's perfil.
// Admin aggregates span every warehouse; the gestor block is computed
// over the rows of their depósito only.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	session := authz.FromContext(ctx)

	switch {
	case session.IsAdmin():
		admin, err := s.adminDashboard(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardDTO{Admin: admin}, nil
	case session.IsGestor():
		gestor, err := s.gestorDashboard(ctx, session)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardDTO{Gestor: gestor}, nil
	}
	return nil, apperrors.ErrForbidden
}

func (s *DashboardService) adminDashboard(ctx context.Context) (*dto.DashboardAdminDTO, error) {
	eventosAtivos, err := s.dashboardRepo.CountEventosAtivos(ctx)
	if err != nil {
		return nil, err
	}
	novosEventos, err := s.dashboardRepo.CountEventosNovosMes(ctx)
	if err != nil {
		return nil, err
	}
	totalDepositos, err := s.dashboardRepo.CountDepositos(ctx)
	if err != nil {
		return nil, err
	}
	totalMateriais, err := s.dashboardRepo.CountMateriais(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardAdminDTO{
		EventosAtivos:   eventosAtivos,
		NovosEventosMes: novosEventos,
		TotalDepositos:  totalDepositos,
		TotalMateriais:  totalMateriais,
	}, nil
}

func (s *DashboardService) gestorDashboard(ctx context.Context, session authz.Session) (*dto.DashboardGestorDTO, error) {
	eventosAPreparar, err := s.dashboardRepo.CountEventosAPreparar(ctx, session.Warehouse())
	if err != nil {
		return nil, err
	}

	estoque, err := s.estoqueRepo.GetEstoqueByDeposito(ctx, session.Warehouse())
	if err != nil {
		return nil, err
	}
	scoped := authz.ScopedStock(session, estoque)

	return &dto.DashboardGestorDTO{
		EventosAPreparar:  eventosAPreparar,
		ItensBaixoEstoque: authz.LowStockCount(scoped, s.cfg.LowStockThreshold),
		ItensSemEstoque:   authz.OutOfStockCount(scoped),
		TotalDisponivel:   authz.TotalAvailable(scoped),
	}, nil
}
