package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vivere-estoque/internal/entities"
	"vivere-estoque/pkg/config"
	apperrors "vivere-estoque/pkg/errors"
)

type fakeDashboardRepo struct {
	eventosAtivos    int
	eventosNovosMes  int
	depositos        int
	materiais        int
	eventosAPreparar map[uint64]int
}

func (f *fakeDashboardRepo) CountEventosAtivos(ctx context.Context) (int, error) {
	return f.eventosAtivos, nil
}

func (f *fakeDashboardRepo) CountEventosNovosMes(ctx context.Context) (int, error) {
	return f.eventosNovosMes, nil
}

func (f *fakeDashboardRepo) CountDepositos(ctx context.Context) (int, error) {
	return f.depositos, nil
}

func (f *fakeDashboardRepo) CountMateriais(ctx context.Context) (int, error) {
	return f.materiais, nil
}

func (f *fakeDashboardRepo) CountEventosAPreparar(ctx context.Context, depositoID uint64) (int, error) {
	return f.eventosAPreparar[depositoID], nil
}

func TestGetDashboard_AdminBlock(t *testing.T) {
	dashRepo := &fakeDashboardRepo{eventosAtivos: 4, eventosNovosMes: 2, depositos: 3, materiais: 10}
	svc := NewDashboardService(dashRepo, newFakeEstoqueRepo(), zap.NewNop(), &config.InventoryConfig{LowStockThreshold: 10})

	res, err := svc.GetDashboard(adminCtx())
	require.NoError(t, err)
	require.NotNil(t, res.Admin)
	assert.Nil(t, res.Gestor)
	assert.Equal(t, 4, res.Admin.EventosAtivos)
	assert.Equal(t, 2, res.Admin.NovosEventosMes)
	assert.Equal(t, 3, res.Admin.TotalDepositos)
	assert.Equal(t, 10, res.Admin.TotalMateriais)
}

func TestGetDashboard_GestorBlock(t *testing.T) {
	// warehouse 1 holds quantities 0, 5 and 20; with threshold 10 that is
	// two low-stock rows (zero included), one out-of-stock row and 25
	// units in total. Warehouse 2 must not leak into any count.
	estoqueRepo := newFakeEstoqueRepo(
		entities.Estoque{ID: 1, MaterialID: 1, DepositoID: 1, QuantidadeDisponivel: 0},
		entities.Estoque{ID: 2, MaterialID: 2, DepositoID: 1, QuantidadeDisponivel: 5},
		entities.Estoque{ID: 3, MaterialID: 3, DepositoID: 1, QuantidadeDisponivel: 20},
		entities.Estoque{ID: 4, MaterialID: 1, DepositoID: 2, QuantidadeDisponivel: 2},
	)
	dashRepo := &fakeDashboardRepo{eventosAPreparar: map[uint64]int{1: 3, 2: 9}}
	svc := NewDashboardService(dashRepo, estoqueRepo, zap.NewNop(), &config.InventoryConfig{LowStockThreshold: 10})

	res, err := svc.GetDashboard(gestorCtx(1))
	require.NoError(t, err)
	require.NotNil(t, res.Gestor)
	assert.Nil(t, res.Admin)
	assert.Equal(t, 3, res.Gestor.EventosAPreparar)
	assert.Equal(t, 2, res.Gestor.ItensBaixoEstoque)
	assert.Equal(t, 1, res.Gestor.ItensSemEstoque)
	assert.Equal(t, 25, res.Gestor.TotalDisponivel)
}

func TestGetDashboard_AnonymousForbidden(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, newFakeEstoqueRepo(), zap.NewNop(), &config.InventoryConfig{LowStockThreshold: 10})

	_, err := svc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
