package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// shared test doubles

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type nopAudit struct{}

func (nopAudit) Record(ctx context.Context, q repositories.Querier, acao, descricao string) {}

type fakeEstoqueRepo struct {
	rows   []entities.Estoque
	nextID uint64
}

func newFakeEstoqueRepo(rows ...entities.Estoque) *fakeEstoqueRepo {
	next := uint64(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeEstoqueRepo{rows: rows, nextID: next}
}

func (f *fakeEstoqueRepo) GetEstoque(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Estoque, uint64, error) {
	result := make([]entities.Estoque, 0, len(f.rows))
	for _, r := range f.rows {
		if scopeDeposito != nil && r.DepositoID != *scopeDeposito {
			continue
		}
		result = append(result, r)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeEstoqueRepo) GetEstoqueByDeposito(ctx context.Context, depositoID uint64) ([]entities.Estoque, error) {
	rows, _, err := f.GetEstoque(ctx, types.Filter{}, &depositoID)
	return rows, err
}

func (f *fakeEstoqueRepo) FindEstoque(ctx context.Context, id uint64) (*entities.Estoque, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEstoqueRepo) FindForUpdate(ctx context.Context, tx pgx.Tx, materialID, depositoID uint64) (*entities.Estoque, error) {
	for i := range f.rows {
		if f.rows[i].MaterialID == materialID && f.rows[i].DepositoID == depositoID {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEstoqueRepo) CreateEstoque(ctx context.Context, tx pgx.Tx, estoque entities.Estoque) (uint64, error) {
	estoque.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, estoque)
	return estoque.ID, nil
}

func (f *fakeEstoqueRepo) UpdateQuantidade(ctx context.Context, tx pgx.Tx, id uint64, quantidade int) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].QuantidadeDisponivel = quantidade
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeEstoqueRepo) DeleteEstoque(ctx context.Context, id uint64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func adminCtx() context.Context {
	return authz.WithSession(context.Background(), authz.Session{UserID: 1, Perfil: constants.PerfilAdministrador})
}

func gestorCtx(depositoID uint64) context.Context {
	return authz.WithSession(context.Background(), authz.Session{UserID: 2, Perfil: constants.PerfilGestor, DepositoID: &depositoID})
}

func newEstoqueService(repo repositories.EstoqueRepositoryInterface) EstoqueServiceInterface {
	cfg := &config.InventoryConfig{LowStockThreshold: 10}
	return NewEstoqueService(repo, fakeTxManager{}, nopAudit{}, zap.NewNop(), cfg)
}

func TestAjustarEstoque_EntradaAddsQuantity(t *testing.T) {
	repo := newFakeEstoqueRepo(entities.Estoque{ID: 1, MaterialID: 3, DepositoID: 1, QuantidadeDisponivel: 5})
	svc := newEstoqueService(repo)

	res, err := svc.AjustarEstoque(adminCtx(), dto.AjusteEstoqueDTO{
		MaterialID: 3, DepositoID: 1, Tipo: constants.AjusteEntrada, Quantidade: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, res.QuantidadeDisponivel)
}

func TestAjustarEstoque_SaidaCannotExceedAvailable(t *testing.T) {
	repo := newFakeEstoqueRepo(entities.Estoque{ID: 1, MaterialID: 3, DepositoID: 1, QuantidadeDisponivel: 5})
	svc := newEstoqueService(repo)

	_, err := svc.AjustarEstoque(adminCtx(), dto.AjusteEstoqueDTO{
		MaterialID: 3, DepositoID: 1, Tipo: constants.AjusteSaida, Quantidade: 6,
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)

	// the failed saida must not have touched the stored quantity
	row, err := repo.FindEstoque(adminCtx(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, row.QuantidadeDisponivel)
}

func TestAjustarEstoque_SaidaToZeroIsAllowed(t *testing.T) {
	repo := newFakeEstoqueRepo(entities.Estoque{ID: 1, MaterialID: 3, DepositoID: 1, QuantidadeDisponivel: 5})
	svc := newEstoqueService(repo)

	res, err := svc.AjustarEstoque(adminCtx(), dto.AjusteEstoqueDTO{
		MaterialID: 3, DepositoID: 1, Tipo: constants.AjusteSaida, Quantidade: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.QuantidadeDisponivel)
}

func TestAjustarEstoque_GestorLimitedToOwnWarehouse(t *testing.T) {
	repo := newFakeEstoqueRepo(entities.Estoque{ID: 1, MaterialID: 3, DepositoID: 2, QuantidadeDisponivel: 5})
	svc := newEstoqueService(repo)

	_, err := svc.AjustarEstoque(gestorCtx(1), dto.AjusteEstoqueDTO{
		MaterialID: 3, DepositoID: 2, Tipo: constants.AjusteEntrada, Quantidade: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetEstoque_GestorSeesOnlyOwnWarehouse(t *testing.T) {
	repo := newFakeEstoqueRepo(
		entities.Estoque{ID: 1, MaterialID: 1, DepositoID: 1, QuantidadeDisponivel: 0},
		entities.Estoque{ID: 2, MaterialID: 2, DepositoID: 1, QuantidadeDisponivel: 5},
		entities.Estoque{ID: 3, MaterialID: 3, DepositoID: 2, QuantidadeDisponivel: 20},
	)
	svc := newEstoqueService(repo)

	rows, total, err := svc.GetEstoque(gestorCtx(1), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, uint64(1), r.DepositoID)
	}

	all, totalAdmin, err := svc.GetEstoque(adminCtx(), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), totalAdmin)
	assert.Len(t, all, 3)
}

func TestFindEstoque_GestorForbiddenOnForeignRow(t *testing.T) {
	repo := newFakeEstoqueRepo(entities.Estoque{ID: 3, MaterialID: 3, DepositoID: 2, QuantidadeDisponivel: 20})
	svc := newEstoqueService(repo)

	_, err := svc.FindEstoque(gestorCtx(1), 3)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
