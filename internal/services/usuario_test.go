package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/entities"
	"vivere-estoque/pkg/constants"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
)

type fakeUsuarioRepo struct {
	rows   []entities.Usuario
	nextID uint64
}

func newFakeUsuarioRepo(rows ...entities.Usuario) *fakeUsuarioRepo {
	next := uint64(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeUsuarioRepo{rows: rows, nextID: next}
}

func (f *fakeUsuarioRepo) GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error) {
	return f.rows, uint64(len(f.rows)), nil
}

func (f *fakeUsuarioRepo) FindUsuario(ctx context.Context, id uint64) (*entities.Usuario, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) CreateUsuario(ctx context.Context, tx pgx.Tx, usuario entities.Usuario) (uint64, error) {
	usuario.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, usuario)
	return usuario.ID, nil
}

func (f *fakeUsuarioRepo) UpdateUsuario(ctx context.Context, tx pgx.Tx, id uint64, usuario entities.Usuario) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			usuario.ID = id
			f.rows[i] = usuario
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) DeleteUsuario(ctx context.Context, id uint64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeDepositoRepo struct {
	ids map[uint64]bool
}

func (f *fakeDepositoRepo) GetDepositos(ctx context.Context, filter types.Filter) ([]entities.Deposito, uint64, error) {
	return nil, 0, nil
}

func (f *fakeDepositoRepo) FindDeposito(ctx context.Context, id uint64) (*entities.Deposito, error) {
	if f.ids[id] {
		return &entities.Deposito{ID: id}, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeDepositoRepo) CreateDeposito(ctx context.Context, tx pgx.Tx, deposito entities.Deposito) (uint64, error) {
	return 0, nil
}

func (f *fakeDepositoRepo) UpdateDeposito(ctx context.Context, tx pgx.Tx, id uint64, deposito entities.Deposito) error {
	return nil
}

func (f *fakeDepositoRepo) DeleteDeposito(ctx context.Context, id uint64) error {
	return nil
}

func newUsuarioService(usuarioRepo *fakeUsuarioRepo, depositoRepo *fakeDepositoRepo) UsuarioServiceInterface {
	return NewUsuarioService(usuarioRepo, depositoRepo, fakeTxManager{}, nopAudit{}, zap.NewNop())
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateUsuario_GestorRequiresWarehouse(t *testing.T) {
	svc := newUsuarioService(newFakeUsuarioRepo(), &fakeDepositoRepo{ids: map[uint64]bool{1: true}})

	_, err := svc.CreateUsuario(adminCtx(), dto.CreateUsuarioDTO{
		Nome: "Maria", Email: "maria@vivere.com.br", Senha: "segredo1",
		Perfil: constants.PerfilGestor,
	})
	assertBadRequest(t, err)
}

func TestCreateUsuario_GestorWarehouseMustExist(t *testing.T) {
	svc := newUsuarioService(newFakeUsuarioRepo(), &fakeDepositoRepo{ids: map[uint64]bool{1: true}})

	depositoID := uint64(99)
	_, err := svc.CreateUsuario(adminCtx(), dto.CreateUsuarioDTO{
		Nome: "Maria", Email: "maria@vivere.com.br", Senha: "segredo1",
		Perfil: constants.PerfilGestor, DepositoID: &depositoID,
	})
	assertBadRequest(t, err)
}

func TestCreateUsuario_AdminCannotHaveWarehouse(t *testing.T) {
	svc := newUsuarioService(newFakeUsuarioRepo(), &fakeDepositoRepo{ids: map[uint64]bool{1: true}})

	depositoID := uint64(1)
	_, err := svc.CreateUsuario(adminCtx(), dto.CreateUsuarioDTO{
		Nome: "João", Email: "joao@vivere.com.br", Senha: "segredo1",
		Perfil: constants.PerfilAdministrador, DepositoID: &depositoID,
	})
	assertBadRequest(t, err)
}

func TestCreateUsuario_GestorBoundToWarehouse(t *testing.T) {
	svc := newUsuarioService(newFakeUsuarioRepo(), &fakeDepositoRepo{ids: map[uint64]bool{1: true}})

	depositoID := uint64(1)
	res, err := svc.CreateUsuario(adminCtx(), dto.CreateUsuarioDTO{
		Nome: "Maria", Email: "maria@vivere.com.br", Senha: "segredo1",
		Perfil: constants.PerfilGestor, DepositoID: &depositoID,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.PerfilGestor, res.Perfil)
	require.NotNil(t, res.DepositoID)
	assert.Equal(t, uint64(1), *res.DepositoID)
}

func TestUpdateUsuario_PromotionToAdminDropsWarehouse(t *testing.T) {
	depositoID := uint64(1)
	repo := newFakeUsuarioRepo(entities.Usuario{
		ID: 5, Nome: "Maria", Email: "maria@vivere.com.br",
		Perfil: constants.PerfilGestor, DepositoID: &depositoID,
	})
	svc := newUsuarioService(repo, &fakeDepositoRepo{ids: map[uint64]bool{1: true}})

	res, err := svc.UpdateUsuario(adminCtx(), 5, dto.UpdateUsuarioDTO{
		Perfil: null.StringFrom(constants.PerfilAdministrador),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.PerfilAdministrador, res.Perfil)
	assert.Nil(t, res.DepositoID)
}
