package services

import (
	"context"
	"errors"
	"testing"

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

type fakeEventoRepo struct {
	rows   []entities.Evento
	nextID uint64
}

func newFakeEventoRepo(rows ...entities.Evento) *fakeEventoRepo {
	next := uint64(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeEventoRepo{rows: rows, nextID: next}
}

func (f *fakeEventoRepo) GetEventos(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Evento, uint64, error) {
	return f.rows, uint64(len(f.rows)), nil
}

func (f *fakeEventoRepo) FindEvento(ctx context.Context, id uint64) (*entities.Evento, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEventoRepo) CreateEvento(ctx context.Context, tx pgx.Tx, evento entities.Evento) (uint64, error) {
	evento.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, evento)
	return evento.ID, nil
}

func (f *fakeEventoRepo) UpdateEvento(ctx context.Context, tx pgx.Tx, id uint64, evento entities.Evento) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			evento.ID = id
			f.rows[i] = evento
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeEventoRepo) DeleteEvento(ctx context.Context, id uint64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeAlocacaoRepo struct {
	rows []entities.Alocacao
}

func (f *fakeAlocacaoRepo) GetAlocacoes(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Alocacao, uint64, error) {
	return f.rows, uint64(len(f.rows)), nil
}

func (f *fakeAlocacaoRepo) GetAlocacoesByEvento(ctx context.Context, eventoID uint64) ([]entities.Alocacao, error) {
	result := make([]entities.Alocacao, 0, len(f.rows))
	for _, a := range f.rows {
		if a.EventoID == eventoID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAlocacaoRepo) FindAlocacao(ctx context.Context, id uint64) (*entities.Alocacao, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAlocacaoRepo) CreateAlocacao(ctx context.Context, tx pgx.Tx, alocacao entities.Alocacao) (uint64, error) {
	alocacao.ID = uint64(len(f.rows) + 1)
	f.rows = append(f.rows, alocacao)
	return alocacao.ID, nil
}

func (f *fakeAlocacaoRepo) UpdateAlocacao(ctx context.Context, tx pgx.Tx, id uint64, alocacao entities.Alocacao) error {
	return nil
}

func (f *fakeAlocacaoRepo) DeleteAlocacao(ctx context.Context, id uint64) error {
	return nil
}

func newEventoService(eventoRepo *fakeEventoRepo, alocacaoRepo *fakeAlocacaoRepo) EventoServiceInterface {
	return NewEventoService(eventoRepo, alocacaoRepo, fakeTxManager{}, nopAudit{}, zap.NewNop())
}

func TestCreateEvento_DefaultsToConfirmado(t *testing.T) {
	svc := newEventoService(newFakeEventoRepo(), &fakeAlocacaoRepo{})

	res, err := svc.CreateEvento(adminCtx(), dto.CreateEventoDTO{
		NomeEvento: "Festival de Verão",
		Cliente:    "Prefeitura de Maricá",
		DataInicio: "2026-01-10",
		DataFim:    "2026-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.EventoConfirmado, res.Status)
	assert.Equal(t, "2026-01-10", res.DataInicio)
	assert.Equal(t, "2026-01-12", res.DataFim)
}

func TestCreateEvento_RejectsEndBeforeStart(t *testing.T) {
	svc := newEventoService(newFakeEventoRepo(), &fakeAlocacaoRepo{})

	_, err := svc.CreateEvento(adminCtx(), dto.CreateEventoDTO{
		NomeEvento: "Festival de Verão",
		Cliente:    "Prefeitura de Maricá",
		DataInicio: "2026-01-12",
		DataFim:    "2026-01-10",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateEvento_RejectsBadDateFormat(t *testing.T) {
	svc := newEventoService(newFakeEventoRepo(), &fakeAlocacaoRepo{})

	_, err := svc.CreateEvento(adminCtx(), dto.CreateEventoDTO{
		NomeEvento: "Festival de Verão",
		Cliente:    "Prefeitura de Maricá",
		DataInicio: "10/01/2026",
		DataFim:    "2026-01-12",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)
}

func TestFindEvento_GestorVisibility(t *testing.T) {
	eventoRepo := newFakeEventoRepo(entities.Evento{ID: 1, NomeEvento: "Festa Junina", Status: constants.EventoConfirmado})
	alocacaoRepo := &fakeAlocacaoRepo{rows: []entities.Alocacao{
		{ID: 1, EventoID: 1, MaterialID: 2, DepositoID: 2, QuantidadeAlocada: 10},
	}}
	svc := newEventoService(eventoRepo, alocacaoRepo)

	// gestor of warehouse 2 supplies the event, gestor of warehouse 1 does not
	res, err := svc.FindEvento(gestorCtx(2), 1)
	require.NoError(t, err)
	assert.Equal(t, "Festa Junina", res.NomeEvento)

	_, err = svc.FindEvento(gestorCtx(1), 1)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
