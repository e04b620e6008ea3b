package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivere-estoque/internal/entities"
	"vivere-estoque/pkg/constants"
)

func adminSession() Session {
	return Session{UserID: 1, Perfil: constants.PerfilAdministrador}
}

func gestorSession(depositoID uint64) Session {
	return Session{UserID: 2, Perfil: constants.PerfilGestor, DepositoID: &depositoID}
}

func TestSessionPredicates(t *testing.T) {
	assert.True(t, adminSession().IsAdmin())
	assert.False(t, adminSession().IsGestor())

	assert.True(t, gestorSession(1).IsGestor())
	assert.False(t, gestorSession(1).IsAdmin())

	// Anonymous session: both predicates false, the behaviour after
	// logout.
	var anon Session
	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.IsGestor())
	assert.Zero(t, anon.Warehouse())
}

func TestScopedEventsAdminIsIdentity(t *testing.T) {
	eventos := []entities.Evento{{ID: 3}, {ID: 1}, {ID: 2}}
	alocacoes := []entities.Alocacao{{ID: 1, EventoID: 1, DepositoID: 9}}

	scoped := ScopedEvents(adminSession(), eventos, alocacoes)

	// Same set, same order, for any allocation list.
	assert.Equal(t, eventos, scoped)
}

func TestScopedEventsGestor(t *testing.T) {
	eventos := []entities.Evento{{ID: 1, NomeEvento: "Montagem Palco"}, {ID: 2, NomeEvento: "Feira Exposição"}}
	alocacoes := []entities.Alocacao{
		{ID: 10, EventoID: 1, MaterialID: 5, DepositoID: 1, QuantidadeAlocada: 4},
	}

	scoped := ScopedEvents(gestorSession(1), eventos, alocacoes)

	require.Len(t, scoped, 1)
	assert.Equal(t, uint64(1), scoped[0].ID)

	// No allocation for depósito 2: the gestor there sees nothing.
	assert.Empty(t, ScopedEvents(gestorSession(2), eventos, alocacoes))
}

func TestScopedEventsDoesNotDuplicate(t *testing.T) {
	eventos := []entities.Evento{{ID: 1}}
	alocacoes := []entities.Alocacao{
		{ID: 1, EventoID: 1, DepositoID: 1},
		{ID: 2, EventoID: 1, DepositoID: 1},
	}

	scoped := ScopedEvents(gestorSession(1), eventos, alocacoes)
	assert.Len(t, scoped, 1, "um evento com várias alocações aparece uma única vez")
}

func TestScopedStock(t *testing.T) {
	estoque := []entities.Estoque{
		{ID: 1, DepositoID: 1, QuantidadeDisponivel: 0},
		{ID: 2, DepositoID: 1, QuantidadeDisponivel: 5},
		{ID: 3, DepositoID: 2, QuantidadeDisponivel: 20},
	}

	assert.Equal(t, estoque, ScopedStock(adminSession(), estoque))

	scoped := ScopedStock(gestorSession(1), estoque)
	require.Len(t, scoped, 2)
	assert.Equal(t, uint64(1), scoped[0].ID)
	assert.Equal(t, uint64(2), scoped[1].ID)
}

func TestAggregatesOverScopedSubset(t *testing.T) {
	estoque := []entities.Estoque{
		{ID: 1, DepositoID: 1, QuantidadeDisponivel: 0},
		{ID: 2, DepositoID: 1, QuantidadeDisponivel: 5},
		{ID: 3, DepositoID: 2, QuantidadeDisponivel: 20},
	}

	scoped := ScopedStock(gestorSession(1), estoque)

	// Quantity 0 is "out" but still counts as low per the < threshold
	// rule; the two states are reported separately.
	assert.Equal(t, 2, LowStockCount(scoped, 10))
	assert.Equal(t, 1, OutOfStockCount(scoped))
	assert.Equal(t, 5, TotalAvailable(scoped))

	// The admin aggregates run over everything.
	all := ScopedStock(adminSession(), estoque)
	assert.Equal(t, 25, TotalAvailable(all))
}

func TestScopedAllocationsForWarehouse(t *testing.T) {
	alocacoes := []entities.Alocacao{
		{ID: 1, EventoID: 1, DepositoID: 1},
		{ID: 2, EventoID: 1, DepositoID: 2},
		{ID: 3, EventoID: 2, DepositoID: 1},
	}

	scoped := ScopedAllocationsForWarehouse(1, alocacoes)
	require.Len(t, scoped, 2)
	assert.Equal(t, uint64(1), scoped[0].ID)
	assert.Equal(t, uint64(3), scoped[1].ID)
}

func TestScopingNeverMutatesInput(t *testing.T) {
	eventos := []entities.Evento{{ID: 1}, {ID: 2}}
	alocacoes := []entities.Alocacao{{ID: 1, EventoID: 2, DepositoID: 7}}

	_ = ScopedEvents(gestorSession(7), eventos, alocacoes)

	assert.Equal(t, uint64(1), eventos[0].ID)
	assert.Equal(t, uint64(2), eventos[1].ID)
}
