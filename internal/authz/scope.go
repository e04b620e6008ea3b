package authz

import "vivere-estoque/internal/entities"

// View scoping: given the full collections, compute the subset a given
// session may see. All functions are pure, keep the input order and
// never mutate their arguments. An administrator always sees the full
// set; a gestor only what is tied to their depósito.

// ScopedEvents returns the events visible to the session. For a gestor
// an event is visible iff at least one allocation draws material from
// their depósito; events with no matching allocation are excluded.
func ScopedEvents(s Session, eventos []entities.Evento, alocacoes []entities.Alocacao) []entities.Evento {
	if s.IsAdmin() {
		return eventos
	}

	byEvento := make(map[uint64]bool, len(alocacoes))
	for _, a := range alocacoes {
		if a.DepositoID == s.Warehouse() {
			byEvento[a.EventoID] = true
		}
	}

	scoped := make([]entities.Evento, 0, len(eventos))
	for _, e := range eventos {
		if byEvento[e.ID] {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

// ScopedStock returns the stock rows visible to the session.
func ScopedStock(s Session, estoque []entities.Estoque) []entities.Estoque {
	if s.IsAdmin() {
		return estoque
	}

	scoped := make([]entities.Estoque, 0, len(estoque))
	for _, row := range estoque {
		if row.DepositoID == s.Warehouse() {
			scoped = append(scoped, row)
		}
	}
	return scoped
}

// ScopedAllocationsForWarehouse filters allocations down to one
// depósito; used when an administrator drills into a warehouse detail.
// Callers always hold canonical records: the historic field-name
// variants are normalized at the JSON boundary, not here.
func ScopedAllocationsForWarehouse(depositoID uint64, alocacoes []entities.Alocacao) []entities.Alocacao {
	scoped := make([]entities.Alocacao, 0, len(alocacoes))
	for _, a := range alocacoes {
		if a.DepositoID == depositoID {
			scoped = append(scoped, a)
		}
	}
	return scoped
}

// LowStockCount counts rows below the threshold. A quantity of zero is
// "out of stock", a distinct display state, but still satisfies the
// `quantity < threshold` rule and therefore counts here as well.
func LowStockCount(estoque []entities.Estoque, threshold int) int {
	count := 0
	for _, row := range estoque {
		if row.QuantidadeDisponivel < threshold {
			count++
		}
	}
	return count
}

// OutOfStockCount counts rows with nothing available.
func OutOfStockCount(estoque []entities.Estoque) int {
	count := 0
	for _, row := range estoque {
		if row.QuantidadeDisponivel == 0 {
			count++
		}
	}
	return count
}

// TotalAvailable sums the available quantities of the given rows.
// Callers must pass the already-scoped list; summing the full dataset
// for a gestor would leak other warehouses into their dashboard.
func TotalAvailable(estoque []entities.Estoque) int {
	total := 0
	for _, row := range estoque {
		total += row.QuantidadeDisponivel
	}
	return total
}
