package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Starting quantities for the central warehouse; the other warehouses
// begin empty and are filled through ajustes.
var estoqueInicial = map[string]int{
	"Mesa dobrável":         40,
	"Cadeira plástica":      200,
	"Tenda 3x3":             12,
	"Palco modular 2x1":     16,
	"Caixa de som ativa":    8,
	"Microfone sem fio":     6,
	"Refletor LED 200W":     20,
	"Extensão elétrica 20m": 15,
	"Gerador 5kVA":          2,
	"Grade de contenção":    60,
}

func seedEstoque(ctx context.Context, db *pgxpool.Pool) error {
	for nomeItem, quantidade := range estoqueInicial {
		_, err := db.Exec(ctx, `
			INSERT INTO estoque (material_id, deposito_id, quantidade_disponivel)
			SELECT m.id, d.id, $3
			FROM materiais m, depositos d
			WHERE m.nome_item = $1 AND d.nome = $2
			  AND NOT EXISTS (
				SELECT 1 FROM estoque e
				WHERE e.material_id = m.id AND e.deposito_id = d.id
			  )
		`, nomeItem, "Depósito Central - Maricá", quantidade)
		if err != nil {
			return err
		}
	}
	return nil
}
