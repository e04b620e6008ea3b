package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type materialSeed struct {
	NomeItem  string
	Categoria string
}

var materiais = []materialSeed{
	{"Mesa dobrável", "Mobiliário"},
	{"Cadeira plástica", "Mobiliário"},
	{"Tenda 3x3", "Estruturas"},
	{"Palco modular 2x1", "Estruturas"},
	{"Caixa de som ativa", "Áudio"},
	{"Microfone sem fio", "Áudio"},
	{"Refletor LED 200W", "Iluminação"},
	{"Extensão elétrica 20m", "Elétrica"},
	{"Gerador 5kVA", "Elétrica"},
	{"Grade de contenção", "Segurança"},
}

func seedMateriais(ctx context.Context, db *pgxpool.Pool) error {
	for _, m := range materiais {
		_, err := db.Exec(ctx, `
			INSERT INTO materiais (nome_item, categoria)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM materiais WHERE nome_item = $1)
		`, m.NomeItem, m.Categoria)
		if err != nil {
			return err
		}
	}
	return nil
}
