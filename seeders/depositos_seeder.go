package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type depositoSeed struct {
	Nome     string
	Endereco string
}

var depositos = []depositoSeed{
	{"Depósito Central - Maricá", "Rua das Flores, 120 - Centro, Maricá/RJ"},
	{"Depósito Itaipuaçu", "Av. Carlos Marighella, 340 - Itaipuaçu, Maricá/RJ"},
	{"Depósito Ponta Negra", "Estrada de Ponta Negra, 88 - Ponta Negra, Maricá/RJ"},
}

func seedDepositos(ctx context.Context, db *pgxpool.Pool) error {
	for _, d := range depositos {
		_, err := db.Exec(ctx, `
			INSERT INTO depositos (nome, endereco)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM depositos WHERE nome = $1)
		`, d.Nome, d.Endereco)
		if err != nil {
			return err
		}
	}
	return nil
}
