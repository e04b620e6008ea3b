package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll loads the baseline dataset: the warehouses, the starting
// catalog with the central warehouse's stock and the first
// administrator. Every seeder is idempotent and safe to re-run.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("iniciando a carga de dados básicos...")

	if err := seedDepositos(ctx, db); err != nil {
		log.Fatalf("erro ao carregar depósitos: %v", err)
	}
	if err := seedMateriais(ctx, db); err != nil {
		log.Fatalf("erro ao carregar materiais: %v", err)
	}
	if err := seedEstoque(ctx, db); err != nil {
		log.Fatalf("erro ao carregar o estoque inicial: %v", err)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("erro ao criar o administrador: %v", err)
	}

	log.Println("carga de dados básicos concluída")
}
