package main

import (
	"vivere-estoque/pkg/config"
	"vivere-estoque/pkg/database/postgresql"
	"vivere-estoque/seeders"
)

func main() {
	cfg := config.New()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedAll(db)
}
