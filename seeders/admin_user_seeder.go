package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"vivere-estoque/pkg/constants"
	"vivere-estoque/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@vivere.com.br"
	}
	senha := os.Getenv("ADMIN_PASSWORD")
	if senha == "" {
		senha = "admin123"
		log.Println("aviso: ADMIN_PASSWORD não definido, usando a senha padrão")
	}

	senhaHash, err := utils.HashPassword(senha)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO usuarios (nome, email, senha, perfil, deposito_id)
		SELECT 'Administrador', $1, $2, $3, NULL
		WHERE NOT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)
	`, email, senhaHash, constants.PerfilAdministrador)
	return err
}
