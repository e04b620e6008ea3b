package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/infrastructure/db"
	apperrors "vivere-estoque/pkg/errors"
	"vivere-estoque/pkg/types"
)

const usuarioTable = "usuarios"

var usuarioMap = map[string]string{
	"id":          "u.id",
	"nome":        "u.nome",
	"email":       "u.email",
	"perfil":      "u.perfil",
	"deposito_id": "u.deposito_id",
	"created_at":  "u.created_at",
	"updated_at":  "u.updated_at",
}

type UsuarioRepositoryInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error)
	FindUsuario(ctx context.Context, id uint64) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	CreateUsuario(ctx context.Context, tx pgx.Tx, usuario entities.Usuario) (uint64, error)
	UpdateUsuario(ctx context.Context, tx pgx.Tx, id uint64, usuario entities.Usuario) error
	DeleteUsuario(ctx context.Context, id uint64) error
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUsuarioRepository(storage *pgxpool.Pool, logger *zap.Logger) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage, logger: logger}
}

const usuarioColumns = `u.id, u.nome, u.email, u.senha, u.perfil, u.deposito_id, u.created_at, u.updated_at,
	COALESCE(d.id, 0), COALESCE(d.nome, '')`

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	var d entities.Deposito
	var depositoID sql.NullInt64

	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.Senha, &u.Perfil, &depositoID,
		&u.CreatedAt, &u.UpdatedAt,
		&d.ID, &d.NomeDeposito,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	if depositoID.Valid {
		id := uint64(depositoID.Int64)
		u.DepositoID = &id
	}
	if d.ID > 0 {
		u.Deposito = &d
	}

	return &u, nil
}

func usuarioSelect(psql sq.StatementBuilderType) sq.SelectBuilder {
	return psql.Select(usuarioColumns).
		From(usuarioTable + " AS u").
		LeftJoin("depositos d ON u.deposito_id = d.id")
}

func (r *UsuarioRepository) GetUsuarios(ctx context.Context, filter types.Filter) ([]entities.Usuario, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"u.nome": pat},
				sq.ILike{"u.email": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(u.id)").From(usuarioTable + " AS u")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, usuarioMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Usuario{}, 0, nil
	}

	baseBuilder := usuarioSelect(psql)
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("u.id ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, usuarioMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	usuarios := make([]entities.Usuario, 0, filter.Limit)
	for rows.Next() {
		usuario, err := scanUsuario(rows)
		if err != nil {
			return nil, 0, err
		}
		usuarios = append(usuarios, *usuario)
	}

	return usuarios, total, nil
}

func (r *UsuarioRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Usuario, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := usuarioSelect(psql).Where(where)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanUsuario(r.storage.QueryRow(ctx, query, args...))
}

func (r *UsuarioRepository) FindUsuario(ctx context.Context, id uint64) (*entities.Usuario, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	return r.findOne(ctx, sq.Eq{"u.email": email})
}

func (r *UsuarioRepository) CreateUsuario(ctx context.Context, tx pgx.Tx, usuario entities.Usuario) (uint64, error) {
	query := `
		INSERT INTO usuarios (nome, email, senha, perfil, deposito_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		usuario.Nome, usuario.Email, usuario.Senha, usuario.Perfil, usuario.DepositoID,
	).Scan(&newID)
	if err != nil {
		return 0, translateConstraintError(err,
			"depósito inexistente",
			"já existe um usuário com este e-mail")
	}
	return newID, nil
}

func (r *UsuarioRepository) UpdateUsuario(ctx context.Context, tx pgx.Tx, id uint64, usuario entities.Usuario) error {
	query := `
		UPDATE usuarios
		SET nome = $1, email = $2, senha = $3, perfil = $4, deposito_id = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := tx.Exec(ctx, query,
		usuario.Nome, usuario.Email, usuario.Senha, usuario.Perfil, usuario.DepositoID, id,
	)
	if err != nil {
		return translateConstraintError(err,
			"depósito inexistente",
			"já existe um usuário com este e-mail")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) DeleteUsuario(ctx context.Context, id uint64) error {
	query := `DELETE FROM usuarios WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraintError(err,
			"o usuário não pode ser excluído: existem registros vinculados a ele",
			"registro duplicado para o usuário")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
