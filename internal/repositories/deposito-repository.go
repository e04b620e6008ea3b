package repositories

import (
	"context"
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

const depositoTable = "depositos"

var depositoMap = map[string]string{
	"id":            "d.id",
	"nome_deposito": "d.nome",
	"endereco":      "d.endereco",
	"created_at":    "d.created_at",
	"updated_at":    "d.updated_at",
}

type DepositoRepositoryInterface interface {
	GetDepositos(ctx context.Context, filter types.Filter) ([]entities.Deposito, uint64, error)
	FindDeposito(ctx context.Context, id uint64) (*entities.Deposito, error)
	CreateDeposito(ctx context.Context, tx pgx.Tx, deposito entities.Deposito) (uint64, error)
	UpdateDeposito(ctx context.Context, tx pgx.Tx, id uint64, deposito entities.Deposito) error
	DeleteDeposito(ctx context.Context, id uint64) error
}

type DepositoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepositoRepository(storage *pgxpool.Pool, logger *zap.Logger) DepositoRepositoryInterface {
	return &DepositoRepository{storage: storage, logger: logger}
}

func scanDeposito(row pgx.Row) (*entities.Deposito, error) {
	var d entities.Deposito

	err := row.Scan(&d.ID, &d.NomeDeposito, &d.Endereco, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear depósito: %w", err)
	}

	return &d, nil
}

func (r *DepositoRepository) GetDepositos(ctx context.Context, filter types.Filter) ([]entities.Deposito, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"d.nome": pat},
				sq.ILike{"d.endereco": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(d.id)").From(depositoTable + " AS d")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, depositoMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Deposito{}, 0, nil
	}

	baseBuilder := psql.Select(
		"d.id", "d.nome", "d.endereco", "d.created_at", "d.updated_at",
	).From(depositoTable + " AS d")

	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("d.id ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, depositoMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	depositos := make([]entities.Deposito, 0, filter.Limit)
	for rows.Next() {
		deposito, err := scanDeposito(rows)
		if err != nil {
			return nil, 0, err
		}
		depositos = append(depositos, *deposito)
	}

	return depositos, total, nil
}

func (r *DepositoRepository) FindDeposito(ctx context.Context, id uint64) (*entities.Deposito, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(
		"d.id", "d.nome", "d.endereco", "d.created_at", "d.updated_at",
	).From(depositoTable + " AS d").Where(sq.Eq{"d.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanDeposito(r.storage.QueryRow(ctx, query, args...))
}

func (r *DepositoRepository) CreateDeposito(ctx context.Context, tx pgx.Tx, deposito entities.Deposito) (uint64, error) {
	query := `
		INSERT INTO depositos (nome, endereco, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, deposito.NomeDeposito, deposito.Endereco).Scan(&newID)
	return newID, err
}

func (r *DepositoRepository) UpdateDeposito(ctx context.Context, tx pgx.Tx, id uint64, deposito entities.Deposito) error {
	query := `
		UPDATE depositos
		SET nome = $1, endereco = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := tx.Exec(ctx, query, deposito.NomeDeposito, deposito.Endereco, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepositoRepository) DeleteDeposito(ctx context.Context, id uint64) error {
	query := `DELETE FROM depositos WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraintError(err,
			"o depósito não pode ser excluído: existem registros de estoque, alocações ou usuários vinculados a ele",
			"registro duplicado para o depósito")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
