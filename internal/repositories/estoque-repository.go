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

const estoqueTable = "estoque"

var estoqueMap = map[string]string{
	"id":                    "e.id",
	"material_id":           "e.material_id",
	"deposito_id":           "e.deposito_id",
	"quantidade_disponivel": "e.quantidade_disponivel",
	"nome_item":             "m.nome_item",
	"categoria":             "m.categoria",
	"created_at":            "e.created_at",
	"updated_at":            "e.updated_at",
}

type EstoqueRepositoryInterface interface {
	// GetEstoque lists stock rows; a non-nil scopeDeposito restricts the
	// result to that warehouse before any other filter applies.
	GetEstoque(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Estoque, uint64, error)
	GetEstoqueByDeposito(ctx context.Context, depositoID uint64) ([]entities.Estoque, error)
	FindEstoque(ctx context.Context, id uint64) (*entities.Estoque, error)
	FindForUpdate(ctx context.Context, tx pgx.Tx, materialID, depositoID uint64) (*entities.Estoque, error)
	CreateEstoque(ctx context.Context, tx pgx.Tx, estoque entities.Estoque) (uint64, error)
	UpdateQuantidade(ctx context.Context, tx pgx.Tx, id uint64, quantidade int) error
	DeleteEstoque(ctx context.Context, id uint64) error
}

type EstoqueRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEstoqueRepository(storage *pgxpool.Pool, logger *zap.Logger) EstoqueRepositoryInterface {
	return &EstoqueRepository{storage: storage, logger: logger}
}

const estoqueColumns = `e.id, e.material_id, e.deposito_id, e.quantidade_disponivel, e.created_at, e.updated_at,
	COALESCE(m.id, 0), COALESCE(m.nome_item, ''), COALESCE(m.categoria, ''),
	COALESCE(d.id, 0), COALESCE(d.nome, '')`

func scanEstoque(row pgx.Row) (*entities.Estoque, error) {
	var e entities.Estoque
	var m entities.Material
	var d entities.Deposito

	err := row.Scan(
		&e.ID, &e.MaterialID, &e.DepositoID, &e.QuantidadeDisponivel, &e.CreatedAt, &e.UpdatedAt,
		&m.ID, &m.NomeItem, &m.Categoria,
		&d.ID, &d.NomeDeposito,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
	}

	if m.ID > 0 {
		e.Material = &m
	}
	if d.ID > 0 {
		e.Deposito = &d
	}

	return &e, nil
}

func (r *EstoqueRepository) GetEstoque(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Estoque, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyScope := func(b sq.SelectBuilder) sq.SelectBuilder {
		if scopeDeposito != nil {
			b = b.Where(sq.Eq{"e.deposito_id": *scopeDeposito})
		}
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"m.nome_item": pat},
				sq.ILike{"m.categoria": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(e.id)").
		From(estoqueTable + " AS e").
		LeftJoin("materiais m ON e.material_id = m.id")
	countBuilder = applyScope(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, estoqueMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Estoque{}, 0, nil
	}

	baseBuilder := psql.Select(estoqueColumns).
		From(estoqueTable + " AS e").
		LeftJoin("materiais m ON e.material_id = m.id").
		LeftJoin("depositos d ON e.deposito_id = d.id")

	baseBuilder = applyScope(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.id ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, estoqueMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	estoques := make([]entities.Estoque, 0, filter.Limit)
	for rows.Next() {
		estoque, err := scanEstoque(rows)
		if err != nil {
			return nil, 0, err
		}
		estoques = append(estoques, *estoque)
	}

	return estoques, total, nil
}

func (r *EstoqueRepository) GetEstoqueByDeposito(ctx context.Context, depositoID uint64) ([]entities.Estoque, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(estoqueColumns).
		From(estoqueTable + " AS e").
		LeftJoin("materiais m ON e.material_id = m.id").
		LeftJoin("depositos d ON e.deposito_id = d.id").
		Where(sq.Eq{"e.deposito_id": depositoID}).
		OrderBy("e.id ASC")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estoques := make([]entities.Estoque, 0)
	for rows.Next() {
		estoque, err := scanEstoque(rows)
		if err != nil {
			return nil, err
		}
		estoques = append(estoques, *estoque)
	}

	return estoques, nil
}

func (r *EstoqueRepository) FindEstoque(ctx context.Context, id uint64) (*entities.Estoque, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(estoqueColumns).
		From(estoqueTable + " AS e").
		LeftJoin("materiais m ON e.material_id = m.id").
		LeftJoin("depositos d ON e.deposito_id = d.id").
		Where(sq.Eq{"e.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanEstoque(r.storage.QueryRow(ctx, query, args...))
}

// FindForUpdate locks the (material, depósito) row so concurrent
// entrada/saida adjustments serialize instead of losing updates.
func (r *EstoqueRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, materialID, depositoID uint64) (*entities.Estoque, error) {
	query := `
		SELECT id, material_id, deposito_id, quantidade_disponivel, created_at, updated_at
		FROM estoque
		WHERE material_id = $1 AND deposito_id = $2
		FOR UPDATE
	`
	var e entities.Estoque
	err := tx.QueryRow(ctx, query, materialID, depositoID).Scan(
		&e.ID, &e.MaterialID, &e.DepositoID, &e.QuantidadeDisponivel, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
	}
	return &e, nil
}

func (r *EstoqueRepository) CreateEstoque(ctx context.Context, tx pgx.Tx, estoque entities.Estoque) (uint64, error) {
	query := `
		INSERT INTO estoque (material_id, deposito_id, quantidade_disponivel, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, estoque.MaterialID, estoque.DepositoID, estoque.QuantidadeDisponivel).Scan(&newID)
	if err != nil {
		return 0, translateConstraintError(err,
			"material ou depósito inexistente",
			"já existe um registro de estoque para este material neste depósito")
	}
	return newID, nil
}

func (r *EstoqueRepository) UpdateQuantidade(ctx context.Context, tx pgx.Tx, id uint64, quantidade int) error {
	query := `
		UPDATE estoque
		SET quantidade_disponivel = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := tx.Exec(ctx, query, quantidade, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EstoqueRepository) DeleteEstoque(ctx context.Context, id uint64) error {
	query := `DELETE FROM estoque WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
