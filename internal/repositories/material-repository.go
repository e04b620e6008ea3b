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

const materialTable = "materiais"

var materialMap = map[string]string{
	"id":         "m.id",
	"nome_item":  "m.nome_item",
	"categoria":  "m.categoria",
	"created_at": "m.created_at",
	"updated_at": "m.updated_at",
}

type MaterialRepositoryInterface interface {
	GetMateriais(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*entities.Material, error)
	CreateMaterial(ctx context.Context, tx pgx.Tx, material entities.Material) (uint64, error)
	UpdateMaterial(ctx context.Context, tx pgx.Tx, id uint64, material entities.Material) error
	DeleteMaterial(ctx context.Context, id uint64) error
}

type MaterialRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaterialRepository(storage *pgxpool.Pool, logger *zap.Logger) MaterialRepositoryInterface {
	return &MaterialRepository{storage: storage, logger: logger}
}

func scanMaterial(row pgx.Row) (*entities.Material, error) {
	var m entities.Material

	err := row.Scan(&m.ID, &m.NomeItem, &m.Categoria, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear material: %w", err)
	}

	return &m, nil
}

func (r *MaterialRepository) GetMateriais(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"m.nome_item": pat},
				sq.ILike{"m.categoria": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(m.id)").From(materialTable + " AS m")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, materialMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Material{}, 0, nil
	}

	baseBuilder := psql.Select(
		"m.id", "m.nome_item", "m.categoria", "m.created_at", "m.updated_at",
	).From(materialTable + " AS m")

	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("m.nome_item ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, materialMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	materiais := make([]entities.Material, 0, filter.Limit)
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		materiais = append(materiais, *material)
	}

	return materiais, total, nil
}

func (r *MaterialRepository) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(
		"m.id", "m.nome_item", "m.categoria", "m.created_at", "m.updated_at",
	).From(materialTable + " AS m").Where(sq.Eq{"m.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaterial(r.storage.QueryRow(ctx, query, args...))
}

func (r *MaterialRepository) CreateMaterial(ctx context.Context, tx pgx.Tx, material entities.Material) (uint64, error) {
	query := `
		INSERT INTO materiais (nome_item, categoria, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, material.NomeItem, material.Categoria).Scan(&newID)
	return newID, err
}

func (r *MaterialRepository) UpdateMaterial(ctx context.Context, tx pgx.Tx, id uint64, material entities.Material) error {
	query := `
		UPDATE materiais
		SET nome_item = $1, categoria = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := tx.Exec(ctx, query, material.NomeItem, material.Categoria, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id uint64) error {
	query := `DELETE FROM materiais WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraintError(err,
			"o material não pode ser excluído: existem registros de estoque ou alocações vinculados a ele",
			"registro duplicado para o material")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
