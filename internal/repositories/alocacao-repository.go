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

const alocacaoTable = "alocacoes"

var alocacaoMap = map[string]string{
	"id":                 "a.id",
	"evento_id":          "a.evento_id",
	"material_id":        "a.material_id",
	"deposito_id":        "a.deposito_id",
	"quantidade_alocada": "a.quantidade_alocada",
	"created_at":         "a.created_at",
	"updated_at":         "a.updated_at",
}

type AlocacaoRepositoryInterface interface {
	GetAlocacoes(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Alocacao, uint64, error)
	GetAlocacoesByEvento(ctx context.Context, eventoID uint64) ([]entities.Alocacao, error)
	FindAlocacao(ctx context.Context, id uint64) (*entities.Alocacao, error)
	CreateAlocacao(ctx context.Context, tx pgx.Tx, alocacao entities.Alocacao) (uint64, error)
	UpdateAlocacao(ctx context.Context, tx pgx.Tx, id uint64, alocacao entities.Alocacao) error
	DeleteAlocacao(ctx context.Context, id uint64) error
}

type AlocacaoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAlocacaoRepository(storage *pgxpool.Pool, logger *zap.Logger) AlocacaoRepositoryInterface {
	return &AlocacaoRepository{storage: storage, logger: logger}
}

const alocacaoColumns = `a.id, a.evento_id, a.material_id, a.deposito_id, a.quantidade_alocada, a.observacao,
	a.created_at, a.updated_at,
	COALESCE(ev.id, 0), COALESCE(ev.nome_evento, ''),
	COALESCE(m.id, 0), COALESCE(m.nome_item, ''),
	COALESCE(d.id, 0), COALESCE(d.nome, '')`

func scanAlocacao(row pgx.Row) (*entities.Alocacao, error) {
	var a entities.Alocacao
	var ev entities.Evento
	var m entities.Material
	var d entities.Deposito

	err := row.Scan(
		&a.ID, &a.EventoID, &a.MaterialID, &a.DepositoID, &a.QuantidadeAlocada, &a.Observacao,
		&a.CreatedAt, &a.UpdatedAt,
		&ev.ID, &ev.NomeEvento,
		&m.ID, &m.NomeItem,
		&d.ID, &d.NomeDeposito,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear alocação: %w", err)
	}

	if ev.ID > 0 {
		a.Evento = &ev
	}
	if m.ID > 0 {
		a.Material = &m
	}
	if d.ID > 0 {
		a.Deposito = &d
	}

	return &a, nil
}

func alocacaoSelect(psql sq.StatementBuilderType) sq.SelectBuilder {
	return psql.Select(alocacaoColumns).
		From(alocacaoTable + " AS a").
		LeftJoin("eventos ev ON a.evento_id = ev.id").
		LeftJoin("materiais m ON a.material_id = m.id").
		LeftJoin("depositos d ON a.deposito_id = d.id")
}

func (r *AlocacaoRepository) GetAlocacoes(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Alocacao, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyScope := func(b sq.SelectBuilder) sq.SelectBuilder {
		if scopeDeposito != nil {
			b = b.Where(sq.Eq{"a.deposito_id": *scopeDeposito})
		}
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"ev.nome_evento": pat},
				sq.ILike{"m.nome_item": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(a.id)").
		From(alocacaoTable + " AS a").
		LeftJoin("eventos ev ON a.evento_id = ev.id").
		LeftJoin("materiais m ON a.material_id = m.id")
	countBuilder = applyScope(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, alocacaoMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Alocacao{}, 0, nil
	}

	baseBuilder := alocacaoSelect(psql)
	baseBuilder = applyScope(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("a.id ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, alocacaoMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	alocacoes := make([]entities.Alocacao, 0, filter.Limit)
	for rows.Next() {
		alocacao, err := scanAlocacao(rows)
		if err != nil {
			return nil, 0, err
		}
		alocacoes = append(alocacoes, *alocacao)
	}

	return alocacoes, total, nil
}

func (r *AlocacaoRepository) GetAlocacoesByEvento(ctx context.Context, eventoID uint64) ([]entities.Alocacao, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := alocacaoSelect(psql).
		Where(sq.Eq{"a.evento_id": eventoID}).
		OrderBy("a.id ASC")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alocacoes := make([]entities.Alocacao, 0)
	for rows.Next() {
		alocacao, err := scanAlocacao(rows)
		if err != nil {
			return nil, err
		}
		alocacoes = append(alocacoes, *alocacao)
	}

	return alocacoes, nil
}

func (r *AlocacaoRepository) FindAlocacao(ctx context.Context, id uint64) (*entities.Alocacao, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := alocacaoSelect(psql).Where(sq.Eq{"a.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanAlocacao(r.storage.QueryRow(ctx, query, args...))
}

func (r *AlocacaoRepository) CreateAlocacao(ctx context.Context, tx pgx.Tx, alocacao entities.Alocacao) (uint64, error) {
	query := `
		INSERT INTO alocacoes (evento_id, material_id, deposito_id, quantidade_alocada, observacao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		alocacao.EventoID, alocacao.MaterialID, alocacao.DepositoID,
		alocacao.QuantidadeAlocada, alocacao.Observacao,
	).Scan(&newID)
	if err != nil {
		return 0, translateConstraintError(err,
			"evento, material ou depósito inexistente",
			"alocação duplicada")
	}
	return newID, nil
}

func (r *AlocacaoRepository) UpdateAlocacao(ctx context.Context, tx pgx.Tx, id uint64, alocacao entities.Alocacao) error {
	query := `
		UPDATE alocacoes
		SET deposito_id = $1, quantidade_alocada = $2, observacao = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := tx.Exec(ctx, query,
		alocacao.DepositoID, alocacao.QuantidadeAlocada, alocacao.Observacao, id,
	)
	if err != nil {
		return translateConstraintError(err,
			"depósito inexistente",
			"alocação duplicada")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AlocacaoRepository) DeleteAlocacao(ctx context.Context, id uint64) error {
	query := `DELETE FROM alocacoes WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
