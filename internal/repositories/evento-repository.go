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

const eventoTable = "eventos"

var eventoMap = map[string]string{
	"id":          "e.id",
	"nome_evento": "e.nome_evento",
	"cliente":     "e.cliente",
	"status":      "e.status",
	"data_inicio": "e.data_inicio",
	"data_fim":    "e.data_fim",
	"created_at":  "e.created_at",
	"updated_at":  "e.updated_at",
}

type EventoRepositoryInterface interface {
	// GetEventos lists events. A non-nil scopeDeposito keeps only events
	// with at least one allocation drawn from that warehouse, matching
	// what a gestor is allowed to see.
	GetEventos(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Evento, uint64, error)
	FindEvento(ctx context.Context, id uint64) (*entities.Evento, error)
	CreateEvento(ctx context.Context, tx pgx.Tx, evento entities.Evento) (uint64, error)
	UpdateEvento(ctx context.Context, tx pgx.Tx, id uint64, evento entities.Evento) error
	DeleteEvento(ctx context.Context, id uint64) error
}

type EventoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEventoRepository(storage *pgxpool.Pool, logger *zap.Logger) EventoRepositoryInterface {
	return &EventoRepository{storage: storage, logger: logger}
}

func scanEvento(row pgx.Row) (*entities.Evento, error) {
	var e entities.Evento

	err := row.Scan(
		&e.ID, &e.NomeEvento, &e.Cliente, &e.Status,
		&e.DataInicio, &e.DataFim, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear evento: %w", err)
	}

	return &e, nil
}

func (r *EventoRepository) GetEventos(ctx context.Context, filter types.Filter, scopeDeposito *uint64) ([]entities.Evento, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyScope := func(b sq.SelectBuilder) sq.SelectBuilder {
		if scopeDeposito != nil {
			b = b.Where(sq.Expr(
				"EXISTS (SELECT 1 FROM alocacoes a WHERE a.evento_id = e.id AND a.deposito_id = ?)",
				*scopeDeposito,
			))
		}
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"e.nome_evento": pat},
				sq.ILike{"e.cliente": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(e.id)").From(eventoTable + " AS e")
	countBuilder = applyScope(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, eventoMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Evento{}, 0, nil
	}

	baseBuilder := psql.Select(
		"e.id", "e.nome_evento", "e.cliente", "e.status",
		"e.data_inicio", "e.data_fim", "e.created_at", "e.updated_at",
	).From(eventoTable + " AS e")

	baseBuilder = applyScope(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.data_inicio ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, eventoMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	eventos := make([]entities.Evento, 0, filter.Limit)
	for rows.Next() {
		evento, err := scanEvento(rows)
		if err != nil {
			return nil, 0, err
		}
		eventos = append(eventos, *evento)
	}

	return eventos, total, nil
}

func (r *EventoRepository) FindEvento(ctx context.Context, id uint64) (*entities.Evento, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(
		"e.id", "e.nome_evento", "e.cliente", "e.status",
		"e.data_inicio", "e.data_fim", "e.created_at", "e.updated_at",
	).From(eventoTable + " AS e").Where(sq.Eq{"e.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanEvento(r.storage.QueryRow(ctx, query, args...))
}

func (r *EventoRepository) CreateEvento(ctx context.Context, tx pgx.Tx, evento entities.Evento) (uint64, error) {
	query := `
		INSERT INTO eventos (nome_evento, cliente, status, data_inicio, data_fim, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		evento.NomeEvento, evento.Cliente, evento.Status, evento.DataInicio, evento.DataFim,
	).Scan(&newID)
	return newID, err
}

func (r *EventoRepository) UpdateEvento(ctx context.Context, tx pgx.Tx, id uint64, evento entities.Evento) error {
	query := `
		UPDATE eventos
		SET nome_evento = $1, cliente = $2, status = $3, data_inicio = $4, data_fim = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := tx.Exec(ctx, query,
		evento.NomeEvento, evento.Cliente, evento.Status, evento.DataInicio, evento.DataFim, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EventoRepository) DeleteEvento(ctx context.Context, id uint64) error {
	query := `DELETE FROM eventos WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return translateConstraintError(err,
			"o evento não pode ser excluído: existem alocações vinculadas a ele",
			"registro duplicado para o evento")
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
