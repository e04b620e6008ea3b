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

const logTable = "logs"

var logMap = map[string]string{
	"id":         "l.id",
	"usuario_id": "l.usuario_id",
	"acao":       "l.acao",
	"data_hora":  "l.data_hora",
}

type LogRepositoryInterface interface {
	GetLogs(ctx context.Context, filter types.Filter) ([]entities.LogEntry, uint64, error)
	// CreateLog accepts any Querier so the audit row joins the same
	// transaction as the mutation it records.
	CreateLog(ctx context.Context, q Querier, entry entities.LogEntry) error
}

type LogRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLogRepository(storage *pgxpool.Pool, logger *zap.Logger) LogRepositoryInterface {
	return &LogRepository{storage: storage, logger: logger}
}

func scanLog(row pgx.Row) (*entities.LogEntry, error) {
	var l entities.LogEntry

	err := row.Scan(
		&l.ID, &l.UsuarioID, &l.Acao, &l.Descricao, &l.RotaAfetada,
		&l.CorrelationID, &l.DataHora, &l.Usuario,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear log: %w", err)
	}

	return &l, nil
}

func (r *LogRepository) GetLogs(ctx context.Context, filter types.Filter) ([]entities.LogEntry, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"l.acao": pat},
				sq.ILike{"l.descricao": pat},
				sq.ILike{"u.nome": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(l.id)").
		From(logTable + " AS l").
		LeftJoin("usuarios u ON l.usuario_id = u.id")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, logMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.LogEntry{}, 0, nil
	}

	baseBuilder := psql.Select(
		"l.id", "l.usuario_id", "l.acao", "l.descricao", "l.rota_afetada",
		"l.correlation_id", "l.data_hora",
		"COALESCE(u.nome, '')",
	).From(logTable + " AS l").LeftJoin("usuarios u ON l.usuario_id = u.id")

	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("l.data_hora DESC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, logMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]entities.LogEntry, 0, filter.Limit)
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, *entry)
	}

	return logs, total, nil
}

func (r *LogRepository) CreateLog(ctx context.Context, q Querier, entry entities.LogEntry) error {
	if q == nil {
		q = r.storage
	}
	query := `
		INSERT INTO logs (usuario_id, acao, descricao, rota_afetada, correlation_id, data_hora)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := q.Exec(ctx, query,
		entry.UsuarioID, entry.Acao, entry.Descricao, entry.RotaAfetada, entry.CorrelationID,
	)
	return err
}
