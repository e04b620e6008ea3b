package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"vivere-estoque/pkg/constants"
)

type DashboardRepositoryInterface interface {
	CountEventosAtivos(ctx context.Context) (int, error)
	CountEventosNovosMes(ctx context.Context) (int, error)
	CountDepositos(ctx context.Context) (int, error)
	CountMateriais(ctx context.Context) (int, error)
	// CountEventosAPreparar counts confirmed events that draw at least
	// one allocation from the given warehouse.
	CountEventosAPreparar(ctx context.Context, depositoID uint64) (int, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) countOne(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DashboardRepository) CountEventosAtivos(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM eventos WHERE status IN ($1, $2)`
	return r.countOne(ctx, query, constants.EventoConfirmado, constants.EventoEmAndamento)
}

func (r *DashboardRepository) CountEventosNovosMes(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM eventos WHERE created_at >= date_trunc('month', NOW())`
	return r.countOne(ctx, query)
}

func (r *DashboardRepository) CountDepositos(ctx context.Context) (int, error) {
	return r.countOne(ctx, `SELECT COUNT(*) FROM depositos`)
}

func (r *DashboardRepository) CountMateriais(ctx context.Context) (int, error) {
	return r.countOne(ctx, `SELECT COUNT(*) FROM materiais`)
}

func (r *DashboardRepository) CountEventosAPreparar(ctx context.Context, depositoID uint64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT e.id)
		FROM eventos e
		JOIN alocacoes a ON a.evento_id = e.id
		WHERE e.status = $1 AND a.deposito_id = $2
	`
	return r.countOne(ctx, query, constants.EventoConfirmado, depositoID)
}
