package services

import (
	"context"

	"go.uber.org/zap"

	"vivere-estoque/internal/entities"
	"vivere-estoque/internal/repositories"
	"vivere-estoque/pkg/types"
)

type LogServiceInterface interface {
	GetLogs(ctx context.Context, filter types.Filter) ([]entities.LogEntry, uint64, error)
}

type LogService struct {
	logRepo repositories.LogRepositoryInterface
	logger  *zap.Logger
}

func NewLogService(logRepo repositories.LogRepositoryInterface, logger *zap.Logger) LogServiceInterface {
	return &LogService{logRepo: logRepo, logger: logger}
}

func (s *LogService) GetLogs(ctx context.Context, filter types.Filter) ([]entities.LogEntry, uint64, error) {
	return s.logRepo.GetLogs(ctx, filter)
}
