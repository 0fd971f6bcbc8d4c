package department

import (
	"context"
	"fmt"

	"crud/inner/common"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repo
	logger *common.Logger
}

type Repo interface {
	FindAll(ctx context.Context) ([]Entity, error)
}

// функция-конструктор
func NewService(repo Repo, logger *common.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetDepartment возвращает все отделы без фильтрации и пагинации
func (svc *Service) GetDepartment(ctx context.Context) ([]Response, error) {
	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all departments", zap.Error(err))
		return nil, fmt.Errorf("error finding all departments: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	svc.logger.Debug("Found all departments", zap.Int("count", len(responses)))
	return responses, nil
}
