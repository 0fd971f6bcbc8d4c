package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crud/inner/common"
	"crud/inner/database"
	"crud/inner/pagination"
	"crud/inner/validator"

	"go.uber.org/zap"
)

// ширина окна навигации по страницам
const NavigatePages = 5

var errNameTaken = common.AlreadyExistsError{Message: "name unavailable", Field: "empName"}

type Service struct {
	repo      Repo
	validator Validator
	logger    *common.Logger
}

type Repo interface {
	FindById(ctx context.Context, id int64) (Entity, error)
	Insert(ctx context.Context, employee *Entity) error
	FindWithPagination(ctx context.Context, criteria *database.Criteria, limit, offset int) ([]Entity, error)
	CountByCriteria(ctx context.Context, criteria *database.Criteria) (int64, error)
	UpdateSelective(ctx context.Context, id int64, patch Patch) error
	DeleteById(ctx context.Context, id int64) error
	DeleteByCriteria(ctx context.Context, criteria *database.Criteria) error
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// SaveEmp проверяет запрос и уникальность имени, затем вставляет только заданные колонки.
// Проверка имени и вставка выполняются разными запросами без транзакции.
func (svc *Service) SaveEmp(ctx context.Context, request CreateRequest) (int64, error) {
	svc.logger.Info("Saving new employee", zap.String("name", request.EmpName))

	if err := svc.validate(request); err != nil {
		svc.logger.Warn("Employee save request validation failed",
			zap.String("name", request.EmpName),
			zap.Error(err))
		return 0, err
	}

	count, err := svc.repo.CountByCriteria(ctx, NameEqualTo(request.EmpName))
	if err != nil {
		svc.logger.Error("Failed to check employee name",
			zap.String("name", request.EmpName),
			zap.Error(err))
		return 0, fmt.Errorf("error counting employees with name %s: %w", request.EmpName, err)
	}
	if count > 0 {
		svc.logger.Warn("Employee with this name already exists", zap.String("name", request.EmpName))
		return 0, errNameTaken
	}

	entity := request.ToEntity()
	if err := svc.repo.Insert(ctx, &entity); err != nil {
		if constraintErr := constraintError(err); constraintErr != nil {
			svc.logger.Warn("Employee insert rejected by constraint",
				zap.String("name", request.EmpName),
				zap.Error(err))
			return 0, constraintErr
		}
		svc.logger.Error("Failed to insert employee",
			zap.String("name", request.EmpName),
			zap.Error(err))
		return 0, fmt.Errorf("error inserting employee with name %s: %w", request.EmpName, err)
	}

	svc.logger.Info("Employee saved successfully",
		zap.String("name", entity.Name),
		zap.Int64("id", entity.Id))
	return entity.Id, nil
}

// FindWithPagination страница сотрудников, упорядоченных по id.
// Страница за пределами диапазона возвращается пустой.
func (svc *Service) FindWithPagination(ctx context.Context, request PageRequest) (pagination.PageInfo[Response], error) {
	svc.logger.Debug("Finding employees with pagination",
		zap.Int("pageNumber", request.PageNumber),
		zap.Int("pageSize", request.PageSize))

	if err := svc.validate(request); err != nil {
		svc.logger.Warn("Invalid pagination request",
			zap.Int("pageNumber", request.PageNumber),
			zap.Int("pageSize", request.PageSize),
			zap.Error(err))
		return pagination.PageInfo[Response]{}, err
	}

	offset := pagination.Offset(request.PageNumber, request.PageSize)
	entities, err := svc.repo.FindWithPagination(ctx, nil, request.PageSize, offset)
	if err != nil {
		svc.logger.Error("Failed to find employees with pagination",
			zap.Int("pageSize", request.PageSize),
			zap.Int("offset", offset),
			zap.Error(err))
		return pagination.PageInfo[Response]{}, fmt.Errorf("error finding employees with pagination: %w", err)
	}

	total, err := svc.repo.CountByCriteria(ctx, nil)
	if err != nil {
		svc.logger.Error("Failed to count total employees", zap.Error(err))
		return pagination.PageInfo[Response]{}, fmt.Errorf("error counting total employees: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}

	page := pagination.New(responses, total, request.PageNumber, request.PageSize, NavigatePages)
	svc.logger.Debug("Found employees with pagination",
		zap.Int("pageNumber", page.PageNum),
		zap.Int64("total", page.Total),
		zap.Int("pages", page.Pages),
		zap.Int("size", page.Size))
	return page, nil
}

// CheckUser true, если имя ещё не занято (точное совпадение с учётом регистра)
func (svc *Service) CheckUser(ctx context.Context, name string) (bool, error) {
	count, err := svc.repo.CountByCriteria(ctx, NameEqualTo(name))
	if err != nil {
		svc.logger.Error("Failed to count employees by name",
			zap.String("name", name),
			zap.Error(err))
		return false, fmt.Errorf("error counting employees with name %s: %w", name, err)
	}
	svc.logger.Debug("Checked employee name",
		zap.String("name", name),
		zap.Int64("count", count))
	return count == 0, nil
}

func (svc *Service) GetEmp(ctx context.Context, id int64) (Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.Int64("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			svc.logger.Debug("Employee not found", zap.Int64("id", id))
			return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", id))
		}
		svc.logger.Error("Failed to find employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %d: %w", id, err)
	}

	return entity.toResponse(), nil
}

// UpdateEmp записывает только переданные поля. Пустой запрос ничего не меняет.
func (svc *Service) UpdateEmp(ctx context.Context, id int64, request UpdateRequest) error {
	svc.logger.Info("Updating employee", zap.Int64("id", id))

	if err := svc.validate(request); err != nil {
		svc.logger.Warn("Employee update request validation failed",
			zap.Int64("id", id),
			zap.Error(err))
		return err
	}

	patch := request.ToPatch()
	if patch.IsEmpty() {
		svc.logger.Debug("Nothing to update", zap.Int64("id", id))
		return nil
	}

	if patch.Name != nil {
		count, err := svc.repo.CountByCriteria(ctx, NameEqualTo(*patch.Name).AndNotEqualTo("e.id", id))
		if err != nil {
			svc.logger.Error("Failed to check employee name",
				zap.Int64("id", id),
				zap.String("name", *patch.Name),
				zap.Error(err))
			return fmt.Errorf("error counting employees with name %s: %w", *patch.Name, err)
		}
		if count > 0 {
			svc.logger.Warn("Employee with this name already exists",
				zap.Int64("id", id),
				zap.String("name", *patch.Name))
			return errNameTaken
		}
	}

	if err := svc.repo.UpdateSelective(ctx, id, patch); err != nil {
		if constraintErr := constraintError(err); constraintErr != nil {
			svc.logger.Warn("Employee update rejected by constraint",
				zap.Int64("id", id),
				zap.Error(err))
			return constraintErr
		}
		svc.logger.Error("Failed to update employee",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("error updating employee with id %d: %w", id, err)
	}

	svc.logger.Info("Employee updated successfully", zap.Int64("id", id))
	return nil
}

func (svc *Service) DeleteEmpById(ctx context.Context, id int64) error {
	svc.logger.Info("Deleting employee by ID", zap.Int64("id", id))

	if err := svc.repo.DeleteById(ctx, id); err != nil {
		svc.logger.Error("Failed to delete employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("error deleting employee with id %d: %w", id, err)
	}

	svc.logger.Info("Employee deleted successfully", zap.Int64("id", id))
	return nil
}

// DeleteBatch удаляет набор сотрудников одним запросом: всё или ничего
func (svc *Service) DeleteBatch(ctx context.Context, ids []int64) error {
	svc.logger.Info("Deleting employees by IDs", zap.Int64s("ids", ids))

	if len(ids) == 0 {
		return common.RequestValidationError{Message: "no employee ids given"}
	}

	if err := svc.repo.DeleteByCriteria(ctx, IdIn(ids)); err != nil {
		svc.logger.Error("Failed to delete employees by IDs",
			zap.Int64s("ids", ids),
			zap.Error(err))
		return fmt.Errorf("error deleting employees with ids: %w", err)
	}

	svc.logger.Info("Employees deleted successfully", zap.Int64s("ids", ids))
	return nil
}

// constraintError переводит нарушения ограничений БД в ошибки запроса:
// UNIQUE(name) - занятое имя, внешний ключ - несуществующий отдел
func constraintError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return errNameTaken
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{
			Message: "Data validation error",
			Data:    map[string]string{"dId": "department does not exist"},
		}
	default:
		return nil
	}
}

// validate приводит ошибки валидатора к RequestValidationError с картой "поле -> сообщение"
func (svc *Service) validate(request any) error {
	err := svc.validator.Validate(request)
	if err == nil {
		return nil
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return common.RequestValidationError{
			Message: "Data validation error",
			Data:    validationErr.Fields(),
		}
	}
	return common.RequestValidationError{Message: err.Error()}
}
