package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"testing"

	"crud/inner/common"
	"crud/inner/database"
	"crud/inner/validator"

	"github.com/icrowley/fake"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// объявляем структуру мок-репозитория
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) FindById(ctx context.Context, id int64) (Entity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Entity), args.Error(1)
}

func (m *MockRepo) Insert(ctx context.Context, employee *Entity) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockRepo) FindWithPagination(ctx context.Context, criteria *database.Criteria, limit, offset int) ([]Entity, error) {
	args := m.Called(ctx, criteria, limit, offset)
	return args.Get(0).([]Entity), args.Error(1)
}

func (m *MockRepo) CountByCriteria(ctx context.Context, criteria *database.Criteria) (int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) UpdateSelective(ctx context.Context, id int64, patch Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockRepo) DeleteById(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepo) DeleteByCriteria(ctx context.Context, criteria *database.Criteria) error {
	args := m.Called(ctx, criteria)
	return args.Error(0)
}

func testLogger() *common.Logger {
	return common.NewLogger(common.Config{
		AppName:    "test_app",
		AppVersion: "1.0.0",
		LogLevel:   "ERROR",
	})
}

func setupTestService() (*MockRepo, *Service) {
	repo := new(MockRepo)
	return repo, NewService(repo, validator.New(), testLogger())
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func newEntity(id int64, name string) Entity {
	return Entity{
		Id:             id,
		Name:           name,
		Gender:         strPtr("M"),
		Email:          strPtr(fake.EmailAddress()),
		DepartmentId:   int64Ptr(1),
		DepartmentName: strPtr("Development"),
	}
}

func TestService_SaveEmp(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts when name is free", func(t *testing.T) {
		repo, svc := setupTestService()
		request := CreateRequest{EmpName: "john_doe", Email: "john@example.com", Gender: strPtr("M"), DId: int64Ptr(2)}

		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(0), nil)
		repo.On("Insert", ctx, mock.MatchedBy(func(e *Entity) bool {
			return e.Name == "john_doe" && *e.Email == "john@example.com" && *e.Gender == "M" && *e.DepartmentId == 2
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*Entity).Id = 42
		}).Return(nil)

		id, err := svc.SaveEmp(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		repo.AssertExpectations(t)
	})

	t.Run("validation failure performs no insert", func(t *testing.T) {
		repo, svc := setupTestService()

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "jo", Email: "not-an-email"})

		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		fields := validationErr.Data.(map[string]string)
		assert.Len(t, fields, 2)
		assert.NotEmpty(t, fields["empName"])
		assert.NotEmpty(t, fields["email"])
		repo.AssertNotCalled(t, "CountByCriteria", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("taken name is a conflict on empName", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(1), nil)

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe", Email: "john@example.com"})

		var existsErr common.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "empName", existsErr.Field)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("email is optional", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(0), nil)
		repo.On("Insert", ctx, mock.MatchedBy(func(e *Entity) bool {
			return e.Name == "john_doe" && e.Email == nil
		})).Return(nil)

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown department is a dId field error", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, mock.Anything).Return(int64(0), nil)
		repo.On("Insert", ctx, mock.Anything).Return(&pq.Error{Code: "23503", Constraint: "employee_department_id_fkey"})

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe", DId: int64Ptr(404)})

		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Data.(map[string]string), "dId")
	})

	t.Run("name taken between check and insert is a conflict", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, mock.Anything).Return(int64(0), nil)
		repo.On("Insert", ctx, mock.Anything).Return(&pq.Error{Code: "23505", Constraint: "employee_name_key"})

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe"})

		var existsErr common.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "empName", existsErr.Field)
	})

	t.Run("insert error is wrapped", func(t *testing.T) {
		repo, svc := setupTestService()
		dbErr := errors.New("connection reset")
		repo.On("CountByCriteria", ctx, mock.Anything).Return(int64(0), nil)
		repo.On("Insert", ctx, mock.Anything).Return(dbErr)

		_, err := svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe", Email: "john@example.com"})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_CheckUser(t *testing.T) {
	ctx := context.Background()

	t.Run("available when no rows match", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(0), nil)

		available, err := svc.CheckUser(ctx, "john_doe")

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("unavailable after a save with the same name", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(0), nil).Twice()
		repo.On("Insert", ctx, mock.Anything).Return(nil).Once()
		repo.On("CountByCriteria", ctx, NameEqualTo("john_doe")).Return(int64(1), nil)

		available, err := svc.CheckUser(ctx, "john_doe")
		require.NoError(t, err)
		require.True(t, available)

		_, err = svc.SaveEmp(ctx, CreateRequest{EmpName: "john_doe", Email: "john@example.com"})
		require.NoError(t, err)

		available, err = svc.CheckUser(ctx, "john_doe")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, mock.Anything).Return(int64(0), errors.New("boom"))

		_, err := svc.CheckUser(ctx, "john_doe")

		assert.Error(t, err)
	})
}

func TestService_GetEmp(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, svc := setupTestService()
		entity := newEntity(1, "john_doe")
		repo.On("FindById", ctx, int64(1)).Return(entity, nil)

		result, err := svc.GetEmp(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.toResponse(), result)
		require.NotNil(t, result.Department)
		assert.Equal(t, "Development", result.Department.DeptName)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("FindById", ctx, int64(9)).Return(Entity{}, sql.ErrNoRows)

		_, err := svc.GetEmp(ctx, 9)

		var notFoundErr common.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		repo, svc := setupTestService()
		dbErr := errors.New("database error")
		repo.On("FindById", ctx, int64(1)).Return(Entity{}, dbErr)

		_, err := svc.GetEmp(ctx, 1)

		assert.ErrorIs(t, err, dbErr)
		var notFoundErr common.NotFoundError
		assert.False(t, errors.As(err, &notFoundErr))
	})
}

func TestService_UpdateEmp(t *testing.T) {
	ctx := context.Background()

	t.Run("only supplied fields are written", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("new_name").AndNotEqualTo("e.id", int64(3))).Return(int64(0), nil)
		repo.On("UpdateSelective", ctx, int64(3), Patch{Name: strPtr("new_name")}).Return(nil)

		err := svc.UpdateEmp(ctx, 3, UpdateRequest{EmpName: strPtr("new_name")})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rename to a name taken by another employee is a conflict", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("CountByCriteria", ctx, NameEqualTo("jane_doe").AndNotEqualTo("e.id", int64(3))).Return(int64(1), nil)

		err := svc.UpdateEmp(ctx, 3, UpdateRequest{EmpName: strPtr("jane_doe")})

		var existsErr common.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "empName", existsErr.Field)
		repo.AssertNotCalled(t, "UpdateSelective", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("changing fields other than name skips the name check", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("UpdateSelective", ctx, int64(3), Patch{Gender: strPtr("F")}).Return(nil)

		require.NoError(t, svc.UpdateEmp(ctx, 3, UpdateRequest{Gender: strPtr("F")}))
		repo.AssertNotCalled(t, "CountByCriteria", mock.Anything, mock.Anything)
	})

	t.Run("unknown department is a dId field error", func(t *testing.T) {
		repo, svc := setupTestService()
		fkErr := &pq.Error{Code: "23503", Constraint: "employee_department_id_fkey"}
		repo.On("UpdateSelective", ctx, int64(3), mock.Anything).Return(fmt.Errorf("exec: %w", fkErr))

		err := svc.UpdateEmp(ctx, 3, UpdateRequest{DId: int64Ptr(404)})

		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, map[string]string{"dId": "department does not exist"}, validationErr.Data)
	})

	t.Run("empty request makes no repository call", func(t *testing.T) {
		repo, svc := setupTestService()

		err := svc.UpdateEmp(ctx, 3, UpdateRequest{})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateSelective", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("supplied fields are validated", func(t *testing.T) {
		repo, svc := setupTestService()

		err := svc.UpdateEmp(ctx, 3, UpdateRequest{Email: strPtr("not-an-email"), Gender: strPtr("X")})

		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		fields := validationErr.Data.(map[string]string)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "gender")
		repo.AssertNotCalled(t, "UpdateSelective", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_FindWithPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("first of three pages", func(t *testing.T) {
		repo, svc := setupTestService()
		entities := make([]Entity, 5)
		for i := range entities {
			entities[i] = newEntity(int64(i+1), fake.UserName())
		}
		repo.On("FindWithPagination", ctx, (*database.Criteria)(nil), 5, 0).Return(entities, nil)
		repo.On("CountByCriteria", ctx, (*database.Criteria)(nil)).Return(int64(12), nil)

		page, err := svc.FindWithPagination(ctx, PageRequest{PageNumber: 1, PageSize: 5})

		require.NoError(t, err)
		assert.Len(t, page.List, 5)
		assert.Equal(t, 3, page.Pages)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, []int{1, 2, 3}, page.NavigatepageNums)
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("FindWithPagination", ctx, (*database.Criteria)(nil), 5, 15).Return([]Entity{}, nil)
		repo.On("CountByCriteria", ctx, (*database.Criteria)(nil)).Return(int64(12), nil)

		page, err := svc.FindWithPagination(ctx, PageRequest{PageNumber: 4, PageSize: 5})

		require.NoError(t, err)
		assert.Empty(t, page.List)
		assert.Equal(t, 3, page.Pages)
		assert.Equal(t, 4, page.PageNum)
	})

	t.Run("huge page number is an empty page, not an overflow", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("FindWithPagination", ctx, (*database.Criteria)(nil), 5, math.MaxInt).Return([]Entity{}, nil)
		repo.On("CountByCriteria", ctx, (*database.Criteria)(nil)).Return(int64(12), nil)

		page, err := svc.FindWithPagination(ctx, PageRequest{PageNumber: math.MaxInt / 4, PageSize: 5})

		require.NoError(t, err)
		assert.Empty(t, page.List)
		assert.Equal(t, 3, page.Pages)
		repo.AssertExpectations(t)
	})

	t.Run("invalid page size", func(t *testing.T) {
		repo, svc := setupTestService()

		_, err := svc.FindWithPagination(ctx, PageRequest{PageNumber: 1, PageSize: 101})

		var validationErr common.RequestValidationError
		assert.ErrorAs(t, err, &validationErr)
		repo.AssertNotCalled(t, "FindWithPagination", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count error", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("FindWithPagination", ctx, mock.Anything, 5, 0).Return([]Entity{}, nil)
		repo.On("CountByCriteria", ctx, mock.Anything).Return(int64(0), errors.New("count failed"))

		_, err := svc.FindWithPagination(ctx, PageRequest{PageNumber: 1, PageSize: 5})

		assert.Error(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("single delete by id", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("DeleteById", ctx, int64(5)).Return(nil)

		require.NoError(t, svc.DeleteEmpById(ctx, 5))
		repo.AssertExpectations(t)
	})

	t.Run("batch delete issues one criteria delete", func(t *testing.T) {
		repo, svc := setupTestService()
		ids := []int64{1, 2, 3}
		repo.On("DeleteByCriteria", ctx, IdIn(ids)).Return(nil).Once()

		require.NoError(t, svc.DeleteBatch(ctx, ids))
		repo.AssertNumberOfCalls(t, "DeleteByCriteria", 1)
		repo.AssertNotCalled(t, "DeleteById", mock.Anything, mock.Anything)
	})

	t.Run("batch delete error", func(t *testing.T) {
		repo, svc := setupTestService()
		repo.On("DeleteByCriteria", ctx, mock.Anything).Return(errors.New("boom"))

		assert.Error(t, svc.DeleteBatch(ctx, []int64{1, 2}))
	})
}
