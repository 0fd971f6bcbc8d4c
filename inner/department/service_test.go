package department

import (
	"context"
	"errors"
	"testing"

	"crud/inner/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) FindAll(ctx context.Context) ([]Entity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Entity), args.Error(1)
}

// StubRepo всегда возвращает заданный список отделов
type StubRepo struct {
	entities []Entity
}

func (s *StubRepo) FindAll(ctx context.Context) ([]Entity, error) {
	return s.entities, nil
}

func testLogger() *common.Logger {
	return common.NewLogger(common.Config{AppName: "test_app", AppVersion: "1.0.0", LogLevel: "ERROR"})
}

func TestService_GetDepartment_Mock(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepo)
	mockRepo.On("FindAll", ctx).Return([]Entity{{Id: 1, Name: "Development"}, {Id: 2, Name: "Test"}}, nil)

	svc := NewService(mockRepo, testLogger())
	result, err := svc.GetDepartment(ctx)

	require.NoError(t, err)
	assert.Equal(t, []Response{{DeptId: 1, DeptName: "Development"}, {DeptId: 2, DeptName: "Test"}}, result)
	mockRepo.AssertExpectations(t)
}

func TestService_GetDepartment_Stub(t *testing.T) {
	svc := NewService(&StubRepo{}, testLogger())

	result, err := svc.GetDepartment(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestService_GetDepartment_Error(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database error")
	mockRepo := new(MockRepo)
	mockRepo.On("FindAll", ctx).Return([]Entity(nil), dbErr)

	svc := NewService(mockRepo, testLogger())
	result, err := svc.GetDepartment(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}
