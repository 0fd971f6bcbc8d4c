// Package seeder наполняет пустую базу отделами и сотрудниками со случайными данными
package seeder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"crud/inner/common"
	"crud/inner/department"
	"crud/inner/employee"
	"crud/inner/validator"

	"github.com/icrowley/fake"
	"go.uber.org/zap"
)

var DefaultDepartments = []string{"Development", "Test", "Operations", "Sales", "Support"}

type DepartmentRepo interface {
	Add(ctx context.Context, department *department.Entity) error
}

// EmployeeSaver сохраняет сотрудника с проверкой имени, см. employee.Service.SaveEmp
type EmployeeSaver interface {
	SaveEmp(ctx context.Context, request employee.CreateRequest) (int64, error)
}

type Seeder struct {
	departments DepartmentRepo
	employees   EmployeeSaver
	logger      *common.Logger
	rnd         *rand.Rand
}

type Result struct {
	Departments int
	Employees   int
	Skipped     int
}

func New(departments DepartmentRepo, employees EmployeeSaver, logger *common.Logger, seed int64) *Seeder {
	return &Seeder{
		departments: departments,
		employees:   employees,
		logger:      logger,
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

// Seed создаёт отделы и count сотрудников. Занятые имена пропускаются.
func (s *Seeder) Seed(ctx context.Context, departmentNames []string, count int) (Result, error) {
	var result Result

	deptIds := make([]int64, 0, len(departmentNames))
	for _, name := range departmentNames {
		dept := department.Entity{Name: name}
		if err := s.departments.Add(ctx, &dept); err != nil {
			return result, fmt.Errorf("error adding department %s: %w", name, err)
		}
		deptIds = append(deptIds, dept.Id)
		result.Departments++
	}
	s.logger.Info("Departments seeded", zap.Int("count", result.Departments))

	for i := 0; i < count; i++ {
		request := s.randomEmployee(i, deptIds)
		_, err := s.employees.SaveEmp(ctx, request)
		var existsErr common.AlreadyExistsError
		switch {
		case err == nil:
			result.Employees++
		case errors.As(err, &existsErr):
			s.logger.Debug("Employee name taken, skipping", zap.String("name", request.EmpName))
			result.Skipped++
		default:
			return result, fmt.Errorf("error seeding employee %s: %w", request.EmpName, err)
		}
	}
	s.logger.Info("Employees seeded",
		zap.Int("count", result.Employees),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *Seeder) randomEmployee(index int, deptIds []int64) employee.CreateRequest {
	gender := "M"
	if s.rnd.Intn(2) == 1 {
		gender = "F"
	}
	request := employee.CreateRequest{
		EmpName: EmpName(fake.UserName(), index),
		Email:   strings.ToLower(fake.EmailAddress()),
		Gender:  &gender,
	}
	if len(deptIds) > 0 {
		dId := deptIds[s.rnd.Intn(len(deptIds))]
		request.DId = &dId
	}
	return request
}

// EmpName приводит произвольный логин к допустимому имени сотрудника:
// строчные латинские буквы, цифры, '_' и '-', длина 3-16, с суффиксом index
func EmpName(raw string, index int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	suffix := fmt.Sprintf("_%d", index)
	name := b.String()
	if limit := 16 - len(suffix); len(name) > limit {
		name = name[:limit]
	}
	name += suffix
	for !validator.MatchEmpName(name) {
		name = "e" + name
	}
	return name
}
