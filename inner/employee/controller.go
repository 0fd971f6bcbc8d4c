package employee

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"crud/inner/common"
	"crud/inner/pagination"
	"crud/inner/validator"
	"crud/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// размер страницы списка сотрудников
const PageSize = 5

const (
	msgInternalError   = "internal server error"
	msgInvalidId       = "invalid employee id"
	msgNameFormat      = "username must be 2-10 CJK characters or 3-16 lowercase letters, digits, '_' or '-'"
	msgNameUnavailable = "name unavailable"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	SaveEmp(ctx context.Context, request CreateRequest) (int64, error)
	FindWithPagination(ctx context.Context, request PageRequest) (pagination.PageInfo[Response], error)
	CheckUser(ctx context.Context, name string) (bool, error)
	GetEmp(ctx context.Context, id int64) (Response, error)
	UpdateEmp(ctx context.Context, id int64, request UpdateRequest) error
	DeleteEmpById(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	root := c.server.GroupRoot
	root.Delete("/emp/:ids", c.DeleteEmp)
	root.Put("/emp/:empId", c.UpdateEmp)
	root.Get("/emp/:id", c.GetEmp)
	root.Get("/checkuser", c.CheckUser)
	root.Post("/emp", c.SaveEmp)
	root.Get("/emps", c.GetEmps)
}

// DeleteEmp удаляет одного сотрудника или несколько, если id перечислены через '-'
//
// @Summary     Delete employees
// @Description "5" deletes one employee, "1-2-3" deletes all listed in one statement
// @Tags        employees
// @Produce     json
// @Param       ids path string true "id or '-'-joined ids"
// @Success     200 {object} common.Msg
// @Failure     400 {object} common.Msg
// @Failure     500 {object} common.Msg
// @Router      /emp/{ids} [delete]
func (c *Controller) DeleteEmp(ctx *fiber.Ctx) error {
	ids, err := parseIds(ctx.Params("ids"))
	if err != nil {
		c.logger.DebugCtx(ctx, "Invalid employee ids", zap.String("ids", ctx.Params("ids")))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, msgInvalidId)
	}

	if len(ids) > 1 {
		err = c.employeeService.DeleteBatch(ctx.UserContext(), ids)
	} else {
		err = c.employeeService.DeleteEmpById(ctx.UserContext(), ids[0])
	}
	if err != nil {
		return c.errorResponse(ctx, err)
	}
	return common.OkResponse(ctx, common.Success())
}

// UpdateEmp частично обновляет сотрудника
//
// @Summary     Update employee
// @Description only supplied fields are written
// @Tags        employees
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       empId   path int                   true "employee id"
// @Param       request body UpdateRequest         true "fields to update"
// @Success     200 {object} common.Msg
// @Failure     400 {object} common.Msg "extras.errorFields"
// @Failure     500 {object} common.Msg
// @Router      /emp/{empId} [put]
func (c *Controller) UpdateEmp(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("empId"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, msgInvalidId)
	}

	var request UpdateRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
	}

	if err := c.employeeService.UpdateEmp(ctx.UserContext(), id, request); err != nil {
		return c.errorResponse(ctx, err)
	}
	return common.OkResponse(ctx, common.Success())
}

// GetEmp сотрудник по id
//
// @Summary     Get employee
// @Tags        employees
// @Produce     json
// @Param       id path int true "employee id"
// @Success     200 {object} common.Msg "extras.emp: Employee"
// @Failure     400 {object} common.Msg
// @Failure     404 {object} common.Msg
// @Failure     500 {object} common.Msg
// @Router      /emp/{id} [get]
func (c *Controller) GetEmp(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, msgInvalidId)
	}

	employee, err := c.employeeService.GetEmp(ctx.UserContext(), id)
	if err != nil {
		return c.errorResponse(ctx, err)
	}
	return common.OkResponse(ctx, common.Success().Add("emp", employee))
}

// CheckUser проверяет формат и доступность имени.
// Оба отказа мягкие: HTTP 200 и fail с va_msg.
//
// @Summary     Check username availability
// @Tags        employees
// @Produce     json
// @Param       empName query string true "username"
// @Success     200 {object} common.Msg "fail carries extras.va_msg"
// @Failure     500 {object} common.Msg
// @Router      /checkuser [get]
func (c *Controller) CheckUser(ctx *fiber.Ctx) error {
	name := ctx.Query("empName")
	if !validator.MatchEmpName(name) {
		return common.OkResponse(ctx, common.Fail().Add(common.KeyVaMsg, msgNameFormat))
	}

	available, err := c.employeeService.CheckUser(ctx.UserContext(), name)
	if err != nil {
		return c.errorResponse(ctx, err)
	}
	if !available {
		return common.OkResponse(ctx, common.Fail().Add(common.KeyVaMsg, msgNameUnavailable))
	}
	return common.OkResponse(ctx, common.Success())
}

// SaveEmp создаёт сотрудника
//
// @Summary     Create employee
// @Tags        employees
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       request body CreateRequest true "new employee"
// @Success     200 {object} common.Msg
// @Failure     400 {object} common.Msg "extras.errorFields"
// @Failure     409 {object} common.Msg "extras.errorFields.empName"
// @Failure     500 {object} common.Msg
// @Router      /emp [post]
func (c *Controller) SaveEmp(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	if _, err := c.employeeService.SaveEmp(ctx.UserContext(), request); err != nil {
		return c.errorResponse(ctx, err)
	}
	return common.OkResponse(ctx, common.Success())
}

// GetEmps страница списка сотрудников
//
// @Summary     List employees
// @Description fixed page size 5, navigation window 5; pn below 1 is treated as 1
// @Tags        employees
// @Produce     json
// @Param       pn query int false "page number" default(1)
// @Success     200 {object} common.Msg "extras.pageInfo: PageInfo"
// @Failure     400 {object} common.Msg
// @Failure     500 {object} common.Msg
// @Router      /emps [get]
func (c *Controller) GetEmps(ctx *fiber.Ctx) error {
	pageNumber := 1
	if pn := ctx.Query("pn"); pn != "" {
		parsed, err := strconv.Atoi(pn)
		if err != nil {
			return common.ErrResponse(ctx, fiber.StatusBadRequest, "invalid page number")
		}
		pageNumber = max(parsed, 1)
	}

	page, err := c.employeeService.FindWithPagination(ctx.UserContext(), PageRequest{
		PageNumber: pageNumber,
		PageSize:   PageSize,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}
	return common.OkResponse(ctx, common.Success().Add("pageInfo", page))
}

// errorResponse переводит ошибку сервиса в ответ; ошибки хранилища клиенту не раскрываются
func (c *Controller) errorResponse(ctx *fiber.Ctx, err error) error {
	var validationErr common.RequestValidationError
	var existsErr common.AlreadyExistsError
	var notFoundErr common.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return common.ValidationErrorResponse(ctx, validationErr)
	case errors.As(err, &existsErr):
		var extras []map[string]any
		if existsErr.Field != "" {
			extras = append(extras, map[string]any{
				common.KeyErrorFields: map[string]string{existsErr.Field: existsErr.Message},
			})
		}
		return common.ErrResponse(ctx, fiber.StatusConflict, existsErr.Message, extras...)
	case errors.As(err, &notFoundErr):
		return common.ErrResponse(ctx, fiber.StatusNotFound, notFoundErr.Message)
	default:
		c.logger.ErrorCtx(ctx, "Employee request failed", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, msgInternalError)
	}
}

// parseIds разбирает "5" или "1-2-3"; пустой или нечисловой элемент - ошибка
func parseIds(raw string) ([]int64, error) {
	parts := strings.Split(raw, "-")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
