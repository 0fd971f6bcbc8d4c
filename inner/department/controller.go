package department

import (
	"context"

	"crud/inner/common"
	"crud/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server            *web.Server
	departmentService Svc
	logger            *common.Logger
}

// интерфейс сервиса department.Service
type Svc interface {
	GetDepartment(ctx context.Context) ([]Response, error)
}

func NewController(server *web.Server, departmentService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:            server,
		departmentService: departmentService,
		logger:            logger,
	}
}

func (c *Controller) RegisterRoutes() {
	c.server.GroupRoot.Get("/depts", c.GetDepts)
}

// GetDepts список всех отделов
//
// @Summary     List departments
// @Tags        departments
// @Produce     json
// @Success     200 {object} common.Msg "extras.depts: []Department"
// @Failure     500 {object} common.Msg
// @Router      /depts [get]
func (c *Controller) GetDepts(ctx *fiber.Ctx) error {
	depts, err := c.departmentService.GetDepartment(ctx.UserContext())
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to get departments", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, "internal server error")
	}
	return common.OkResponse(ctx, common.Success().Add("depts", depts))
}
