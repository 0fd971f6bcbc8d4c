package info

import (
	"crud/inner/common"
	"crud/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	StatusOK           = "OK"
	StatusError        = "ERROR"
	StatusNotConnected = "NOT_CONNECTED"
)

type Controller struct {
	server *web.Server
	cfg    common.Config
	db     *sqlx.DB
	logger *common.Logger
}

func NewController(server *web.Server, cfg common.Config, db *sqlx.DB, logger *common.Logger) *Controller {
	return &Controller{
		server: server,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
} // @name Info

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
} // @name Health

func (c *Controller) RegisterRoutes() {
	// полный путь будет "/internal/info"
	c.server.GroupInternal.Get("/info", c.GetInfo)
	// полный путь будет "/internal/health"
	c.server.GroupInternal.Get("/health", c.GetHealth)
}

// GetInfo получение информации о приложении
//
// @Summary     Application info
// @Tags        internal
// @Produce     json
// @Success     200 {object} common.Msg "extras.info: Info"
// @Router      /internal/info [get]
func (c *Controller) GetInfo(ctx *fiber.Ctx) error {
	return common.OkResponse(ctx, common.Success().Add("info", InfoResponse{
		Name:    c.cfg.AppName,
		Version: c.cfg.AppVersion,
	}))
}

// GetHealth проверка подключения к базе данных
//
// @Summary     Health check
// @Tags        internal
// @Produce     json
// @Success     200 {object} common.Msg "extras.health: Health"
// @Failure     503 {object} common.Msg "extras.health: Health"
// @Router      /internal/health [get]
func (c *Controller) GetHealth(ctx *fiber.Ctx) error {
	health := HealthResponse{
		Status:   StatusOK,
		Database: StatusOK,
	}

	if c.db == nil {
		health.Status = StatusError
		health.Database = StatusNotConnected
		return common.ErrResponse(ctx, fiber.StatusServiceUnavailable, "database not connected",
			map[string]any{"health": health})
	}

	if err := c.db.PingContext(ctx.UserContext()); err != nil {
		c.logger.ErrorCtx(ctx, "Database ping failed", zap.Error(err))
		health.Status = StatusError
		health.Database = StatusError
		return common.ErrResponse(ctx, fiber.StatusServiceUnavailable, "database unavailable",
			map[string]any{"health": health})
	}

	return common.OkResponse(ctx, common.Success().Add("health", health))
}
