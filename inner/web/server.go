package web

import (
	"errors"

	"crud/inner/common"

	_ "crud/docs"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// структура веб-сервера
type Server struct {
	App *fiber.App
	// корневая группа, в ней живут /emp, /emps, /checkuser, /depts
	GroupRoot fiber.Router
	// группа непубличного API
	GroupInternal fiber.Router
}

// функция-конструктор
func NewServer(cfg common.Config, logger *common.Logger) *Server {
	// создаём новый веб-сервер
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: errorHandler(logger),
	})

	// Middleware для восстановления от паники
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Middleware для добавления уникального ID к каждому запросу
	app.Use(requestid.New())

	// логирование запросов через zap
	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Logger,
		Fields: []string{"requestId", "latency", "status", "method", "url", "ip"},
	}))

	InitSwagger(app)

	groupInternal := app.Group("/internal")
	groupInternal.Use(func(c *fiber.Ctx) error {
		c.Set("X-Internal-API", "true")
		return c.Next()
	})

	return &Server{
		App:           app,
		GroupRoot:     app,
		GroupInternal: groupInternal,
	}
}

// errorHandler отвечает конвертом Msg на ошибки, не обработанные хендлерами
// (неизвестный маршрут, паника, ошибки fiber)
func errorHandler(logger *common.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorCtx(ctx, "unhandled request error",
				zap.Error(err),
				zap.String("path", ctx.Path()),
				zap.String("method", ctx.Method()))
		}
		return common.ErrResponse(ctx, code, message)
	}
}
