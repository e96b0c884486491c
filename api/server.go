// api/server.go
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"todostarter/store"
)

type Server struct {
	store *store.Store
	log   zerolog.Logger
}

func NewServer(st *store.Store, logger zerolog.Logger) *Server {
	return &Server{store: st, log: logger}
}

// App builds the fiber application with all middleware and routes wired.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "todostarter",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(s.requestLogger())

	app.Get("/", s.handleRoot)
	app.Get("/healthz", s.handleHealthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	todos := app.Group("/api/todos")
	todos.Get("/", s.handleListTodos)
	todos.Post("/", s.handleCreateTodo)
	todos.Get("/:id", s.handleGetTodo)
	todos.Put("/:id", s.handleUpdateTodo)
	todos.Delete("/:id", s.handleDeleteTodo)

	return app
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
