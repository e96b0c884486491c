// api/handlers.go
package api

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.SendString("Hello Hono!")
}

func (s *Server) handleHealthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleListTodos(c *fiber.Ctx) error {
	return c.JSON(s.store.List())
}

func (s *Server) handleGetTodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid todo id")
	}

	todo, ok := s.store.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "todo not found")
	}

	return c.JSON(todo)
}

func (s *Server) handleCreateTodo(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}

	todo := s.store.Create(req.Name)

	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (s *Server) handleUpdateTodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid todo id")
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}

	todo, ok := s.store.Update(id, req.Name)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "todo not found")
	}

	return c.JSON(todo)
}

func (s *Server) handleDeleteTodo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid todo id")
	}

	if !s.store.Delete(id) {
		return fiber.NewError(fiber.StatusNotFound, "todo not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
