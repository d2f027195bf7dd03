// Package response writes the backend wire envelope for the dev mock API:
// {success, message?, data} where data is an entity, an array, or the
// spring-style page object the client's envelope parser understands.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the standard response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Page is the page object carried in Data for paginated list responses.
type Page struct {
	Content       any `json:"content"`
	PageNumber    int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Success returns a 200 with data in the envelope.
func Success(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
	})
}

// Created returns a 201 with data in the envelope.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Paginated returns a 200 whose data is a page object.
func Paginated(c *fiber.Ctx, content any, pageNumber, size, totalElements int) error {
	totalPages := 0
	if size > 0 {
		totalPages = totalElements / size
		if totalElements%size > 0 {
			totalPages++
		}
	}
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data: Page{
			Content:       content,
			PageNumber:    pageNumber,
			Size:          size,
			TotalElements: totalElements,
			TotalPages:    totalPages,
		},
	})
}

// Error returns a failed envelope with the given status.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Envelope{
		Success: false,
		Message: message,
	})
}

// NotFound returns a failed envelope with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, fiber.StatusNotFound, message)
}

// BadRequest returns a failed envelope with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}
