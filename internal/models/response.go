package models

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the uniform JSON envelope for every API response.
// Success responses carry `{message, data?}`, errors carry `{message}` only.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PostList is the payload of the paginated post listing.
type PostList struct {
	Posts    []*Post `json:"posts"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// Respond writes a success envelope with the given status, message and data.
func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Message: message, Data: data})
}
