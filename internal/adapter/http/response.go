package http

import (
	"agrimarket-backend/internal/adapter/middleware"
	"agrimarket-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Envelope is the success body every API route returns.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Success: true, Data: data})
}

func respondList[T any](c echo.Context, code int, items []T) error {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return c.JSON(code, Envelope{Success: true, Count: &n, Data: items})
}

func respondMessage(c echo.Context, code int, msg string) error {
	return c.JSON(code, Envelope{Success: true, Message: msg})
}

// caller is only valid behind middleware.Auth.
func caller(c echo.Context) user.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}
