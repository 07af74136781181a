// Package response contains the wire-level response helpers. Webhook senders
// and the bot consumer each expect a fixed body shape, so the helpers here are
// split by contract: plain-text acks for webhooks, bare {"error": ...} JSON
// for the counter endpoints, and a unified envelope for internal endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure, used by internal endpoints such as
// /health and by the fallback error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success successful envelope response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Ack is the 200 plain-text acknowledgement the shop platform's webhook
// dispatcher expects.
func Ack(c echo.Context, message string) error {
	return c.String(http.StatusOK, message)
}

// AckFailure is the 500 plain-text failure body for webhook endpoints.
func AckFailure(c echo.Context, message string) error {
	return c.String(http.StatusInternalServerError, message)
}

// JSONError writes the bare {"error": message} body the counter consumer
// parses.
func JSONError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}
