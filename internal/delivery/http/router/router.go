// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skuledger/internal/delivery/http/middleware"
	"skuledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler      *handler.WebhookHandler
	CounterHandler      *handler.CounterHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler      *handler.WebhookHandler
	counterHandler      *handler.CounterHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:      params.WebhookHandler,
		counterHandler:      params.CounterHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Shop platform webhooks
	e.POST("/user-registration", r.webhookHandler.RegisterCustomer)
	e.POST("/shopify-order-webhook", r.webhookHandler.ProcessOrder)

	// Bot counter endpoints
	e.POST("/count", r.counterHandler.ConsumeCount)
	e.POST("/save-user-bot-id", r.counterHandler.SaveBotID)
	e.POST("/check-sku-quantity", r.counterHandler.CheckQuantity)
}
