// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"skuledger/internal/delivery/http/response"
	"skuledger/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	customerAck = "Webhook received and processed"
	orderAck    = "Order webhook received and processed"
	webhookErr  = "Webhook Error"
)

// WebhookHandler receives the shop platform's webhook deliveries. The
// dispatcher only looks at the status code and a plain-text body, so both
// endpoints answer with the legacy ack strings.
type WebhookHandler struct {
	registrationUC usecase.RegistrationUsecase
	orderUC        usecase.OrderUsecase
	logger         *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(registrationUC usecase.RegistrationUsecase, orderUC usecase.OrderUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		registrationUC: registrationUC,
		orderUC:        orderUC,
		logger:         logger,
	}
}

// RegisterCustomer handles the "customer created" webhook.
func (h *WebhookHandler) RegisterCustomer(c echo.Context) error {
	var payload *usecase.CustomerPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.Warn("failed to bind customer webhook", slog.String("error", err.Error()))

		return response.AckFailure(c, webhookErr)
	}
	// A body of literal JSON null binds without error and leaves payload nil.
	if payload == nil {
		h.logger.Warn("customer webhook carried no payload")

		return response.AckFailure(c, webhookErr)
	}

	if err := h.registrationUC.RegisterCustomer(c.Request().Context(), payload); err != nil {
		h.logger.Error("failed to register customer",
			slog.Int64("customerID", payload.ID),
			slog.String("error", err.Error()),
		)

		return response.AckFailure(c, webhookErr)
	}

	return response.Ack(c, customerAck)
}

// ProcessOrder handles the "order created" webhook.
func (h *WebhookHandler) ProcessOrder(c echo.Context) error {
	var payload *usecase.OrderPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.Warn("failed to bind order webhook", slog.String("error", err.Error()))

		return response.AckFailure(c, webhookErr)
	}
	if payload == nil {
		h.logger.Warn("order webhook carried no payload")

		return response.AckFailure(c, webhookErr)
	}

	output, err := h.orderUC.ProcessOrder(c.Request().Context(), payload)
	if err != nil {
		h.logger.Error("failed to process order webhook",
			slog.Int64("orderID", payload.ID),
			slog.String("error", err.Error()),
		)

		return response.AckFailure(c, webhookErr)
	}

	for _, outcome := range output.Outcomes {
		if !outcome.Accumulated {
			h.logger.Warn("line item not accumulated",
				slog.Int64("orderID", output.OrderID),
				slog.String("productName", outcome.ProductName),
				slog.Int64("sku", outcome.SKU),
				slog.String("reason", outcome.Reason),
			)
		}
	}

	return response.Ack(c, orderAck)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
