package handler

import (
	"log/slog"
	"net/http"

	"skuledger/internal/delivery/http/response"
	"skuledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const noCounterRowsMessage = "No records found for this user ID and bot ID"

// saveBotIDRequest is the /save-user-bot-id body.
type saveBotIDRequest struct {
	CustomerID *int64 `json:"customerId" validate:"required"`
	BotID      *int64 `json:"botId" validate:"required"`
}

// checkQuantityRequest is the /check-sku-quantity body.
type checkQuantityRequest struct {
	CustomerID *int64 `json:"customerId" validate:"required"`
}

// CounterHandler serves the external bot's counter endpoints. Their bodies
// are a wire contract with a deployed consumer, so every branch writes the
// exact legacy shape.
type CounterHandler struct {
	counterUC usecase.CounterUsecase
	logger    *slog.Logger
}

// NewCounterHandler is the constructor for CounterHandler, injected by Fx.
func NewCounterHandler(counterUC usecase.CounterUsecase, logger *slog.Logger) *CounterHandler {
	return &CounterHandler{
		counterUC: counterUC,
		logger:    logger,
	}
}

// ConsumeCount handles POST /count.
func (h *CounterHandler) ConsumeCount(c echo.Context) error {
	var input *usecase.ConsumeCountInput
	if err := c.Bind(&input); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(input); err != nil {
		return response.JSONError(c, http.StatusBadRequest, "requestCount, userId and botId are required")
	}

	output, err := h.counterUC.ConsumeCount(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, usecase.ErrNoCounterRows) {
			return response.JSONError(c, http.StatusNotFound, noCounterRowsMessage)
		}

		h.logger.Error("failed to consume count",
			slog.Int64("userID", *input.UserID),
			slog.Int64("botID", *input.BotID),
			slog.String("error", err.Error()),
		)

		return response.JSONError(c, http.StatusInternalServerError, "Error updating SKU quantity")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Count updated successfully",
		"requestCount": output.RequestCount,
	})
}

// SaveBotID handles POST /save-user-bot-id.
func (h *CounterHandler) SaveBotID(c echo.Context) error {
	var input *saveBotIDRequest
	if err := c.Bind(&input); err != nil {
		return response.AckFailure(c, "Error saving bot ID")
	}

	if err := c.Validate(input); err != nil {
		return response.AckFailure(c, "Error saving bot ID")
	}

	if err := h.counterUC.SaveBotID(c.Request().Context(), *input.CustomerID, *input.BotID); err != nil {
		h.logger.Error("failed to save bot id",
			slog.Int64("userID", *input.CustomerID),
			slog.Int64("botID", *input.BotID),
			slog.String("error", err.Error()),
		)

		return response.AckFailure(c, "Error saving bot ID")
	}

	return response.Ack(c, "Bot ID saved successfully")
}

// CheckQuantity handles POST /check-sku-quantity.
func (h *CounterHandler) CheckQuantity(c echo.Context) error {
	var input *checkQuantityRequest
	if err := c.Bind(&input); err != nil {
		return response.JSONError(c, http.StatusInternalServerError, "Error checking SKU quantity")
	}

	if err := c.Validate(input); err != nil {
		return response.JSONError(c, http.StatusInternalServerError, "Error checking SKU quantity")
	}

	status, err := h.counterUC.CheckQuantity(c.Request().Context(), *input.CustomerID)
	if err != nil {
		h.logger.Error("failed to check sku quantity",
			slog.Int64("userID", *input.CustomerID),
			slog.String("error", err.Error()),
		)

		return response.JSONError(c, http.StatusInternalServerError, "Error checking SKU quantity")
	}

	return c.JSON(http.StatusOK, status)
}
