package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skuledger/internal/delivery/http/validator"
	mockUsecase "skuledger/internal/mocks/usecase"
	"skuledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type counterHandlerFixtures struct {
	handler   *CounterHandler
	counterUC *mockUsecase.MockCounterUsecase
}

func createTestCounterHandler(t *testing.T) counterHandlerFixtures {
	counterUC := mockUsecase.NewMockCounterUsecase(t)
	handler := NewCounterHandler(counterUC, slog.Default())

	return counterHandlerFixtures{
		handler:   handler,
		counterUC: counterUC,
	}
}

func newValidatedJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCounterHandler_ConsumeCount(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		ConsumeCount(mock.Anything, mock.AnythingOfType("*usecase.ConsumeCountInput")).
		Return(&usecase.ConsumeCountOutput{
			RequestCount: 1,
			Outcomes: []usecase.DecrementOutcome{
				{CounterID: uuid.New(), Applied: true},
			},
		}, nil)

	c, rec := newValidatedJSONContext(http.MethodPost, "/count",
		`{"requestCount": 1, "userId": 42, "botId": 7}`)

	require.NoError(t, fx.handler.ConsumeCount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Count updated successfully", "requestCount": 1}`, rec.Body.String())
}

func TestCounterHandler_ConsumeCount_MissingFields(t *testing.T) {
	fx := createTestCounterHandler(t)

	c, rec := newValidatedJSONContext(http.MethodPost, "/count", `{"requestCount": 1, "userId": 42}`)

	require.NoError(t, fx.handler.ConsumeCount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "requestCount, userId and botId are required"}`, rec.Body.String())
}

func TestCounterHandler_ConsumeCount_NoMatchingRows(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		ConsumeCount(mock.Anything, mock.AnythingOfType("*usecase.ConsumeCountInput")).
		Return(nil, usecase.ErrNoCounterRows)

	c, rec := newValidatedJSONContext(http.MethodPost, "/count",
		`{"requestCount": 1, "userId": 42, "botId": 7}`)

	require.NoError(t, fx.handler.ConsumeCount(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "No records found for this user ID and bot ID"}`, rec.Body.String())
}

func TestCounterHandler_ConsumeCount_QueryFailure(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		ConsumeCount(mock.Anything, mock.AnythingOfType("*usecase.ConsumeCountInput")).
		Return(nil, assert.AnError)

	c, rec := newValidatedJSONContext(http.MethodPost, "/count",
		`{"requestCount": 1, "userId": 42, "botId": 7}`)

	require.NoError(t, fx.handler.ConsumeCount(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Error updating SKU quantity"}`, rec.Body.String())
}

func TestCounterHandler_SaveBotID(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		SaveBotID(mock.Anything, int64(42), int64(7)).
		Return(nil)

	c, rec := newValidatedJSONContext(http.MethodPost, "/save-user-bot-id",
		`{"customerId": 42, "botId": 7}`)

	require.NoError(t, fx.handler.SaveBotID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bot ID saved successfully", rec.Body.String())
}

func TestCounterHandler_SaveBotID_Failure(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		SaveBotID(mock.Anything, int64(42), int64(7)).
		Return(assert.AnError)

	c, rec := newValidatedJSONContext(http.MethodPost, "/save-user-bot-id",
		`{"customerId": 42, "botId": 7}`)

	require.NoError(t, fx.handler.SaveBotID(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error saving bot ID", rec.Body.String())
}

func TestCounterHandler_SaveBotID_MissingFields(t *testing.T) {
	fx := createTestCounterHandler(t)

	c, rec := newValidatedJSONContext(http.MethodPost, "/save-user-bot-id", `{"customerId": 42}`)

	require.NoError(t, fx.handler.SaveBotID(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error saving bot ID", rec.Body.String())
}

func TestCounterHandler_CheckQuantity(t *testing.T) {
	fx := createTestCounterHandler(t)

	quantity := int64(3)
	botID := int64(7)
	lastPurchase := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fx.counterUC.EXPECT().
		CheckQuantity(mock.Anything, int64(42)).
		Return(&usecase.CounterStatus{
			ShowButton: true,
			UserData: usecase.CounterUserData{
				UserID:           42,
				SKUQuantity:      &quantity,
				LastPurchaseDate: &lastPurchase,
				BotID:            &botID,
			},
		}, nil)

	c, rec := newValidatedJSONContext(http.MethodPost, "/check-sku-quantity", `{"customerId": 42}`)

	require.NoError(t, fx.handler.CheckQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"showButton": true,
		"userData": {
			"userId": 42,
			"skuQuantity": 3,
			"lastPurchaseDate": "2024-05-01T10:00:00Z",
			"botId": 7
		}
	}`, rec.Body.String())
}

func TestCounterHandler_CheckQuantity_NullQuantity(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		CheckQuantity(mock.Anything, int64(42)).
		Return(&usecase.CounterStatus{
			ShowButton: true,
			UserData:   usecase.CounterUserData{UserID: 42},
		}, nil)

	c, rec := newValidatedJSONContext(http.MethodPost, "/check-sku-quantity", `{"customerId": 42}`)

	require.NoError(t, fx.handler.CheckQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"showButton": true,
		"userData": {
			"userId": 42,
			"skuQuantity": null,
			"lastPurchaseDate": null,
			"botId": null
		}
	}`, rec.Body.String())
}

func TestCounterHandler_CheckQuantity_Failure(t *testing.T) {
	fx := createTestCounterHandler(t)

	fx.counterUC.EXPECT().
		CheckQuantity(mock.Anything, int64(42)).
		Return(nil, assert.AnError)

	c, rec := newValidatedJSONContext(http.MethodPost, "/check-sku-quantity", `{"customerId": 42}`)

	require.NoError(t, fx.handler.CheckQuantity(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Error checking SKU quantity"}`, rec.Body.String())
}
