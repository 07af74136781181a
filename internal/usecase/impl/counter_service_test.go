package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/repository"
	mockRepo "skuledger/internal/mocks/repository"
	"skuledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterServiceFixtures struct {
	service     usecase.CounterUsecase
	counterRepo *mockRepo.MockCounterRepository
}

func createTestCounterService(t *testing.T) counterServiceFixtures {
	counterRepo := mockRepo.NewMockCounterRepository(t)
	service := NewCounterService(counterRepo, slog.Default())

	return counterServiceFixtures{
		service:     service,
		counterRepo: counterRepo,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestCounterService_ConsumeCount_NoMatchingRows(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		FindByUserAndBot(ctx, int64(42), int64(99)).
		Return(nil, nil)

	output, err := fx.service.ConsumeCount(ctx, &usecase.ConsumeCountInput{
		RequestCount: int64Ptr(1),
		UserID:       int64Ptr(42),
		BotID:        int64Ptr(99),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrNoCounterRows)
	assert.Nil(t, output)
}

func TestCounterService_ConsumeCount_DecrementsEachMatchedRow(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()
	counters := []*entity.SKUCounter{
		{ID: firstID, UserID: 42, SKUQuantity: int64Ptr(3)},
		{ID: secondID, UserID: 42, SKUQuantity: int64Ptr(0)},
	}

	fx.counterRepo.EXPECT().
		FindByUserAndBot(ctx, int64(42), int64(99)).
		Return(counters, nil)
	fx.counterRepo.EXPECT().
		DecrementOnce(ctx, firstID).
		Return(true, nil)
	// A row already at zero is left untouched by the guarded update.
	fx.counterRepo.EXPECT().
		DecrementOnce(ctx, secondID).
		Return(false, nil)

	output, err := fx.service.ConsumeCount(ctx, &usecase.ConsumeCountInput{
		RequestCount: int64Ptr(7),
		UserID:       int64Ptr(42),
		BotID:        int64Ptr(99),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), output.RequestCount)
	require.Len(t, output.Outcomes, 2)

	assert.Equal(t, firstID, output.Outcomes[0].CounterID)
	assert.True(t, output.Outcomes[0].Applied)
	assert.Empty(t, output.Outcomes[0].Reason)

	assert.Equal(t, secondID, output.Outcomes[1].CounterID)
	assert.False(t, output.Outcomes[1].Applied)
	assert.Equal(t, "no decrement applied", output.Outcomes[1].Reason)
}

func TestCounterService_ConsumeCount_RowFailureDoesNotFailCall(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()
	counters := []*entity.SKUCounter{
		{ID: firstID, UserID: 42, SKUQuantity: int64Ptr(2)},
		{ID: secondID, UserID: 42, SKUQuantity: int64Ptr(2)},
	}

	fx.counterRepo.EXPECT().
		FindByUserAndBot(ctx, int64(42), int64(99)).
		Return(counters, nil)
	fx.counterRepo.EXPECT().
		DecrementOnce(ctx, firstID).
		Return(false, assert.AnError)
	fx.counterRepo.EXPECT().
		DecrementOnce(ctx, secondID).
		Return(true, nil)

	output, err := fx.service.ConsumeCount(ctx, &usecase.ConsumeCountInput{
		RequestCount: int64Ptr(1),
		UserID:       int64Ptr(42),
		BotID:        int64Ptr(99),
	})
	require.NoError(t, err)
	require.Len(t, output.Outcomes, 2)
	assert.False(t, output.Outcomes[0].Applied)
	assert.Equal(t, "update failed", output.Outcomes[0].Reason)
	assert.True(t, output.Outcomes[1].Applied)
}

func TestCounterService_ConsumeCount_LookupFailure(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		FindByUserAndBot(ctx, int64(42), int64(99)).
		Return(nil, assert.AnError)

	output, err := fx.service.ConsumeCount(ctx, &usecase.ConsumeCountInput{
		RequestCount: int64Ptr(1),
		UserID:       int64Ptr(42),
		BotID:        int64Ptr(99),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrNoCounterRows)
	assert.Nil(t, output)
}

func TestCounterService_SaveBotID(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		SaveBotID(ctx, int64(42), int64(99)).
		Return(nil)

	require.NoError(t, fx.service.SaveBotID(ctx, 42, 99))
}

func TestCounterService_SaveBotID_Failure(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		SaveBotID(ctx, int64(42), int64(99)).
		Return(assert.AnError)

	err := fx.service.SaveBotID(ctx, 42, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCounterService_CheckQuantity(t *testing.T) {
	lastPurchase := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		skuQuantity    *int64
		wantShowButton bool
	}{
		{name: "unset quantity is eligible", skuQuantity: nil, wantShowButton: true},
		{name: "positive quantity is eligible", skuQuantity: int64Ptr(3), wantShowButton: true},
		{name: "exhausted quantity hides the button", skuQuantity: int64Ptr(0), wantShowButton: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCounterService(t)

			ctx := context.Background()
			fx.counterRepo.EXPECT().
				FindOneByUser(ctx, int64(42)).
				Return(&entity.SKUCounter{
					ID:               uuid.New(),
					UserID:           42,
					BotID:            int64Ptr(99),
					SKUQuantity:      tt.skuQuantity,
					LastPurchaseDate: &lastPurchase,
				}, nil)

			status, err := fx.service.CheckQuantity(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShowButton, status.ShowButton)
			assert.Equal(t, int64(42), status.UserData.UserID)
			assert.Equal(t, tt.skuQuantity, status.UserData.SKUQuantity)
			require.NotNil(t, status.UserData.BotID)
			assert.Equal(t, int64(99), *status.UserData.BotID)
		})
	}
}

func TestCounterService_CheckQuantity_NotFound(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		FindOneByUser(ctx, int64(42)).
		Return(nil, repository.ErrCounterNotFound)

	status, err := fx.service.CheckQuantity(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrCounterNotFound)
	assert.Nil(t, status)
}

func TestCounterService_CheckQuantity_MultipleRows(t *testing.T) {
	fx := createTestCounterService(t)

	ctx := context.Background()
	fx.counterRepo.EXPECT().
		FindOneByUser(ctx, int64(42)).
		Return(nil, repository.ErrMultipleCounterRows)

	status, err := fx.service.CheckQuantity(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrMultipleCounterRows)
	assert.Nil(t, status)
}
