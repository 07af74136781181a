package impl

import (
	"context"
	"log/slog"
	"sync"

	"skuledger/internal/domain/repository"
	"skuledger/internal/errors"
	"skuledger/internal/usecase"
)

type counterService struct {
	counterRepo repository.CounterRepository
	logger      *slog.Logger
}

// NewCounterService creates the counter consumer use case instance.
func NewCounterService(counterRepo repository.CounterRepository, logger *slog.Logger) usecase.CounterUsecase {
	return &counterService{
		counterRepo: counterRepo,
		logger:      logger,
	}
}

// ConsumeCount decrements every counter row matching the (user, bot) pair by
// exactly one. All row updates run concurrently and are awaited together; the
// decrement itself is atomic at the store, so a row at zero stays at zero and
// is reported as not applied. A single row's failure never fails the call.
func (s *counterService) ConsumeCount(ctx context.Context, input *usecase.ConsumeCountInput) (*usecase.ConsumeCountOutput, error) {
	counters, err := s.counterRepo.FindByUserAndBot(ctx, *input.UserID, *input.BotID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find counter rows")
	}

	if len(counters) == 0 {
		return nil, usecase.ErrNoCounterRows
	}

	outcomes := make([]usecase.DecrementOutcome, len(counters))

	var wg sync.WaitGroup
	for i, counter := range counters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome := usecase.DecrementOutcome{CounterID: counter.ID}

			applied, err := s.counterRepo.DecrementOnce(ctx, counter.ID)
			switch {
			case err != nil:
				s.logger.ErrorContext(ctx, "failed to decrement counter row",
					slog.String("counterID", counter.ID.String()),
					slog.Int64("userID", *input.UserID),
					slog.String("error", err.Error()),
				)
				outcome.Reason = "update failed"
			case !applied:
				outcome.Reason = "no decrement applied"
			default:
				outcome.Applied = true
			}

			outcomes[i] = outcome
		}()
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "count consumed",
		slog.Int64("userID", *input.UserID),
		slog.Int64("botID", *input.BotID),
		slog.Int("rows", len(counters)),
	)

	return &usecase.ConsumeCountOutput{
		RequestCount: *input.RequestCount,
		Outcomes:     outcomes,
	}, nil
}

// SaveBotID upserts the bot id onto the user's counter row, creating the row
// without a quantity when absent.
func (s *counterService) SaveBotID(ctx context.Context, userID, botID int64) error {
	if err := s.counterRepo.SaveBotID(ctx, userID, botID); err != nil {
		return errors.Wrap(err, "failed to save bot id")
	}

	return nil
}

// CheckQuantity reads the user's single counter row and derives the
// eligibility view. A row with an unset quantity is eligible (default-open);
// only an exhausted quantity of zero hides the button.
func (s *counterService) CheckQuantity(ctx context.Context, userID int64) (*usecase.CounterStatus, error) {
	counter, err := s.counterRepo.FindOneByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read counter row")
	}

	return &usecase.CounterStatus{
		ShowButton: counter.Eligible(),
		UserData: usecase.CounterUserData{
			UserID:           counter.UserID,
			SKUQuantity:      counter.SKUQuantity,
			LastPurchaseDate: counter.LastPurchaseDate,
			BotID:            counter.BotID,
		},
	}, nil
}
