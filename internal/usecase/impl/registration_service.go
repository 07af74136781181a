package impl

import (
	"context"
	"log/slog"
	"time"

	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/repository"
	"skuledger/internal/errors"
	"skuledger/internal/usecase"
)

type registrationService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewRegistrationService creates the registration use case instance.
func NewRegistrationService(userRepo repository.UserRepository, logger *slog.Logger) usecase.RegistrationUsecase {
	return &registrationService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterCustomer maps the "customer created" payload field-by-field into a
// single user insert.
func (s *registrationService) RegisterCustomer(ctx context.Context, payload *usecase.CustomerPayload) error {
	createdAt, ok := coerceTime(payload.CreatedAt)
	if !ok {
		createdAt = time.Now().UTC()
	}

	customer := &entity.Customer{
		ID:               payload.ID,
		Email:            payload.Email,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Phone:            payload.Phone,
		Currency:         payload.Currency,
		State:            payload.State,
		Note:             payload.Note,
		Tags:             payload.Tags,
		VerifiedEmail:    payload.VerifiedEmail,
		TaxExempt:        payload.TaxExempt,
		AcceptsMarketing: payload.AcceptsMarketing,
		OrdersCount:      payload.OrdersCount,
		TotalSpent:       payload.TotalSpent,
		LastOrderID:      payload.LastOrderID,
		CreatedAt:        createdAt,
	}

	if err := s.userRepo.Create(ctx, customer); err != nil {
		return errors.Wrap(err, "failed to register customer")
	}

	s.logger.InfoContext(ctx, "customer registered",
		slog.Int64("customerID", customer.ID),
		slog.String("email", customer.Email),
	)

	return nil
}
