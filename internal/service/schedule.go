package service

import (
	"context"
	"time"

	"github.com/vidinfra/recur/internal/config"
	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/logger"
	"github.com/vidinfra/recur/internal/money"
	"github.com/vidinfra/recur/internal/recurrence"
	"github.com/vidinfra/recur/internal/validator"
)

// ServiceParams holds the shared dependencies injected into services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
}

// SchedulePreviewRequest asks for the upcoming charges of a recurring
// billing rule paired with a per-period amount
type SchedulePreviewRequest struct {
	// Rule is the recurrence rule text ex FREQ=MONTHLY;BYMONTHDAY=31
	Rule string `json:"rule" validate:"required"`
	// Start is the date the schedule is anchored at
	Start time.Time `json:"start" validate:"required"`
	// Amount is the per-period amount as a decimal string
	Amount string `json:"amount" validate:"required"`
	// Currency is the 3 letter ISO code, the configured default applies
	// when empty
	Currency string `json:"currency,omitempty"`
	// Occurrences is how many upcoming charges to preview
	Occurrences int `json:"occurrences" validate:"required,gt=0"`
}

// ScheduledCharge is one upcoming billing instant with its amount and
// the running total up to and including it
type ScheduledCharge struct {
	Date         time.Time   `json:"date"`
	Amount       money.Money `json:"amount"`
	RunningTotal money.Money `json:"running_total"`
}

// SchedulePreviewResponse is the full preview of a billing schedule
type SchedulePreviewResponse struct {
	Rule     string            `json:"rule"`
	Currency string            `json:"currency"`
	Charges  []ScheduledCharge `json:"charges"`
	Total    money.Money       `json:"total"`
}

// ScheduleService pairs the recurrence engine with Money computations.
// It owns no state and performs no I/O.
type ScheduleService interface {
	PreviewSchedule(ctx context.Context, req SchedulePreviewRequest) (*SchedulePreviewResponse, error)
}

type scheduleService struct {
	ServiceParams
}

func NewScheduleService(params ServiceParams) ScheduleService {
	return &scheduleService{ServiceParams: params}
}

func (s *scheduleService) PreviewSchedule(ctx context.Context, req SchedulePreviewRequest) (*SchedulePreviewResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	maxOccurrences := s.Config.Billing.MaxPreviewOccurrences
	if req.Occurrences > maxOccurrences {
		return nil, ierr.NewError("too many occurrences requested").
			WithHintf("At most %d occurrences can be previewed in one call", maxOccurrences).
			WithReportableDetails(map[string]any{
				"requested": req.Occurrences,
				"max":       maxOccurrences,
			}).
			Mark(ierr.ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.Config.Billing.DefaultCurrency
	}

	amount, err := money.NewFromString(req.Amount, currency)
	if err != nil {
		return nil, err
	}

	dates, err := recurrence.NextDates(req.Rule, req.Start, req.Occurrences)
	if err != nil {
		return nil, err
	}

	charges := make([]ScheduledCharge, 0, len(dates))
	total := money.Zero(currency)
	for _, date := range dates {
		total, err = total.Add(amount)
		if err != nil {
			return nil, err
		}
		charges = append(charges, ScheduledCharge{
			Date:         date,
			Amount:       amount,
			RunningTotal: total,
		})
	}

	s.Logger.Debugw("previewed billing schedule",
		"rule", req.Rule,
		"start", req.Start,
		"occurrences", len(charges),
		"total", total.String(),
	)

	return &SchedulePreviewResponse{
		Rule:     req.Rule,
		Currency: total.Currency(),
		Charges:  charges,
		Total:    total,
	}, nil
}
