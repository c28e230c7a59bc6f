package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vidinfra/recur/internal/config"
	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/logger"
	"github.com/vidinfra/recur/internal/validator"
)

type ScheduleServiceSuite struct {
	suite.Suite
	ctx             context.Context
	scheduleService ScheduleService
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.ctx = context.Background()
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	s.Require().NoError(err)

	s.scheduleService = NewScheduleService(ServiceParams{
		Logger: log,
		Config: cfg,
	})
}

func (s *ScheduleServiceSuite) TestPreviewSchedule() {
	preview, err := s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=MONTHLY;BYMONTHDAY=31",
		Start:       time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		Amount:      "49.99",
		Currency:    "usd",
		Occurrences: 4,
	})
	s.Require().NoError(err)

	s.Len(preview.Charges, 4)
	s.Equal("usd", preview.Currency)

	wantDates := []time.Time{
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
	for i, charge := range preview.Charges {
		s.True(charge.Date.Equal(wantDates[i]), "charge %d: got %s", i, charge.Date)
		s.Equal("49.9900", charge.Amount.String())
	}

	s.Equal("199.9600", preview.Total.String())
	s.Equal("199.9600", preview.Charges[3].RunningTotal.String())
}

func (s *ScheduleServiceSuite) TestPreviewScheduleDefaultCurrency() {
	preview, err := s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=DAILY",
		Start:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "1.00",
		Occurrences: 2,
	})
	s.Require().NoError(err)
	s.Equal("usd", preview.Currency)
}

func (s *ScheduleServiceSuite) TestPreviewScheduleRuleCountCap() {
	preview, err := s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=MONTHLY;BYMONTHDAY=1;COUNT=2",
		Start:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "10",
		Occurrences: 6,
	})
	s.Require().NoError(err)
	s.Len(preview.Charges, 2)
	s.Equal("20.0000", preview.Total.String())
}

func (s *ScheduleServiceSuite) TestPreviewScheduleValidation() {
	// missing rule
	_, err := s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Start:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "10",
		Occurrences: 3,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// invalid rule text
	_, err = s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=NEVER",
		Start:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "10",
		Occurrences: 3,
	})
	s.Error(err)
	s.True(ierr.IsInvalidRule(err))

	// invalid amount
	_, err = s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=DAILY",
		Start:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "ten dollars",
		Occurrences: 3,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ScheduleServiceSuite) TestPreviewScheduleOccurrenceCap() {
	_, err := s.scheduleService.PreviewSchedule(s.ctx, SchedulePreviewRequest{
		Rule:        "FREQ=DAILY",
		Start:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:      "1",
		Occurrences: 10000,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
