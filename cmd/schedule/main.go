package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"github.com/vidinfra/recur/internal/config"
	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/logger"
	"github.com/vidinfra/recur/internal/recurrence"
	"github.com/vidinfra/recur/internal/service"
	"github.com/vidinfra/recur/internal/validator"
)

func init() {
	// Billing dates are calendar dates, keep the whole process in UTC
	time.Local = time.UTC
}

func main() {
	rule := flag.String("rule", "", "recurrence rule text, ex FREQ=MONTHLY;BYMONTHDAY=31")
	start := flag.String("start", time.Now().UTC().Format("2006-01-02"), "schedule start date (YYYY-MM-DD)")
	amount := flag.String("amount", "0", "per-period amount as a decimal string")
	currency := flag.String("currency", "", "3 letter currency code, config default when empty")
	count := flag.Int("count", 12, "number of occurrences to preview")
	validateOnly := flag.Bool("validate", false, "only validate the rule text and exit")
	flag.Parse()

	if *rule == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *validateOnly {
		result := recurrence.Validate(*rule)
		if !result.Valid {
			fmt.Printf("invalid: %s\n", result.Error)
			os.Exit(1)
		}
		fmt.Println("valid")
		return
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			newServiceParams,
			service.NewScheduleService,
		),
		fx.Invoke(func(svc service.ScheduleService, log *logger.Logger) error {
			return run(svc, log, *rule, *start, *amount, *currency, *count)
		}),
	)

	if err := app.Err(); err != nil {
		log.Fatalf("schedule preview failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	_ = app.Stop(ctx)
}

// newServiceParams also pulls in the validator so the global request
// validator is initialized before any service runs
func newServiceParams(cfg *config.Configuration, log *logger.Logger, _ *govalidator.Validate) service.ServiceParams {
	return service.ServiceParams{Config: cfg, Logger: log}
}

func run(svc service.ScheduleService, log *logger.Logger, rule, start, amount, currency string, count int) error {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}

	preview, err := svc.PreviewSchedule(context.Background(), service.SchedulePreviewRequest{
		Rule:        rule,
		Start:       startDate,
		Amount:      amount,
		Currency:    currency,
		Occurrences: count,
	})
	if err != nil {
		if hint := ierr.Hint(err); hint != "" {
			return fmt.Errorf("%s", hint)
		}
		return err
	}

	fmt.Printf("rule: %s\n", preview.Rule)
	for _, charge := range preview.Charges {
		fmt.Printf("%s  %s  (total %s)\n",
			charge.Date.Format("2006-01-02"),
			charge.Amount.Display(),
			charge.RunningTotal.Display(),
		)
	}
	fmt.Printf("total: %s %s\n", preview.Total.String(), preview.Currency)
	return nil
}
