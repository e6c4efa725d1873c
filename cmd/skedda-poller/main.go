// Command skedda-poller drives the trigger surface of the SDK as a
// standalone host: it authenticates, then periodically polls new bookings
// and activity events and emits them as JSON lines for downstream pipes.
//
// The SDK itself never retries; this binary owns the retry policy and
// re-authenticates with exponential backoff when a poll cycle fails.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	skedda "github.com/venuesync/skedda-go"
)

type config struct {
	Domain   string        `envconfig:"DOMAIN" required:"true"`
	Username string        `envconfig:"USERNAME" required:"true"`
	Password string        `envconfig:"PASSWORD" required:"true"`
	Interval time.Duration `envconfig:"INTERVAL" default:"5m"`
	Pretty   bool          `envconfig:"PRETTY" default:"false"`
}

func main() {
	var cfg config
	if err := envconfig.Process("SKEDDA", &cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := skedda.New(cfg.Domain)
	if err := authenticate(ctx, client, cfg); err != nil {
		log.Fatal().Err(err).Msg("authentication failed")
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	log.Info().Str("domain", cfg.Domain).Dur("interval", cfg.Interval).Msg("polling started")
	for {
		pollOnce(ctx, client, cfg)
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		case <-ticker.C:
		}
	}
}

// authenticate establishes a session, retrying transient failures with
// exponential backoff until ctx is cancelled.
func authenticate(ctx context.Context, client *skedda.Client, cfg config) error {
	op := func() error {
		_, err := client.Authenticate(ctx, cfg.Username, cfg.Password)
		if err != nil {
			log.Warn().Err(err).Msg("credential exchange failed, will retry")
		}
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 2 * time.Minute
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

func pollOnce(ctx context.Context, client *skedda.Client, cfg config) {
	cycle := uuid.NewString()
	logger := log.With().Str("cycle", cycle).Logger()

	bookings, err := client.NewBookings(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("booking poll failed, re-authenticating")
		if err := authenticate(ctx, client, cfg); err != nil {
			logger.Error().Err(err).Msg("re-authentication failed")
		}
		return
	}
	emit(logger, "booking", len(bookings), bookings)

	events, err := client.Activity(ctx, nil)
	if err != nil {
		logger.Error().Err(err).Msg("activity poll failed")
		return
	}
	emit(logger, "activity", len(events), events)
}

func emit(logger zerolog.Logger, kind string, count int, payload any) {
	logger.Info().Str("kind", kind).Int("count", count).Msg("poll complete")
	if count == 0 {
		return
	}
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(payload); err != nil {
		logger.Error().Err(err).Str("kind", kind).Msg("encode failed")
	}
}
