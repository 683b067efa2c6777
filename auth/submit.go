package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidForm is returned when submitting a form that fails validation.
var ErrInvalidForm = errors.New("form contains errors")

// Result is the outcome of a submission.
type Result struct {
	OK bool
	// RequestID identifies the submission in the log.
	RequestID string
}

// Message is the notice shown after a submission.
func (r Result) Message(m Mode) string {
	if !r.OK {
		return "Failed."
	}
	if m == Login {
		return "Logged in."
	}
	return "Registered."
}

// Submitter sends the form somewhere.
type Submitter interface {
	Submit(ctx context.Context, s State) (Result, error)
}

// StubSubmitter pretends to talk to a server. It waits Delay and reports
// success unless Fail is set.
type StubSubmitter struct {
	Delay time.Duration
	Fail  bool
}

// Submit validates the form and resolves after the configured delay.
func (st StubSubmitter) Submit(ctx context.Context, s State) (Result, error) {
	if !Validate(s).Valid() {
		return Result{}, ErrInvalidForm
	}
	id := uuid.NewString()
	logger := log.With().Str("module", "auth").Str("mode", s.Mode.String()).Str("request", id).Logger()
	logger.Info().Str("username", s.Username).Msg("submitting")

	timer := time.NewTimer(st.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logger.Warn().Err(ctx.Err()).Msg("submission cancelled")
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	res := Result{OK: !st.Fail, RequestID: id}
	logger.Info().Bool("ok", res.OK).Msg("submission finished")
	return res, nil
}
