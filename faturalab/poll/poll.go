// Package poll tolerates the backend's indexing lag after writes. Uploads and
// deletes are not immediately visible through the history endpoint, so
// callers re-query on a fixed-count, fixed-interval schedule. Determinism of
// the total wait matters more here than backend load, hence no backoff and
// no jitter.
package poll

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "faturalab.poll")

// DeletedMarker is the terminal status text the backend attaches to
// soft-deleted invoices in history responses.
const DeletedMarker = "Silinmiş"

// Policy is the retry schedule. Kept as data so tests can tune attempts and
// intervals without touching the loop.
type Policy struct {
	SettleInterval time.Duration
	RetryInterval  time.Duration
	MaxAttempts    int
}

// DefaultPolicy matches the backend's observed indexing lag: one 5s settle,
// then up to 3 queries 3s apart.
var DefaultPolicy = Policy{
	SettleInterval: 5 * time.Second,
	RetryInterval:  3 * time.Second,
	MaxAttempts:    3,
}

type QueryFunc func(ctx context.Context) (string, error)

type MatchFunc func(body string) bool

// Result reports the outcome of a polling run. LastBody is kept even on
// failure so assertions can show what the backend actually returned.
type Result struct {
	Found    bool
	Attempts int
	LastBody string
}

// AwaitVisibility sleeps one settle interval, then queries up to MaxAttempts
// times until match accepts a response body. Query errors abort immediately:
// a transport failure means the test cannot proceed, unlike a record that
// merely has not shown up yet.
func (p Policy) AwaitVisibility(ctx context.Context, query QueryFunc, match MatchFunc) (Result, error) {
	var res Result

	if err := wait(ctx, p.SettleInterval); err != nil {
		return res, err
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res.Attempts = attempt

		body, err := query(ctx)
		if err != nil {
			return res, errors.Wrapf(err, "visibility query attempt %d", attempt)
		}
		res.LastBody = body

		if match(body) {
			logger.Debugf("matched on attempt %d/%d", attempt, p.MaxAttempts)
			res.Found = true
			return res, nil
		}

		logger.Debugf("no match on attempt %d/%d", attempt, p.MaxAttempts)
		if attempt < p.MaxAttempts {
			if err := wait(ctx, p.RetryInterval); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// Contains matches when the record identifier appears anywhere in the body.
func Contains(id string) MatchFunc {
	return func(body string) bool {
		return strings.Contains(body, id)
	}
}

// Deleted matches when the identifier is gone entirely, or still present
// together with a terminal marker. The backend may either purge or
// soft-delete, and both count as deletion.
func Deleted(id string, markers ...string) MatchFunc {
	if len(markers) == 0 {
		markers = []string{DeletedMarker}
	}
	return func(body string) bool {
		if !strings.Contains(body, id) {
			return true
		}
		for _, m := range markers {
			if strings.Contains(body, m) {
				return true
			}
		}
		return false
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
