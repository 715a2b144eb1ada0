// Package workflow implements the mutation pattern every console action
// follows: mark the item in flight, send one request, clear the marker,
// then re-fetch on success or report the failure with nothing changed.
package workflow

import (
	"context"
	"errors"
	"sync"
)

var ErrInFlight = errors.New("a request for this item is already in progress")

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is the transient notification shown after an action settles.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Tracker holds the in-flight markers. Keys are per item (a campaign, an
// application row), so different items proceed concurrently while a
// duplicate submission for the same item is refused.
type Tracker struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{inFlight: make(map[string]struct{})}
}

// Begin marks key in flight. The returned release must be called once the
// request settles; ok is false if key was already in flight.
func (t *Tracker) Begin(key string) (release func(), ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inFlight[key]; busy {
		return func() {}, false
	}
	t.inFlight[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.inFlight, key)
			t.mu.Unlock()
		})
	}, true
}

func (t *Tracker) InFlight(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.inFlight[key]
	return busy
}

// Step describes one mutating action.
type Step struct {
	Key     string
	Success string
	Failure string
	Mutate  func(ctx context.Context) error
	// Refetch reloads the affected resource after a successful mutation.
	// Optional.
	Refetch func(ctx context.Context) error
}

// Result reports how a step settled.
type Result struct {
	Notice Notice
	// Err is the mutation error; nil when the mutation succeeded.
	Err error
	// RefetchErr is set when the mutation succeeded but reloading failed.
	RefetchErr error
}

type Runner struct {
	tracker *Tracker
	message func(err error, fallback string) string
}

// NewRunner builds a runner. message turns a failure into the text shown
// to the user; nil means the fallback text is always used.
func NewRunner(tracker *Tracker, message func(err error, fallback string) string) *Runner {
	if message == nil {
		message = func(_ error, fallback string) string { return fallback }
	}
	return &Runner{tracker: tracker, message: message}
}

// Run executes the step. It returns ErrInFlight without calling Mutate when
// the step's key is already being processed. No retries are attempted.
func (r *Runner) Run(ctx context.Context, step Step) (Result, error) {
	release, ok := r.tracker.Begin(step.Key)
	if !ok {
		return Result{}, ErrInFlight
	}
	err := mutate(ctx, step.Mutate, release)
	if err != nil {
		return Result{
			Notice: Notice{Level: LevelError, Message: r.message(err, step.Failure)},
			Err:    err,
		}, nil
	}

	res := Result{Notice: Notice{Level: LevelSuccess, Message: step.Success}}
	if step.Refetch != nil {
		res.RefetchErr = step.Refetch(ctx)
	}
	return res, nil
}

// mutate runs fn with the marker held. The marker is cleared before
// returning, also when fn panics.
func mutate(ctx context.Context, fn func(context.Context) error, release func()) error {
	defer release()
	return fn(ctx)
}
