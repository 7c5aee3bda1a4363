package session

import (
	"context"
	"strings"
	"sync"

	"github.com/felixgeelhaar/statekit"

	"github.com/critapp/crit/internal/client"
	"github.com/critapp/crit/internal/models"
)

// Submission workflow states.
const (
	StateIdle       = "idle"
	StateSubmitting = "submitting"
	StateSucceeded  = "succeeded"
)

// Draft is the user's editable submission input. A failed submission
// returns to idle with the draft untouched.
type Draft struct {
	Code     string
	Language models.Language
	Filename string
}

type submitContext struct {
	hasCode func() bool
}

// Submission drives a single submit-page visit:
// idle -> submitting -> succeeded, or back to idle on failure.
type Submission struct {
	mu        sync.Mutex
	svc       client.Service
	interp    *statekit.Interpreter[submitContext]
	gen       int
	discarded bool

	Draft    Draft
	reviewID string
	lastErr  error
}

// NewSubmission creates the workflow for one submit-page visit.
func NewSubmission(svc client.Service) (*Submission, error) {
	s := &Submission{svc: svc}

	builder := statekit.NewMachine[submitContext]("submission").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(submitContext{
			hasCode: func() bool { return strings.TrimSpace(s.Draft.Code) != "" },
		}).
		WithGuard("hasCode", func(ctx submitContext, e statekit.Event) bool {
			return ctx.hasCode()
		})

	builder.State(StateIdle).
		On("submit").Target(StateSubmitting).Guard("hasCode").
		Done()

	builder.State(StateSubmitting).
		On("succeed").Target(StateSucceeded).
		On("fail").Target(StateIdle).
		Done()

	// Terminal for this instance; the caller navigates away on success.
	builder.State(StateSucceeded).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, err
	}
	s.interp = statekit.NewInterpreter(machine)
	s.interp.Start()
	return s, nil
}

// State returns the current workflow state.
func (s *Submission) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.interp.State().Value)
}

// ReviewID returns the id assigned by the service after a successful submit.
func (s *Submission) ReviewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewID
}

// Err returns the failure from the most recent attempt, if any.
func (s *Submission) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Discard abandons the page. Any in-flight result is dropped when it
// arrives; the instance accepts no further submissions.
func (s *Submission) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.discarded = true
}

// Submit runs one submission attempt with the current draft. Empty or
// whitespace-only code never leaves the process; a second trigger while a
// call is in flight is refused with ErrInFlight. On success the new
// review's id is returned and the workflow is done.
func (s *Submission) Submit(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.discarded {
		s.mu.Unlock()
		return "", ErrDiscarded
	}
	if s.interp.State().Value == statekit.StateID(StateSubmitting) {
		s.mu.Unlock()
		return "", ErrInFlight
	}
	if err := send(s.interp, "submit"); err != nil {
		// The only guard on submit is non-empty code.
		s.mu.Unlock()
		return "", &client.ValidationError{Reason: "code is empty"}
	}
	draft := s.Draft
	gen := s.gen
	s.mu.Unlock()

	review, err := s.svc.Analyze(ctx, draft.Code, draft.Language, draft.Filename)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return "", ErrDiscarded
	}
	if err != nil {
		s.lastErr = err
		_ = send(s.interp, "fail")
		return "", err
	}
	s.lastErr = nil
	s.reviewID = review.ID
	_ = send(s.interp, "succeed")
	return review.ID, nil
}
