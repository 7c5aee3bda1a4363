// Package session implements the per-page workflows of the client: one
// instance per page visit, constructed fresh on navigation and discarded on
// navigation away. The state machines enforce the at-most-one-in-flight
// rule for remote calls, and a generation counter dropped-result check
// keeps late responses from touching a page the user already left.
package session

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// ErrInFlight is returned when an action is triggered while its remote call
// is already in flight.
var ErrInFlight = errors.New("operation already in flight")

// ErrDiscarded is returned when a result arrives after the owning page was
// navigated away from; the result is dropped without touching state.
var ErrDiscarded = errors.New("session discarded")

// send delivers one event to the interpreter and reports whether a
// transition happened. statekit leaves the state unchanged when no
// transition matches or a guard rejects the event.
func send[C any](interp *statekit.Interpreter[C], event string) error {
	before := interp.State().Value
	interp.Send(statekit.Event{Type: statekit.EventType(event)})
	if interp.State().Value == before {
		return fmt.Errorf("event %q not allowed in state %q", event, before)
	}
	return nil
}
