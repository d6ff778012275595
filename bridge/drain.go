package bridge

import (
	hostbridge "github.com/wippyai/host-bridge"
	"github.com/wippyai/host-bridge/errors"
)

// TryStart opens a protected window. Errors host code raises until the
// matching TryEnd are queued instead of displayed.
func TryStart(sig hostbridge.Signals) {
	sig.EnterTry()
}

// TryEnd closes the window opened by TryStart and collapses the host's error
// state into ch. At most one error is captured, checked in this order:
//
//  1. a pending interrupt, which also discards any exception in flight
//  2. the first queued message; the whole queue is released
//  3. an uncaught exception, which stays in flight
//
// An error already set on ch is never overwritten. TryEnd reports whether
// ch holds an error afterwards.
func TryEnd(sig hostbridge.Signals, ch *errors.Channel) bool {
	sig.LeaveTry()
	sig.ClearErrorDisplayed()

	switch {
	case sig.Interrupted():
		if sig.Throwing() {
			sig.DiscardException()
		}
		ch.Raise(errors.Interrupted())
		sig.ClearInterrupt()

	case sig.PendingMessages():
		text, owned := sig.RenderMessages()
		ch.Raise(errors.HostDiagnostic(text))
		sig.FreeMessages()
		if owned {
			sig.FreeRendered(text)
		}

	case sig.Throwing():
		ch.Raise(errors.HostException(sig.ExceptionText()))
	}

	return ch.IsSet()
}
