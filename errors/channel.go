package errors

import (
	"unicode/utf8"
)

// MaxMessageLen is the number of message bytes a Channel retains.
const MaxMessageLen = 1024

// Channel carries at most one error for a logical operation.
// The zero value is an empty channel ready for use.
type Channel struct {
	err *Error
	msg string
	set bool
}

// Raise records err unless the channel already holds one.
// Reports whether err was recorded. A nil err is never recorded.
func (c *Channel) Raise(err error) bool {
	if c.set || err == nil {
		return false
	}

	e, ok := err.(*Error)
	if !ok {
		e = Wrap(PhaseHost, KindHostException, err, err.Error())
	}

	c.err = e
	c.msg = truncate(e.Message(), MaxMessageLen)
	c.set = true
	return true
}

// IsSet reports whether an error has been raised.
func (c *Channel) IsSet() bool {
	return c.set
}

// Message returns the raised message, or "" when unset.
func (c *Channel) Message() string {
	return c.msg
}

// Err returns the raised error, or nil when unset.
func (c *Channel) Err() error {
	if !c.set {
		return nil
	}
	return c.err
}

// Reset empties the channel for reuse.
func (c *Channel) Reset() {
	c.err = nil
	c.msg = ""
	c.set = false
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
