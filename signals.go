package hostbridge

// Signals is the host's global error state as seen by the exception drain.
//
// The drain is the single writer of the try level and the only caller that
// clears the flags; host code only raises them.
type Signals interface {
	// Interrupted reports a pending user interrupt.
	Interrupted() bool
	ClearInterrupt()

	// Throwing reports an exception thrown and not yet caught.
	Throwing() bool
	ExceptionText() string
	DiscardException()

	// PendingMessages reports a non-empty diagnostic message list.
	PendingMessages() bool
	// RenderMessages returns the text of the message list and whether the
	// text was allocated for the caller, who must then pass it to FreeRendered.
	RenderMessages() (text string, owned bool)
	FreeRendered(text string)
	FreeMessages()

	// ClearErrorDisplayed resets the sticky "error already shown" flag.
	ClearErrorDisplayed()

	// EnterTry and LeaveTry move the protected-execution depth.
	EnterTry()
	LeaveTry()
}
