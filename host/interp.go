package host

import (
	"go.uber.org/zap"

	hostbridge "github.com/wippyai/host-bridge"
)

var _ hostbridge.Signals = (*Interp)(nil)

// Message is one queued diagnostic.
type Message struct {
	Text    string
	Command string // command that raised it, if any
}

// Interp is the process-wide state of the host interpreter: its heap, the
// global variable dictionary and the global error flags.
//
// All flags start cleared and the try level starts at zero. Host code raises
// errors through Interrupt, Throw and Emsg. The try level is only moved by the
// exception drain through EnterTry and LeaveTry, which is also the only caller
// that clears the flags.
type Interp struct {
	heap      *Heap
	globals   *Dict
	exception *string
	msgList   []Message
	displayed []string
	tryLevel  int
	rendered  int
	gotInt    bool
	didThrow  bool
	didEmsg   bool
}

// New creates an interpreter with an empty heap and globals dictionary.
func New() *Interp {
	heap := NewHeap()
	globals := heap.NewDict()
	globals.Ref()
	return &Interp{
		heap:    heap,
		globals: globals,
	}
}

// Heap returns the interpreter's container heap.
func (in *Interp) Heap() *Heap {
	return in.heap
}

// Globals returns the global variable dictionary.
func (in *Interp) Globals() *Dict {
	return in.globals
}

// TryLevel returns the current protected-execution depth.
func (in *Interp) TryLevel() int {
	return in.tryLevel
}

// Interrupt marks a pending user interrupt.
func (in *Interp) Interrupt() {
	in.gotInt = true
}

// Throw raises an exception carrying value. A pending exception is replaced.
func (in *Interp) Throw(value string) {
	in.didThrow = true
	in.exception = &value
}

// Emsg reports an error message. Inside protected execution the message is
// queued for the drain; otherwise it is displayed.
func (in *Interp) Emsg(text string) {
	in.EmsgIn("", text)
}

// EmsgIn is Emsg with the name of the command that raised the message.
func (in *Interp) EmsgIn(command, text string) {
	in.didEmsg = true
	if in.tryLevel > 0 {
		in.msgList = append(in.msgList, Message{Text: text, Command: command})
		return
	}
	in.displayed = append(in.displayed, text)
	Logger().Warn("host error", zap.String("command", command), zap.String("message", text))
}

// Displayed returns messages shown outside protected execution.
func (in *Interp) Displayed() []string {
	return in.displayed
}

// ErrorDisplayed reports the sticky flag set by Emsg.
func (in *Interp) ErrorDisplayed() bool {
	return in.didEmsg
}

// OutstandingRendered returns the number of rendered message buffers that
// have not been freed.
func (in *Interp) OutstandingRendered() int {
	return in.rendered
}

func (in *Interp) Interrupted() bool {
	return in.gotInt
}

func (in *Interp) ClearInterrupt() {
	in.gotInt = false
}

func (in *Interp) Throwing() bool {
	return in.didThrow
}

func (in *Interp) ExceptionText() string {
	if in.exception == nil {
		return ""
	}
	return *in.exception
}

func (in *Interp) DiscardException() {
	in.didThrow = false
	in.exception = nil
}

func (in *Interp) PendingMessages() bool {
	return len(in.msgList) > 0
}

// RenderMessages renders the first queued message. Messages raised by a
// named command are prefixed with it and the result is heap-owned.
func (in *Interp) RenderMessages() (string, bool) {
	if len(in.msgList) == 0 {
		return "", false
	}
	m := in.msgList[0]
	if m.Command == "" {
		return m.Text, false
	}
	in.rendered++
	return m.Command + ": " + m.Text, true
}

func (in *Interp) FreeRendered(string) {
	if in.rendered > 0 {
		in.rendered--
	}
}

func (in *Interp) FreeMessages() {
	in.msgList = nil
}

func (in *Interp) ClearErrorDisplayed() {
	in.didEmsg = false
}

func (in *Interp) EnterTry() {
	in.tryLevel++
}

func (in *Interp) LeaveTry() {
	in.tryLevel--
}
