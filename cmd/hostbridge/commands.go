package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/api"
	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/host"
)

const helpText = `  set <name> <yaml>   assign a global, prints the previous value
  get <name>          print a global
  pop <name>          print and remove a global
  del <name>          remove a global
  lock | unlock       toggle the globals lock
  cycle <name>        store a list that contains itself
  vars                print all globals as YAML
  interrupt           raise a keyboard interrupt in host code
  throw <text>        throw a host exception
  emsg <text>         emit a host error message
  heap                live host containers by kind
  help                this text
`

// session runs commands against one interpreter.
type session struct {
	interp *host.Interp
	bridge *bridge.Bridge
	log    *zap.Logger
}

func newSession(log *zap.Logger) *session {
	in := host.New()
	opts := bridge.DefaultOptions()
	opts.Logger = log.Named("bridge")
	return &session{
		interp: in,
		bridge: bridge.New(in, opts),
		log:    log,
	}
}

// Exec runs one command line inside a protected window. A command may
// produce output and an error together.
func (s *session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var out string
	err := s.bridge.Protect(func() error {
		var err error
		out, err = s.dispatch(name, rest)
		return err
	})
	// an exception nothing caught ends with the command, as at the host's
	// top level
	if s.interp.Throwing() {
		s.interp.DiscardException()
	}
	if err != nil {
		s.log.Debug("command failed", zap.String("command", name), zap.Error(err))
	}
	return out, err
}

func (s *session) dispatch(name, rest string) (string, error) {
	switch name {
	case "set":
		key, text, _ := strings.Cut(rest, " ")
		v, err := api.ParseYAML([]byte(text))
		if err != nil {
			return "", err
		}
		prev, err := s.bridge.SetVar(key, v)
		if err != nil {
			return "", err
		}
		return prev.String(), nil

	case "get":
		v, err := s.bridge.GetVar(rest)
		if err != nil {
			return "", err
		}
		return v.String(), nil

	case "pop":
		v, err := s.bridge.DelVar(rest)
		if err != nil && !stderrors.Is(err, &errors.Error{Kind: errors.KindDictionaryLocked}) {
			return "", err
		}
		return v.String(), err

	case "del":
		return "", s.bridge.DictDel(s.interp.Globals(), rest)

	case "lock":
		s.interp.Globals().SetLock(host.LockLocked)
		return "", nil

	case "unlock":
		s.interp.Globals().SetLock(host.LockUnlocked)
		return "", nil

	case "cycle":
		return "", s.storeCycle(rest)

	case "vars":
		globals := host.Value{Kind: host.KindDict, Dict: s.interp.Globals()}
		data, err := api.MarshalYAML(s.bridge.ToNeutral(&globals))
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil

	case "interrupt":
		s.interp.Interrupt()
		return "", nil

	case "throw":
		s.interp.Throw(rest)
		return "", nil

	case "emsg":
		s.interp.Emsg(rest)
		return "", nil

	case "heap":
		return s.heapSummary(), nil

	case "help":
		return strings.TrimRight(helpText, "\n"), nil

	default:
		return "", fmt.Errorf("unknown command %q", name)
	}
}

// heapSummary reports live host containers by kind.
func (s *session) heapSummary() string {
	var lists, dicts int
	s.interp.Heap().Each(func(_ host.Handle, k host.Kind) bool {
		switch k {
		case host.KindList:
			lists++
		case host.KindDict:
			dicts++
		}
		return true
	})
	return fmt.Sprintf("%d live (%d lists, %d dicts)", lists+dicts, lists, dicts)
}

// storeCycle binds name to a list whose only element is the list itself.
func (s *session) storeCycle(name string) error {
	globals := s.interp.Globals()
	if globals.Locked() {
		return errors.DictionaryLocked(errors.PhaseDict)
	}
	if name == "" {
		return errors.EmptyKey(errors.PhaseDict, nil)
	}

	l := s.interp.Heap().NewList()
	v := host.ListValue(l)
	l.Append(host.Copy(&v))

	item := globals.Find(name)
	if item == nil {
		item = host.NewDictItem(name)
		globals.Add(item)
	} else {
		host.Clear(&item.Value)
	}
	item.Value = v
	return nil
}

// runScript executes r line by line, writing results to w. Failed commands
// are reported and skipped. It returns the number of failed commands.
func runScript(s *session, r io.Reader, w io.Writer) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out, err := s.Exec(scanner.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if err != nil {
			failed++
			fmt.Fprintf(w, "error: %s\n", errorText(err))
		}
	}
	return failed, scanner.Err()
}

// errorText returns the message API callers would see.
func errorText(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
