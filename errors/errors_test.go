package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseFromNeutral,
				Kind:   KindEmptyKey,
				Path:   []string{"opts", "[2]", "name"},
				Detail: MsgEmptyKey,
			},
			contains: []string{"[from_neutral]", "empty_key", "opts[2].name", MsgEmptyKey},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDict,
				Kind:  KindKeyNotFound,
			},
			contains: []string{"[dict]", "key_not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindHostException,
				Detail: "E605",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[host]", "host_exception", "E605", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	if got := KeyNotFound("x").Message(); got != "Key not found" {
		t.Errorf("Message() = %q", got)
	}
	if got := DictionaryLocked(PhaseDict).Message(); got != "Dictionary is locked" {
		t.Errorf("Message() = %q", got)
	}
	if got := EmptyKey(PhaseDict, nil).Message(); got != "Empty dictionary keys aren't allowed" {
		t.Errorf("Message() = %q", got)
	}
	if got := Interrupted().Message(); got != "Keyboard interrupt" {
		t.Errorf("Message() = %q", got)
	}

	cause := errors.New("root")
	if got := (&Error{Phase: PhaseHost, Kind: KindHostException, Cause: cause}).Message(); got != "root" {
		t.Errorf("Message() with cause only = %q, want root", got)
	}
	if got := (&Error{Phase: PhaseHost, Kind: KindTooDeep}).Message(); got != "too_deep" {
		t.Errorf("Message() bare = %q, want too_deep", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseHost, KindHostException, cause, "wrapped")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := EmptyKey(PhaseFromNeutral, []string{"a"})

	if !err.Is(&Error{Phase: PhaseFromNeutral, Kind: KindEmptyKey}) {
		t.Error("Is should match same phase and kind")
	}
	if !err.Is(&Error{Kind: KindEmptyKey}) {
		t.Error("Is should match any phase when target phase is empty")
	}
	if err.Is(&Error{Phase: PhaseDict, Kind: KindEmptyKey}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseFromNeutral, Kind: KindKeyNotFound}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, &Error{Kind: KindEmptyKey}) {
		t.Error("errors.Is should match")
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"[0]"}, "[0]"},
		{[]string{"a", "b"}, "a.b"},
		{[]string{"a", "[3]", "b"}, "a[3].b"},
		{[]string{"[1]", "[2]"}, "[1][2]"},
	}
	for _, tt := range tests {
		if got := JoinPath(tt.path); got != tt.want {
			t.Errorf("JoinPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPathSegments(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{[]string{KeySegment("opts"), IndexSegment(2), KeySegment("name")}, "opts[2].name"},
		{[]string{KeySegment("[2]")}, `["[2]"]`},
		{[]string{KeySegment("a"), KeySegment("[2]")}, `a["[2]"]`},
		{[]string{IndexSegment(0), KeySegment("a.b")}, `[0]["a.b"]`},
		{[]string{KeySegment("")}, `[""]`},
	}
	for _, tt := range tests {
		if got := JoinPath(tt.path); got != tt.want {
			t.Errorf("JoinPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if JoinPath([]string{KeySegment("[2]")}) == JoinPath([]string{IndexSegment(2)}) {
		t.Error("a key spelled like an index must not render as one")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseFromNeutral, KindEmptyKey).
		Path("user", "name").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseFromNeutral {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseFromNeutral)
	}
	if err.Kind != KindEmptyKey {
		t.Errorf("Kind = %v, want %v", err.Kind, KindEmptyKey)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("KeyNotFound", func(t *testing.T) {
		err := KeyNotFound("missing")
		if err.Kind != KindKeyNotFound || err.Phase != PhaseDict {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Value != "missing" {
			t.Errorf("Value = %v, want missing", err.Value)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		err := EmptyKey(PhaseFromNeutral, []string{"a", "[1]"})
		if err.Kind != KindEmptyKey || err.Phase != PhaseFromNeutral {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if JoinPath(err.Path) != "a[1]" || err.Detail != MsgEmptyKey {
			t.Errorf("path = %q, detail = %q", JoinPath(err.Path), err.Detail)
		}
	})

	t.Run("TooDeep", func(t *testing.T) {
		err := TooDeep(PhaseFromNeutral, nil, 64)
		if err.Value != 64 {
			t.Errorf("Value = %v, want 64", err.Value)
		}
		if err.Kind != KindTooDeep {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Detail, "64") {
			t.Errorf("Detail = %q, should contain limit", err.Detail)
		}
	})

	t.Run("HostException", func(t *testing.T) {
		err := HostException("E605: Exception not caught: boom")
		if err.Kind != KindHostException || err.Message() != "E605: Exception not caught: boom" {
			t.Errorf("got %v %q", err.Kind, err.Message())
		}
	})

	t.Run("HostDiagnostic", func(t *testing.T) {
		err := HostDiagnostic("E121: Undefined variable: x")
		if err.Kind != KindHostDiagnostic {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseDict, "nil dictionary")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v", err.Kind)
		}
	})
}
