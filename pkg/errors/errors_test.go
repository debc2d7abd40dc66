package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFernErrorString(t *testing.T) {
	err := &FernError{
		Op:   "core.Mount",
		Kind: KindRender,
		Err:  errors.New("container is nil"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "core.Mount") {
		t.Errorf("error string %q should contain the operation", got)
	}
	if !strings.Contains(got, "render") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestFernErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &FernError{Op: "op", Kind: KindInit, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRender, "render"},
		{KindHook, "hook"},
		{KindScene, "scene"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHookErrorString(t *testing.T) {
	err := &HookError{Path: ".cApp_0", Slot: 2, Got: "effect", Want: "value"}
	got := err.Error()
	for _, want := range []string{".cApp_0", "effect", "value"} {
		if !strings.Contains(got, want) {
			t.Errorf("error string %q should contain %q", got, want)
		}
	}
}

type captureHandler struct {
	errs   []*FernError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *FernError)  { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&FernError{Op: "op", Kind: KindRender, Err: errors.New("boom")})

	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("expected Report to set the timestamp")
	}
	if time.Since(h.errs[0].Timestamp) > time.Minute {
		t.Error("timestamp should be recent")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(h.panics))
	}
	if h.panics[0].Value != "boom" {
		t.Errorf("expected panic value 'boom', got %v", h.panics[0].Value)
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&captureHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("expected callback to receive 42, got %v", got)
	}
}
