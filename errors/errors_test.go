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
				Phase:  PhaseCreate,
				Kind:   KindCapacityExhausted,
				Detail: "pool full",
			},
			contains: []string{"[create]", "capacity_exhausted", "pool full"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAccess,
				Kind:  KindInvalidHandle,
			},
			contains: []string{"[access]", "invalid_handle"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRegistry,
				Kind:   KindNotFound,
				Detail: "no pool",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[registry]", "not_found", "no pool", "caused by", "underlying error"},
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

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRelease,
		Kind:  KindRefCountUnderflow,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseCreate,
		Kind:   KindCapacityExhausted,
		Detail: "pool full",
	}

	same := &Error{Phase: PhaseCreate, Kind: KindCapacityExhausted}
	if !errors.Is(err, same) {
		t.Error("expected match on same phase and kind")
	}

	otherKind := &Error{Phase: PhaseCreate, Kind: KindInvalidHandle}
	if errors.Is(err, otherKind) {
		t.Error("unexpected match on different kind")
	}

	if errors.Is(err, errors.New("plain")) {
		t.Error("unexpected match on non-Error target")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseRegistry, KindNotFound).
		Detail("no pool registered for %s", "Mesh").
		Value("Mesh").
		Cause(cause).
		Build()

	if err.Phase != PhaseRegistry || err.Kind != KindNotFound {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "no pool registered for Mesh" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Value != "Mesh" {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if !errors.Is(err, &Error{Phase: PhaseRegistry, Kind: KindNotFound}) {
		t.Error("built error does not match its phase/kind")
	}
	if err.Unwrap() != cause {
		t.Error("built error lost its cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if msg := CapacityExhausted(2, 2).Error(); !strings.Contains(msg, "2 of 2") {
		t.Errorf("CapacityExhausted message missing counts: %q", msg)
	}
	if msg := RefCountUnderflow("h").Error(); !strings.Contains(msg, "already zero") {
		t.Errorf("RefCountUnderflow message: %q", msg)
	}
	if msg := InvalidHandle(PhaseAccess, "h").Error(); !strings.Contains(msg, "live slot") {
		t.Errorf("InvalidHandle message: %q", msg)
	}
	if msg := NotFound(PhaseRegistry, "pool for type Mesh").Error(); !strings.Contains(msg, "not found") {
		t.Errorf("NotFound message: %q", msg)
	}
}
