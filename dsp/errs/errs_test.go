package errs

import (
	"errors"
	"testing"
)

func TestErrorIsKind(t *testing.T) {
	err := New(InvalidArgument, "modwt.Forward", "signal must not be empty")
	if !errors.Is(err, KindInvalidArgument) {
		t.Fatalf("expected errors.Is to match KindInvalidArgument")
	}
	if errors.Is(err, KindInvalidSignal) {
		t.Fatalf("did not expect errors.Is to match KindInvalidSignal")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ResourceExhausted, "streaming.Write", "buffer full", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find wrapped cause")
	}
	kind, ok := Of(err)
	if !ok || kind != ResourceExhausted {
		t.Fatalf("Of() = %v, %v; want ResourceExhausted, true", kind, ok)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		InvalidArgument:      "InvalidArgument",
		InvalidSignal:        "InvalidSignal",
		InvalidConfiguration: "InvalidConfiguration",
		InvalidState:         "InvalidState",
		ResourceExhausted:    "ResourceExhausted",
		NumericInstability:   "NumericInstability",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
