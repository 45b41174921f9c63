package errors

import (
	stdlib "errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestRootCause(t *testing.T) {
	std := stdlib.New("stdlib failure")

	cases := map[string]struct {
		err  error
		root error
	}{
		"registered error is its own root": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"wrapped registered error": {
			err:  Wrap(Wrap(ErrState, "inner"), "outer"),
			root: ErrState,
		},
		"wrapped stdlib error": {
			err:  Wrap(std, "context"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatalf("want %v root, got %v", tc.root, got)
			}
		})
	}
}

func TestIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"same instance": {
			kind:   ErrUnauthorized,
			err:    ErrUnauthorized,
			wantIs: true,
		},
		"different kinds": {
			kind:   ErrUnauthorized,
			err:    ErrNotFound,
			wantIs: false,
		},
		"wrapped twice": {
			kind:   ErrAmount,
			err:    Wrapf(ErrAmount.New("zero"), "offer %d", 1),
			wantIs: true,
		},
		"pkg errors wrap": {
			kind:   ErrInput,
			err:    errors.Wrap(ErrInput, "bad"),
			wantIs: true,
		},
		"stdlib error": {
			kind:   ErrInput,
			err:    io.EOF,
			wantIs: false,
		},
		"member of a collection": {
			kind:   ErrDuplicate,
			err:    Append(ErrState, Wrap(ErrDuplicate, "address in use")),
			wantIs: true,
		},
		"nil kind matches nil error": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"nil kind does not match an error": {
			kind:   nil,
			err:    ErrEmpty,
			wantIs: false,
		},
		"nil kind matches typed nil": {
			kind:   nil,
			err:    (*Error)(nil),
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestRegisterPanicsOnReusedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Register(ErrNotFound.code, "again")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestWrappedMessage(t *testing.T) {
	err := Wrap(ErrNotFound.New("offer"), "cancel")
	if want, got := "cancel: offer: not found", err.Error(); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
	full := fmt.Sprintf("%+v", err)
	if !strings.Contains(full, "errors_test.go") {
		t.Fatalf("stack trace not printed: %s", full)
	}
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := run()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("panic value lost: %s", err)
	}
}
