package errors

import (
	"io"
	"strings"
	"testing"
)

type customErr struct{}

func (customErr) ABCICode() uint32 { return 999 }

func (customErr) Error() string { return "custom" }

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "seller"), "item"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "item: seller: unauthorized",
		},
		"nil": {
			err:      nil,
			wantCode: 0,
			wantLog:  "",
		},
		"typed nil": {
			err:      (*Error)(nil),
			wantCode: 0,
			wantLog:  "",
		},
		"stdlib is redacted": {
			err:      io.EOF,
			wantCode: 1,
			wantLog:  "internal error",
		},
		"stdlib in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantCode: 1,
			wantLog:  "EOF",
		},
		"wrapped stdlib is redacted": {
			err:      Wrap(io.EOF, "read"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"custom coder": {
			err:      customErr{},
			wantCode: 999,
			wantLog:  "custom",
		},
		"collection uses first code": {
			err:      Append(nil, ErrAmount, ErrEmpty),
			wantCode: ErrAmount.code,
			wantLog:  "2 errors occurred:\n\t* invalid amount\n\t* value is empty",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIErrorRoundTrip(t *testing.T) {
	code, log := ABCIInfo(Wrap(ErrDuplicate, "address in use"), false)
	err := ABCIError(code, log)
	if !ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %v", err)
	}

	unknown := ABCIError(424242, "what")
	if code, _ := ABCIInfo(unknown, false); code != 424242 {
		t.Fatalf("unknown code not preserved: %d", code)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Append(nil, ErrEmpty); err != ErrEmpty {
		t.Fatalf("single error must be returned as is, got %v", err)
	}
	err := Append(Append(ErrState, ErrType), ErrInput)
	if n := len(err.(unpacker).Unpack()); n != 3 {
		t.Fatalf("want 3 flattened errors, got %d", n)
	}
}
