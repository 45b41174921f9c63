package errors

import (
	"fmt"
)

const (
	// SuccessABCICode is the code of a response that carries no error.
	SuccessABCICode = 0

	// Errors without a registered code share this code, and their text is
	// hidden outside debug mode.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo turns err into the code and log of an ABCI response. Only
// errors built on a registered error keep their message; the rest read
// "internal error" unless debug is set. Debug logs carry the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

// ABCIError rebuilds an error from a response code and log. Registered
// codes map back to their error, so Is keeps working on the client.
func ABCIError(code uint32, log string) error {
	base := getUsed(code)
	if base == nil {
		base = &Error{code: code, desc: "unknown"}
	}
	return Wrap(base, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode walks the cause chain down to the first error with a code.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
