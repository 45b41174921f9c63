package errors

import (
	"fmt"
	"strings"
)

// Append joins errors into a collection. Nil values are dropped. When at most
// one non nil error is given, it is returned as it is.
//
// The ABCI code of the collection is the code of the first error, so a
// validation that reports several problems still classifies correctly.
func Append(errs ...error) error {
	var all multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			all = append(all, m...)
			continue
		}
		all = append(all, e)
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type multiErr []error

var (
	_ coder    = multiErr(nil)
	_ unpacker = multiErr(nil)
)

func (m multiErr) Error() string {
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m), strings.Join(points, "\n\t"))
}

func (m multiErr) ABCICode() uint32 {
	if len(m) == 0 {
		return SuccessABCICode
	}
	return abciCode(m[0])
}

// Unpack returns the collected errors.
func (m multiErr) Unpack() []error {
	return m
}
