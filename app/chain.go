package app

import (
	"reflect"

	"github.com/iov-one/barter"
)

// Decorators is an ordered stack of decorators waiting for the handler
// they wrap. The first decorator added sees the transaction first.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//   ).WithHandler(router)
type Decorators struct {
	stack []barter.Decorator
}

// ChainDecorators starts a stack. Nil decorators are skipped.
func ChainDecorators(ds ...barter.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a copy of the stack with ds appended.
func (d Decorators) Chain(ds ...barter.Decorator) Decorators {
	stack := append([]barter.Decorator(nil), d.stack...)
	for _, dec := range ds {
		if !missing(dec) {
			stack = append(stack, dec)
		}
	}
	return Decorators{stack: stack}
}

// missing also catches typed nil pointers stored in the interface.
func missing(dec barter.Decorator) bool {
	if dec == nil {
		return true
	}
	v := reflect.ValueOf(dec)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack over h.
func (d Decorators) WithHandler(h barter.Handler) barter.Handler {
	for i := len(d.stack) - 1; i >= 0; i-- {
		h = wrapped{dec: d.stack[i], next: h}
	}
	return h
}

// wrapped runs one decorator in front of the rest of the stack.
type wrapped struct {
	dec  barter.Decorator
	next barter.Handler
}

var _ barter.Handler = wrapped{}

func (w wrapped) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return w.dec.Check(ctx, db, tx, w.next)
}

func (w wrapped) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	return w.dec.Deliver(ctx, db, tx, w.next)
}
