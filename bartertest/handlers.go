package bartertest

import "github.com/iov-one/barter"

// Handler is a mock implementation of the barter.Handler interface.
// Every call is counted and the configured result is returned.
type Handler struct {
	checkCall   int
	CheckResult barter.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult barter.DeliverResult
	DeliverErr    error
}

var _ barter.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes Key/Value to the store on every call and returns Err
// afterwards, so rollback of partial writes can be tested.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ barter.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	db.Set(h.Key, h.Value)
	if h.Err != nil {
		return nil, h.Err
	}
	return &barter.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	db.Set(h.Key, h.Value)
	if h.Err != nil {
		return nil, h.Err
	}
	return &barter.DeliverResult{}, nil
}

// PanicHandler panics with Reason on every call.
type PanicHandler struct {
	Reason interface{}
}

var _ barter.Handler = PanicHandler{}

func (h PanicHandler) Check(barter.Context, barter.KVStore, barter.Tx) (*barter.CheckResult, error) {
	panic(h.Reason)
}

func (h PanicHandler) Deliver(barter.Context, barter.KVStore, barter.Tx) (*barter.DeliverResult, error) {
	panic(h.Reason)
}
