package barter

import (
	"github.com/iov-one/barter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is what a successful CheckTx reports.
type CheckResult struct {
	// Data is handed back to the client as is, e.g. a new address.
	Data []byte
	Log  string
	// GasAllocated bounds the work delivering the transaction may do.
	GasAllocated int64
}

// NewCheck is the common CheckResult: a gas budget and a log line.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

// DeliverResult is what a successful DeliverTx reports. Tags are indexed
// by tendermint, clients search transactions by them.
type DeliverResult struct {
	Data    []byte
	Log     string
	Tags    []common.KVPair
	GasUsed int64
}

// CheckOrError builds the CheckTx response from a handler outcome. Unless
// debug is set, errors without a registered code are redacted.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := failure("check", err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	if res == nil {
		return abci.ResponseCheckTx{}
	}
	return abci.ResponseCheckTx{Data: res.Data, Log: res.Log, GasWanted: res.GasAllocated}
}

// DeliverOrError builds the DeliverTx response from a handler outcome.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := failure("deliver", err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	if res == nil {
		return abci.ResponseDeliverTx{}
	}
	return abci.ResponseDeliverTx{Data: res.Data, Log: res.Log, Tags: res.Tags, GasUsed: res.GasUsed}
}

func failure(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}

// ParseCheckOrError turns a CheckTx response back into a result, or into
// the registered error its code stands for.
func ParseCheckOrError(res abci.ResponseCheckTx) (*CheckResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return &CheckResult{Data: res.Data, Log: res.Log, GasAllocated: res.GasWanted}, nil
}

// ParseDeliverOrError is ParseCheckOrError for DeliverTx responses.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return &DeliverResult{Data: res.Data, Log: res.Log, Tags: res.Tags, GasUsed: res.GasUsed}, nil
}
