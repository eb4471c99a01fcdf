package outcomes

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/parv0888/concordium-base/pkg/types"
)

// Pair associates a transaction's content hash with its execution result.
type Pair[Result any] struct {
	Hash   types.TransactionHash
	Result Result
}

// TransactionOutcomes is the per-block record of execution results: the
// results of the block's transactions in execution order, an index from
// content hash to position, and the ordered protocol-level outcomes that do
// not originate from a user transaction.
//
// The record is built once per executed block and is immutable afterwards
// except for point updates through SetAt during construction.
type TransactionOutcomes[Result any] struct {
	index   *shrinkingmap.ShrinkingMap[types.TransactionHash, int]
	values  []Result
	special []SpecialTransactionOutcome
}

// New creates an empty TransactionOutcomes record.
func New[Result any]() *TransactionOutcomes[Result] {
	return &TransactionOutcomes[Result]{
		index: shrinkingmap.New[types.TransactionHash, int](),
	}
}

// FromList builds the record from (hash, result) pairs in execution order.
// A duplicate hash overwrites the index entry while both results remain in
// the value sequence, so the index points at the last-written position;
// callers must not supply duplicate hashes for distinct logical transactions.
func FromList[Result any](pairs []Pair[Result]) *TransactionOutcomes[Result] {
	o := New[Result]()
	o.values = make([]Result, len(pairs))

	for position, pair := range pairs {
		o.values[position] = pair.Result
		o.index.Set(pair.Hash, position)
	}

	return o
}

// At returns the execution result recorded for a transaction.
func (o *TransactionOutcomes[Result]) At(hash types.TransactionHash) (result Result, exists bool) {
	position, exists := o.index.Get(hash)
	if !exists {
		return result, false
	}

	return o.values[position], true
}

// ByIndex returns the execution result at a position.
func (o *TransactionOutcomes[Result]) ByIndex(position int) (result Result, exists bool) {
	if position < 0 || position >= len(o.values) {
		return result, false
	}

	return o.values[position], true
}

// SetAt replaces the result recorded for a transaction in place, preserving
// its position. Unknown hashes are a no-op.
func (o *TransactionOutcomes[Result]) SetAt(hash types.TransactionHash, result Result) bool {
	position, exists := o.index.Get(hash)
	if !exists {
		return false
	}

	o.values[position] = result

	return true
}

// Len returns the number of recorded execution results.
func (o *TransactionOutcomes[Result]) Len() int {
	return len(o.values)
}

// AppendSpecial appends a protocol-level outcome. The sequence order is the
// reporting and audit order and is preserved.
func (o *TransactionOutcomes[Result]) AppendSpecial(outcome SpecialTransactionOutcome) {
	o.special = append(o.special, outcome)
}

// Specials returns the protocol-level outcomes in append order.
func (o *TransactionOutcomes[Result]) Specials() []SpecialTransactionOutcome {
	return o.special
}
