package txpoolv1

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/txpool"
	"github.com/parv0888/concordium-base/pkg/types"
)

// nonceRange is the contiguous range of nonces considered pending for one
// account. high >= low always holds.
type nonceRange struct {
	low  types.Nonce
	high types.Nonce
}

// PendingTransactionTable is the compact pending summary: one entry per
// account with outstanding work, tracking the contiguous nonce range not yet
// executed in the chain under consideration. An account with nothing pending
// is absent from the table; absence, not a zero range, signals "nothing
// pending".
//
// Like the TransactionTable, the structure is not locked by itself; the Pool
// updates it and the transaction table inside one critical section.
type PendingTransactionTable struct {
	ranges *shrinkingmap.ShrinkingMap[types.AccountAddress, nonceRange]
}

// NewPendingTransactionTable creates an empty PendingTransactionTable.
func NewPendingTransactionTable() *PendingTransactionTable {
	return &PendingTransactionTable{
		ranges: shrinkingmap.New[types.AccountAddress, nonceRange](),
	}
}

// Extend records a transaction as pending. nextNonce is the lowest nonce the
// caller vouches is still unexecuted for this admission and must not exceed
// the transaction's nonce; violating that means the caller computed nextNonce
// incorrectly, which aborts loudly. An absent account is seeded with the
// range (nextNonce, nonce); an existing range widens to cover both.
func (p *PendingTransactionTable) Extend(nextNonce types.Nonce, tx model.TransactionSource) {
	if nextNonce > tx.Nonce() {
		panic(ierrors.WithMessagef(txpool.ErrExtendPrecondition, "next nonce %s above transaction nonce %s", nextNonce, tx.Nonce()))
	}

	p.extend(nextNonce, tx)
}

// CheckedExtend is Extend for callers that cannot guarantee the nextNonce
// precondition, e.g. when the transaction arrived after the account's nonce
// already advanced past it. The violating update is silently dropped and the
// return value reports whether the table changed.
func (p *PendingTransactionTable) CheckedExtend(nextNonce types.Nonce, tx model.TransactionSource) bool {
	if nextNonce > tx.Nonce() {
		return false
	}

	p.extend(nextNonce, tx)

	return true
}

func (p *PendingTransactionTable) extend(nextNonce types.Nonce, tx model.TransactionSource) {
	current, exists := p.ranges.Get(tx.Sender())
	if !exists {
		p.ranges.Set(tx.Sender(), nonceRange{low: nextNonce, high: tx.Nonce()})
		return
	}

	if nextNonce < current.low {
		current.low = nextNonce
	}
	if tx.Nonce() > current.high {
		current.high = tx.Nonce()
	}
	p.ranges.Set(tx.Sender(), current)
}

// Forward advances the pending summary over a block that became part of the
// chain under consideration. Transactions are processed in block order, which
// is the only order under which per-account nonce contiguity is guaranteed.
// A transaction that was never recorded as pending, or that arrives out of
// nonce order, is a consensus-layer bug and aborts loudly.
func (p *PendingTransactionTable) Forward(blockTransactions []*model.Transaction) {
	for _, tx := range blockTransactions {
		current, exists := p.ranges.Get(tx.Sender())
		if !exists {
			panic(ierrors.WithMessagef(txpool.ErrAccountNotPending, "forwarding transaction %s for account %s", tx.Hash(), tx.Sender()))
		}
		if current.low != tx.Nonce() || current.low > current.high {
			panic(ierrors.WithMessagef(txpool.ErrPendingOrderViolation, "forwarding nonce %s against pending range (%s, %s)", tx.Nonce(), current.low, current.high))
		}

		if current.low == current.high {
			p.ranges.Delete(tx.Sender())
			continue
		}

		current.low++
		p.ranges.Set(tx.Sender(), current)
	}
}

// Reverse is the exact inverse of Forward: it reinstates a rolled-back
// block's transactions as pending, processed in reverse block order. An
// account reappearing must restore the exact predecessor of its current
// range floor.
func (p *PendingTransactionTable) Reverse(blockTransactions []*model.Transaction) {
	for i := len(blockTransactions) - 1; i >= 0; i-- {
		tx := blockTransactions[i]

		current, exists := p.ranges.Get(tx.Sender())
		if !exists {
			p.ranges.Set(tx.Sender(), nonceRange{low: tx.Nonce(), high: tx.Nonce()})
			continue
		}

		if current.low != tx.Nonce()+1 {
			panic(ierrors.WithMessagef(txpool.ErrPendingOrderViolation, "reversing nonce %s against pending range (%s, %s)", tx.Nonce(), current.low, current.high))
		}

		current.low--
		p.ranges.Set(tx.Sender(), current)
	}
}

// Range returns the pending nonce range of an account.
func (p *PendingTransactionTable) Range(address types.AccountAddress) (low types.Nonce, high types.Nonce, exists bool) {
	current, exists := p.ranges.Get(address)
	if !exists {
		return 0, 0, false
	}

	return current.low, current.high, true
}

// Size returns the number of accounts with outstanding work.
func (p *PendingTransactionTable) Size() int {
	return p.ranges.Size()
}

// ForEach iterates the pending summary.
func (p *PendingTransactionTable) ForEach(consumer func(address types.AccountAddress, low types.Nonce, high types.Nonce) bool) {
	p.ranges.ForEach(func(address types.AccountAddress, r nonceRange) bool {
		return consumer(address, r.low, r.high)
	})
}
