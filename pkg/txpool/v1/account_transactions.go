package txpoolv1

import (
	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/txpool"
	"github.com/parv0888/concordium-base/pkg/types"
)

// AccountNonFinalizedTransactions tracks the not-yet-finalized transactions
// of a single account, grouped by nonce. Distinct competing transactions can
// legitimately share a nonce until one of them is finalized; transactions are
// identified by content hash, so each nonce maps to a hash set.
//
// Invariant: every nonce present in byNonce is >= nextNonce.
type AccountNonFinalizedTransactions struct {
	byNonce   *shrinkingmap.ShrinkingMap[types.Nonce, ds.Set[types.TransactionHash]]
	nextNonce types.Nonce
}

func newAccountNonFinalizedTransactions(nextNonce types.Nonce) *AccountNonFinalizedTransactions {
	return &AccountNonFinalizedTransactions{
		byNonce:   shrinkingmap.New[types.Nonce, ds.Set[types.TransactionHash]](),
		nextNonce: nextNonce,
	}
}

// NextNonce returns the lowest nonce not yet finalized for this account.
func (a *AccountNonFinalizedTransactions) NextNonce() types.Nonce {
	return a.nextNonce
}

// NonceSpan returns the lowest and highest tracked nonce.
func (a *AccountNonFinalizedTransactions) NonceSpan() (low types.Nonce, high types.Nonce, exists bool) {
	a.byNonce.ForEachKey(func(nonce types.Nonce) bool {
		if !exists || nonce < low {
			low = nonce
		}
		if !exists || nonce > high {
			high = nonce
		}
		exists = true

		return true
	})

	return low, high, exists
}

// TransactionsAt returns the hashes of the transactions competing at a nonce.
func (a *AccountNonFinalizedTransactions) TransactionsAt(nonce types.Nonce) []types.TransactionHash {
	set, exists := a.byNonce.Get(nonce)
	if !exists {
		return nil
	}

	return set.ToSlice()
}

// IsEmpty reports whether no transactions are tracked.
func (a *AccountNonFinalizedTransactions) IsEmpty() bool {
	return a.byNonce.IsEmpty()
}

// add unions a transaction into its nonce group. The caller guarantees that
// the nonce was checked against nextNonce.
func (a *AccountNonFinalizedTransactions) add(tx *model.Transaction) {
	set, _ := a.byNonce.GetOrCreate(tx.Nonce(), func() ds.Set[types.TransactionHash] {
		return ds.NewSet[types.TransactionHash]()
	})

	set.Add(tx.Hash())
}

// finalize drops every nonce group below newNextNonce and advances the next
// nonce, returning the dropped hashes. Nonces only ever advance; a caller
// handing in a regressed nonce has corrupted its view of the chain and the
// operation aborts loudly.
func (a *AccountNonFinalizedTransactions) finalize(newNextNonce types.Nonce) (dropped []types.TransactionHash) {
	if newNextNonce < a.nextNonce {
		panic(ierrors.WithMessagef(txpool.ErrNonceRegression, "finalize to nonce %s below next nonce %s", newNextNonce, a.nextNonce))
	}

	var staleNonces []types.Nonce
	a.byNonce.ForEachKey(func(nonce types.Nonce) bool {
		if nonce < newNextNonce {
			staleNonces = append(staleNonces, nonce)
		}

		return true
	})

	for _, nonce := range staleNonces {
		if set, deleted := a.byNonce.DeleteAndReturn(nonce); deleted {
			dropped = append(dropped, set.ToSlice()...)
		}
	}

	a.nextNonce = newNextNonce

	return dropped
}
