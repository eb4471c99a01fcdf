package txpoolv1

import (
	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/txpool"
	"github.com/parv0888/concordium-base/pkg/types"
)

// trackedTransaction is a hash-index entry: the resident transaction plus the
// chain-position marker owned by the consensus layer.
type trackedTransaction struct {
	transaction *model.Transaction
	slot        txpool.Slot
}

// TransactionTable is the global transaction store: a content-hash index over
// all resident transactions and a per-account index of the not-yet-finalized
// ones, grouped by nonce.
//
// Invariant: every transaction reachable through the per-account index also
// appears in the hash index.
//
// The table itself is not safe for concurrent use; the Pool serializes access
// to it together with the pending table, so that both are always updated as
// one atomic unit.
type TransactionTable struct {
	hashIndex  *shrinkingmap.ShrinkingMap[types.TransactionHash, *trackedTransaction]
	perAccount *shrinkingmap.ShrinkingMap[types.AccountAddress, *AccountNonFinalizedTransactions]
}

// NewTransactionTable creates an empty TransactionTable.
func NewTransactionTable() *TransactionTable {
	return &TransactionTable{
		hashIndex:  shrinkingmap.New[types.TransactionHash, *trackedTransaction](),
		perAccount: shrinkingmap.New[types.AccountAddress, *AccountNonFinalizedTransactions](),
	}
}

// Insert adds a transaction to both indices. Insertion is idempotent on the
// content hash: re-inserting an equal-hash transaction returns the resident
// entry and leaves its arrival metadata untouched, which is how two
// concurrent discoveries of the same transaction are reconciled.
func (t *TransactionTable) Insert(tx *model.Transaction, slot txpool.Slot) (resident *model.Transaction, inserted bool) {
	entry, created := t.hashIndex.GetOrCreate(tx.Hash(), func() *trackedTransaction {
		return &trackedTransaction{transaction: tx, slot: slot}
	})
	if !created {
		return entry.transaction, false
	}

	account, _ := t.perAccount.GetOrCreate(tx.Sender(), func() *AccountNonFinalizedTransactions {
		return newAccountNonFinalizedTransactions(types.MinNonce)
	})
	account.add(tx)

	return tx, true
}

// LookupByHash returns the resident transaction and its slot marker.
func (t *TransactionTable) LookupByHash(hash types.TransactionHash) (tx *model.Transaction, slot txpool.Slot, exists bool) {
	entry, exists := t.hashIndex.Get(hash)
	if !exists {
		return nil, txpool.PendingSlot, false
	}

	return entry.transaction, entry.slot, true
}

// MarkSlot updates the chain-position marker of a resident transaction.
func (t *TransactionTable) MarkSlot(hash types.TransactionHash, slot txpool.Slot) bool {
	entry, exists := t.hashIndex.Get(hash)
	if !exists {
		return false
	}

	entry.slot = slot

	return true
}

// Account returns the non-finalized transaction index of an account.
func (t *TransactionTable) Account(address types.AccountAddress) (*AccountNonFinalizedTransactions, bool) {
	return t.perAccount.Get(address)
}

// FinalizeAccount prunes every transaction of the account below newNextNonce
// from both indices and advances the account's next nonce. The dropped
// transactions are returned; losing competitors of a finalized nonce are dead
// and must not linger in the hash index.
func (t *TransactionTable) FinalizeAccount(address types.AccountAddress, newNextNonce types.Nonce) (dropped []*model.Transaction) {
	account, exists := t.perAccount.Get(address)
	if !exists {
		return nil
	}

	for _, hash := range account.finalize(newNextNonce) {
		if entry, deleted := t.hashIndex.DeleteAndReturn(hash); deleted {
			dropped = append(dropped, entry.transaction)
		}
	}

	if account.IsEmpty() {
		t.perAccount.Delete(address)
	}

	return dropped
}

// PendingNoncesFor returns the nonce span currently tracked for an account.
// This is a derived diagnostic view; the canonical pending summary lives in
// the PendingTransactionTable.
func (t *TransactionTable) PendingNoncesFor(address types.AccountAddress) (low types.Nonce, high types.Nonce, exists bool) {
	account, exists := t.perAccount.Get(address)
	if !exists {
		return 0, 0, false
	}

	return account.NonceSpan()
}

// NextAccountNonce returns the successor nonce a new transaction from the
// account should carry: one past the highest known nonce, or the finalized
// next nonce when nothing is tracked.
func (t *TransactionTable) NextAccountNonce(address types.AccountAddress) types.Nonce {
	account, exists := t.perAccount.Get(address)
	if !exists {
		return types.MinNonce
	}

	if _, high, spanExists := account.NonceSpan(); spanExists {
		return high + 1
	}

	return account.NextNonce()
}

// Size returns the number of resident transactions.
func (t *TransactionTable) Size() int {
	return t.hashIndex.Size()
}

// ForEach iterates the hash index.
func (t *TransactionTable) ForEach(consumer func(tx *model.Transaction, slot txpool.Slot) bool) {
	t.hashIndex.ForEach(func(_ types.TransactionHash, entry *trackedTransaction) bool {
		return consumer(entry.transaction, entry.slot)
	})
}
