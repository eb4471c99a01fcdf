package txpool

import (
	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/types"
)

// Slot is the opaque chain-position marker recorded alongside a transaction
// in the hash index. It is owned by the execution/consensus layer; the pool
// only stores it.
type Slot uint64

// PendingSlot marks a transaction that is not part of any block.
const PendingSlot Slot = 0

// TransactionPool holds all transactions known to the node, indexed by
// content hash and by sender/nonce, together with the compact pending
// summary consumed by block production and reorganization.
//
// Mutating operations update the transaction table and the pending table as
// one atomic unit; readers never observe a half-applied transition.
type TransactionPool interface {
	// AddTransaction admits a decoded transaction. Admission is idempotent
	// on the content hash: re-adding returns the resident transaction and
	// ErrTransactionAlreadyExists. A nonce below the sender's finalized next
	// nonce yields ErrStaleNonce.
	AddTransaction(tx *model.Transaction, slot Slot) (*model.Transaction, error)

	// AddTransactionBytes decodes, signature-verifies and admits a raw
	// transaction buffer, stamping the local arrival time.
	AddTransactionBytes(data []byte, slot Slot) (*model.Transaction, error)

	// AddBlockTransactions admits the transactions carried by a received
	// block, keeping already-known ones untouched.
	AddBlockTransactions(blockTransactions []*model.Transaction, slot Slot)

	// Transaction looks up a resident transaction by content hash.
	Transaction(hash types.TransactionHash) (tx *model.Transaction, slot Slot, exists bool)

	// ApplyBlock forwards the pending view over a block that became part of
	// the chain under consideration, in block order.
	ApplyBlock(blockTransactions []*model.Transaction, slot Slot)

	// RevertBlock rewinds the pending view over a block that was removed
	// from the chain under consideration, in reverse block order.
	RevertBlock(blockTransactions []*model.Transaction)

	// FinalizeAccount prunes all of the account's transactions below the
	// given nonce and advances its finalized next nonce.
	FinalizeAccount(address types.AccountAddress, nextNonce types.Nonce)

	// PendingRange returns the contiguous pending nonce range of an account,
	// if it has one.
	PendingRange(address types.AccountAddress) (low types.Nonce, high types.Nonce, exists bool)

	// NextAccountNonce returns the successor nonce a new transaction from
	// the account should carry.
	NextAccountNonce(address types.AccountAddress) types.Nonce

	// Size returns the number of resident transactions.
	Size() int

	// Events returns the pool's event group.
	Events() *Events
}
