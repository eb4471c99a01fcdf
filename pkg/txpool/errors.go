package txpool

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrTransactionNotFound is returned when a hash lookup misses.
	ErrTransactionNotFound = ierrors.New("transaction not found")

	// ErrTransactionAlreadyExists is returned when a transaction with an
	// equal content hash is already resident. The existing entry, arrival
	// metadata included, is kept.
	ErrTransactionAlreadyExists = ierrors.New("transaction exists already")

	// ErrStaleNonce is returned when a transaction's nonce is below the
	// sender's already finalized next nonce.
	ErrStaleNonce = ierrors.New("transaction nonce already finalized")

	// The conditions below indicate a consensus-layer bug, not bad data from
	// the network. They are raised as panics wrapping these named errors:
	// continuing would corrupt the nonce-ordering guarantees block execution
	// relies on.

	// ErrNonceRegression: a finalized next nonce may only advance.
	ErrNonceRegression = ierrors.New("finalized nonce moved backwards")

	// ErrAccountNotPending: a forwarded transaction has no pending entry.
	ErrAccountNotPending = ierrors.New("account has no pending entry")

	// ErrPendingOrderViolation: forward/reverse was applied out of the
	// per-account nonce order that guarantees contiguity.
	ErrPendingOrderViolation = ierrors.New("pending transition out of nonce order")

	// ErrExtendPrecondition: Extend was called with a next nonce above the
	// transaction's own nonce.
	ErrExtendPrecondition = ierrors.New("pending extension above the transaction nonce")
)
