package types

import "strconv"

// Nonce is the per-account transaction sequence number. Nonces are strictly
// increasing per sender and gap-free in the committed chain.
type Nonce uint64

// MinNonce is the nonce of the first transaction of a fresh account.
const MinNonce Nonce = 1

func (n Nonce) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Energy is the execution budget declared by the sender of a transaction.
// It is independent of nonce ordering.
type Energy uint64

func (e Energy) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
