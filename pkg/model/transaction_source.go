package model

import (
	"github.com/iotaledger/hive.go/crypto/ed25519"

	"github.com/parv0888/concordium-base/pkg/types"
)

// EncodedPayload is the opaque payload of a transaction. It is exactly
// PayloadSize bytes long and is never decoded by this layer.
type EncodedPayload []byte

// TransactionSource is the capability surface shared by the undecorated wire
// record (BareTransaction) and the pool-resident cached record (Transaction).
// Code that only reads transaction fields should accept this interface.
type TransactionSource interface {
	// Header returns the transaction header.
	Header() TransactionHeader
	// Sender returns the account address derived from the sender key.
	Sender() types.AccountAddress
	// Nonce returns the sequence nonce.
	Nonce() types.Nonce
	// Energy returns the declared execution budget.
	Energy() types.Energy
	// Payload returns the opaque payload bytes.
	Payload() EncodedPayload
	// Signature returns the sender's signature over the content hash.
	Signature() ed25519.Signature
	// Hash returns the content hash, computed over the header and payload
	// bytes of the canonical encoding.
	Hash() types.TransactionHash
	// ByteSize returns the encoded size, signature included.
	ByteSize() int
}
