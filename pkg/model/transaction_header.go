package model

import (
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/parv0888/concordium-base/pkg/types"
)

// Wire layout of the transaction body, fixed order, no padding:
// verification key | nonce (8, BE) | energy (8, BE) | payload size (4, BE) | payload.
const (
	nonceOffset       = ed25519.PublicKeySize
	energyOffset      = nonceOffset + serializer.UInt64ByteSize
	payloadSizeOffset = energyOffset + serializer.UInt64ByteSize

	// HeaderBytesLength is the wire length of a transaction header.
	HeaderBytesLength = payloadSizeOffset + serializer.UInt32ByteSize
)

// TransactionHeader carries the sender verification key, the sequence nonce,
// the declared execution energy and the payload byte count of a transaction.
// The sender address is derived from the verification key on construction and
// is a cache, not wire state.
type TransactionHeader struct {
	senderKey   ed25519.PublicKey
	nonce       types.Nonce
	energy      types.Energy
	payloadSize uint32

	senderAddress types.AccountAddress
}

// NewTransactionHeader creates a TransactionHeader and derives the sender
// address from the verification key.
func NewTransactionHeader(senderKey ed25519.PublicKey, nonce types.Nonce, energy types.Energy, payloadSize uint32) TransactionHeader {
	return TransactionHeader{
		senderKey:     senderKey,
		nonce:         nonce,
		energy:        energy,
		payloadSize:   payloadSize,
		senderAddress: types.AddressFromPublicKey(senderKey),
	}
}

// SenderKey returns the sender's verification key.
func (h TransactionHeader) SenderKey() ed25519.PublicKey {
	return h.senderKey
}

// Nonce returns the sequence nonce of the transaction.
func (h TransactionHeader) Nonce() types.Nonce {
	return h.nonce
}

// Energy returns the declared execution budget.
func (h TransactionHeader) Energy() types.Energy {
	return h.energy
}

// PayloadSize returns the declared payload byte count.
func (h TransactionHeader) PayloadSize() uint32 {
	return h.payloadSize
}

// SenderAddress returns the account address derived from the sender key.
func (h TransactionHeader) SenderAddress() types.AccountAddress {
	return h.senderAddress
}

// Equals compares the wire fields of two headers. The derived sender address
// is a function of the key and takes no part in equality.
func (h TransactionHeader) Equals(other TransactionHeader) bool {
	return h.senderKey == other.senderKey &&
		h.nonce == other.nonce &&
		h.energy == other.energy &&
		h.payloadSize == other.payloadSize
}

func (h TransactionHeader) String() string {
	return stringify.Struct("TransactionHeader",
		stringify.NewStructField("sender", h.senderAddress),
		stringify.NewStructField("nonce", h.nonce),
		stringify.NewStructField("energy", h.energy),
		stringify.NewStructField("payloadSize", h.payloadSize),
	)
}
