package model

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/byteutils"

	"github.com/parv0888/concordium-base/pkg/types"
)

// BareTransaction is the canonical signable and hashable unit: the signature
// followed by the header and the payload. It carries no derived metadata;
// the pool wraps it into a Transaction at admission.
type BareTransaction struct {
	signature ed25519.Signature
	header    TransactionHeader
	payload   EncodedPayload
}

var _ TransactionSource = &BareTransaction{}

// NewBareTransaction assembles a BareTransaction from its parts. The declared
// payload size of the header must match the payload.
func NewBareTransaction(signature ed25519.Signature, header TransactionHeader, payload EncodedPayload) (*BareTransaction, error) {
	if int(header.PayloadSize()) != len(payload) {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "declared payload size %d does not match payload length %d", header.PayloadSize(), len(payload))
	}

	return &BareTransaction{
		signature: signature,
		header:    header,
		payload:   payload,
	}, nil
}

// SignTransaction builds a signed BareTransaction. The signature covers the
// content hash of the header and payload bytes, never the raw bytes, keeping
// the signature domain separated from the hash domain.
func SignTransaction(keyPair ed25519.KeyPair, header TransactionHeader, payload EncodedPayload) (*BareTransaction, error) {
	if header.SenderKey() != keyPair.PublicKey {
		return nil, ierrors.New("header sender key does not belong to the signing key pair")
	}
	if int(header.PayloadSize()) != len(payload) {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "declared payload size %d does not match payload length %d", header.PayloadSize(), len(payload))
	}

	contentHash := types.HashTransactionBody(transactionBodyBytes(header, payload))

	return &BareTransaction{
		signature: keyPair.PrivateKey.Sign(contentHash[:]),
		header:    header,
		payload:   payload,
	}, nil
}

func (t *BareTransaction) Header() TransactionHeader {
	return t.header
}

func (t *BareTransaction) Sender() types.AccountAddress {
	return t.header.SenderAddress()
}

func (t *BareTransaction) Nonce() types.Nonce {
	return t.header.Nonce()
}

func (t *BareTransaction) Energy() types.Energy {
	return t.header.Energy()
}

func (t *BareTransaction) Payload() EncodedPayload {
	return t.payload
}

func (t *BareTransaction) Signature() ed25519.Signature {
	return t.signature
}

// Hash computes the content hash over the header and payload bytes. The
// signature is not part of the hashed span.
func (t *BareTransaction) Hash() types.TransactionHash {
	return types.HashTransactionBody(t.bodyBytes())
}

// ByteSize returns the encoded size of the transaction, signature included.
func (t *BareTransaction) ByteSize() int {
	return ed25519.SignatureSize + HeaderBytesLength + len(t.payload)
}

// Bytes returns the canonical encoding: signature, header, payload.
func (t *BareTransaction) Bytes() []byte {
	return byteutils.ConcatBytes(t.signature[:], t.bodyBytes())
}

// Equals compares two bare transactions field by field. Header equality
// ignores the cached sender address.
func (t *BareTransaction) Equals(other *BareTransaction) bool {
	return t.signature == other.signature &&
		t.header.Equals(other.header) &&
		string(t.payload) == string(other.payload)
}

func (t *BareTransaction) bodyBytes() []byte {
	return transactionBodyBytes(t.header, t.payload)
}

// transactionBodyBytes serializes the header and payload into the exact byte
// span the content hash is computed over. All integers are big-endian; the
// sender address is never encoded.
func transactionBodyBytes(header TransactionHeader, payload EncodedPayload) []byte {
	body := make([]byte, HeaderBytesLength+len(payload))

	senderKey := header.SenderKey()
	copy(body, senderKey[:])
	binary.BigEndian.PutUint64(body[nonceOffset:], uint64(header.Nonce()))
	binary.BigEndian.PutUint64(body[energyOffset:], uint64(header.Energy()))
	binary.BigEndian.PutUint32(body[payloadSizeOffset:], header.PayloadSize())
	copy(body[HeaderBytesLength:], payload)

	return body
}
