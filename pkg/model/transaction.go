package model

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/parv0888/concordium-base/pkg/types"
)

var (
	// ErrTruncatedTransaction is returned when a buffer does not contain a
	// well-formed transaction: short reads, declared sizes exceeding the
	// remaining bytes, or trailing garbage.
	ErrTruncatedTransaction = ierrors.New("malformed transaction bytes")

	// ErrInvalidSignature is returned when a structurally valid transaction
	// fails signature verification against its content hash. It is distinct
	// from ErrTruncatedTransaction so callers can penalize the source
	// differently.
	ErrInvalidSignature = ierrors.New("invalid transaction signature")
)

// Transaction is the pool-resident record: a BareTransaction decorated with
// the derived byte size, the content hash and the local arrival time.
// Transactions are equal iff their content hashes are equal; arrival metadata
// takes no part in identity, which lets the same logical transaction be
// deduplicated across independent discovery events.
type Transaction struct {
	BareTransaction

	byteSize    int
	contentHash types.TransactionHash
	arrivalTime int64
}

var _ TransactionSource = &Transaction{}

// NewTransaction decorates a bare transaction with its derived fields.
// arrivalTime is the local admission wall clock in seconds since epoch.
func NewTransaction(bare *BareTransaction, arrivalTime int64) *Transaction {
	return &Transaction{
		BareTransaction: *bare,
		byteSize:        bare.ByteSize(),
		contentHash:     bare.Hash(),
		arrivalTime:     arrivalTime,
	}
}

// TransactionFromBytes decodes the canonical encoding of a transaction.
//
// The signature is read first. The header and payload that follow are then
// sized without consuming input: the declared payload size is peeked out of
// the fixed-width header and bounds-checked against the remaining buffer.
// Only then is the body taken as a single contiguous slice, and the content
// hash is computed over that exact slice rather than a re-serialization, so
// the hash stays stable independent of any field-level re-encoding.
//
// With verifySignature set, the signature is checked against the content
// hash; failure yields ErrInvalidSignature and no transaction value.
func TransactionFromBytes(data []byte, arrivalTime int64, verifySignature bool) (*Transaction, error) {
	if len(data) < ed25519.SignatureSize {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "buffer of %d bytes is shorter than a signature", len(data))
	}

	signature, _, err := ed25519.SignatureFromBytes(data)
	if err != nil {
		return nil, ierrors.WithMessage(ErrTruncatedTransaction, err.Error())
	}

	rest := data[ed25519.SignatureSize:]
	if len(rest) < HeaderBytesLength {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "%d bytes left after the signature, a header needs %d", len(rest), HeaderBytesLength)
	}

	bodyLength := HeaderBytesLength + int(binary.BigEndian.Uint32(rest[payloadSizeOffset:]))
	if len(rest) < bodyLength {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "declared body of %d bytes exceeds the %d remaining", bodyLength, len(rest))
	}
	if len(rest) > bodyLength {
		return nil, ierrors.WithMessagef(ErrTruncatedTransaction, "%d trailing bytes after the transaction", len(rest)-bodyLength)
	}

	body := rest[:bodyLength]
	contentHash := types.HashTransactionBody(body)

	senderKey, _, err := ed25519.PublicKeyFromBytes(body)
	if err != nil {
		return nil, ierrors.WithMessage(ErrTruncatedTransaction, err.Error())
	}

	if verifySignature && !ed25519.Verify(senderKey[:], contentHash[:], signature[:]) {
		return nil, ierrors.WithMessagef(ErrInvalidSignature, "signature does not verify for sender %s", types.AddressFromPublicKey(senderKey))
	}

	header := NewTransactionHeader(
		senderKey,
		types.Nonce(binary.BigEndian.Uint64(body[nonceOffset:])),
		types.Energy(binary.BigEndian.Uint64(body[energyOffset:])),
		binary.BigEndian.Uint32(body[payloadSizeOffset:]),
	)

	payload := make(EncodedPayload, len(body)-HeaderBytesLength)
	copy(payload, body[HeaderBytesLength:])

	return &Transaction{
		BareTransaction: BareTransaction{
			signature: signature,
			header:    header,
			payload:   payload,
		},
		byteSize:    ed25519.SignatureSize + bodyLength,
		contentHash: contentHash,
		arrivalTime: arrivalTime,
	}, nil
}

// Hash returns the content hash computed at decode or construction time.
func (t *Transaction) Hash() types.TransactionHash {
	return t.contentHash
}

// ByteSize returns the encoded size of the transaction, signature included.
func (t *Transaction) ByteSize() int {
	return t.byteSize
}

// ArrivalTime returns the local admission time in seconds since epoch.
func (t *Transaction) ArrivalTime() int64 {
	return t.arrivalTime
}

// Equals reports whether two transactions are the same transaction. Identity
// is the content hash alone, regardless of differing arrival metadata.
func (t *Transaction) Equals(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.contentHash == other.contentHash
}

func (t *Transaction) String() string {
	return stringify.Struct("Transaction",
		stringify.NewStructField("hash", t.contentHash),
		stringify.NewStructField("sender", t.Sender()),
		stringify.NewStructField("nonce", t.Nonce()),
		stringify.NewStructField("energy", t.Energy()),
		stringify.NewStructField("byteSize", t.byteSize),
		stringify.NewStructField("arrivalTime", t.arrivalTime),
	)
}
