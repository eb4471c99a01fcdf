package types

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
)

// TransactionHashLength is the byte length of a transaction content hash.
const TransactionHashLength = blake2b.Size256

// TransactionHash is the content hash of a transaction, computed over the
// header and payload bytes of the canonical encoding. The signature is not
// part of the hashed span.
type TransactionHash [TransactionHashLength]byte

// EmptyTransactionHash is the zero hash.
var EmptyTransactionHash = TransactionHash{}

// HashTransactionBody hashes the exact byte span a transaction body occupies
// on the wire.
func HashTransactionBody(body []byte) TransactionHash {
	return blake2b.Sum256(body)
}

// TransactionHashFromBytes parses a TransactionHash from bytes.
func TransactionHashFromBytes(b []byte) (TransactionHash, int, error) {
	if len(b) < TransactionHashLength {
		return EmptyTransactionHash, 0, ierrors.Errorf("invalid transaction hash length: expected %d, got %d", TransactionHashLength, len(b))
	}

	var h TransactionHash
	copy(h[:], b)

	return h, TransactionHashLength, nil
}

func (h TransactionHash) Bytes() ([]byte, error) {
	return h[:], nil
}

func (h TransactionHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}
