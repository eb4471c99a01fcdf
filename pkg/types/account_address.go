package types

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/ierrors"
)

// AccountAddressLength is the byte length of an account address.
const AccountAddressLength = blake2b.Size256

// AccountAddress identifies a transaction sender. It is a pure function of
// the sender's verification key and is never encoded on the wire: decoders
// re-derive it and must not trust an address received from a peer.
type AccountAddress [AccountAddressLength]byte

// AddressFromPublicKey derives the account address of a verification key.
func AddressFromPublicKey(publicKey ed25519.PublicKey) AccountAddress {
	return blake2b.Sum256(publicKey[:])
}

// AccountAddressFromBytes parses an AccountAddress from bytes.
func AccountAddressFromBytes(b []byte) (AccountAddress, int, error) {
	if len(b) < AccountAddressLength {
		return AccountAddress{}, 0, ierrors.Errorf("invalid account address length: expected %d, got %d", AccountAddressLength, len(b))
	}

	var a AccountAddress
	copy(a[:], b)

	return a, AccountAddressLength, nil
}

func (a AccountAddress) Bytes() ([]byte, error) {
	return a[:], nil
}

func (a AccountAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
