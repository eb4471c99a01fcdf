package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/lo"

	"github.com/parv0888/concordium-base/pkg/types"
)

func TestAddressDerivation(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()

	// derivation is a pure function of the verification key
	require.Equal(t, types.AddressFromPublicKey(keyPair.PublicKey), types.AddressFromPublicKey(keyPair.PublicKey))

	other := ed25519.GenerateKeyPair()
	require.NotEqual(t, types.AddressFromPublicKey(keyPair.PublicKey), types.AddressFromPublicKey(other.PublicKey))
}

func TestAccountAddressFromBytes(t *testing.T) {
	address := types.AddressFromPublicKey(ed25519.GenerateKeyPair().PublicKey)

	parsed, consumed, err := types.AccountAddressFromBytes(lo.PanicOnErr(address.Bytes()))
	require.NoError(t, err)
	require.Equal(t, types.AccountAddressLength, consumed)
	require.Equal(t, address, parsed)

	_, _, err = types.AccountAddressFromBytes(make([]byte, types.AccountAddressLength-1))
	require.Error(t, err)
}

func TestTransactionHashFromBytes(t *testing.T) {
	hash := types.HashTransactionBody([]byte("body bytes"))
	require.NotEqual(t, types.EmptyTransactionHash, hash)

	parsed, consumed, err := types.TransactionHashFromBytes(lo.PanicOnErr(hash.Bytes()))
	require.NoError(t, err)
	require.Equal(t, types.TransactionHashLength, consumed)
	require.Equal(t, hash, parsed)

	_, _, err = types.TransactionHashFromBytes(nil)
	require.Error(t, err)

	require.Equal(t, "0x", hash.String()[:2])
}
