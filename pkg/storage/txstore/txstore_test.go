package txstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/kvstore/mapdb"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/model/tpkg"
	"github.com/parv0888/concordium-base/pkg/storage/txstore"
	"github.com/parv0888/concordium-base/pkg/types"
)

func TestTransactionStoreRoundTrip(t *testing.T) {
	store := txstore.New(mapdb.NewMapDB())
	keyPair := ed25519.GenerateKeyPair()

	tx := tpkg.SignedTransaction(keyPair, 1, 1234)
	require.NoError(t, store.Store(tx))

	loaded, exists, err := store.Load(tx.Hash())
	require.NoError(t, err)
	require.True(t, exists)
	require.True(t, tx.Equals(loaded))
	require.EqualValues(t, 1234, loaded.ArrivalTime())
	require.Equal(t, tx.Bytes(), loaded.Bytes())

	_, exists, err = store.Load(tpkg.RandomHash())
	require.NoError(t, err)
	require.False(t, exists)
}

func TestTransactionStoreDelete(t *testing.T) {
	store := txstore.New(mapdb.NewMapDB())
	keyPair := ed25519.GenerateKeyPair()

	tx := tpkg.SignedTransaction(keyPair, 1, 0)
	require.NoError(t, store.Store(tx))

	has, err := store.Has(tx.Hash())
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, store.Delete(tx.Hash()))

	has, err = store.Has(tx.Hash())
	require.NoError(t, err)
	require.False(t, has)
}

func TestTransactionStoreStream(t *testing.T) {
	store := txstore.New(mapdb.NewMapDB())
	keyPair := ed25519.GenerateKeyPair()

	expected := make(map[types.TransactionHash]*model.Transaction)
	for nonce := types.Nonce(1); nonce <= 3; nonce++ {
		tx := tpkg.SignedTransaction(keyPair, nonce, 0)
		expected[tx.Hash()] = tx
		require.NoError(t, store.Store(tx))
	}

	seen := 0
	require.NoError(t, store.Stream(func(tx *model.Transaction) error {
		require.True(t, expected[tx.Hash()].Equals(tx))
		seen++

		return nil
	}))
	require.Equal(t, len(expected), seen)
}
