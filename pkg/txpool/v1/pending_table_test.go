package txpoolv1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/crypto/ed25519"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/model/tpkg"
	txpoolv1 "github.com/parv0888/concordium-base/pkg/txpool/v1"
	"github.com/parv0888/concordium-base/pkg/types"
)

func TestPendingTableExtend(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	keyPair := ed25519.GenerateKeyPair()
	sender := types.AddressFromPublicKey(keyPair.PublicKey)

	pending.Extend(3, tpkg.SignedTransaction(keyPair, 5, 0))
	low, high, exists := pending.Range(sender)
	require.True(t, exists)
	require.EqualValues(t, 3, low)
	require.EqualValues(t, 5, high)

	pending.Extend(3, tpkg.SignedTransaction(keyPair, 4, 0))
	low, high, _ = pending.Range(sender)
	require.EqualValues(t, 3, low)
	require.EqualValues(t, 5, high)

	pending.Extend(3, tpkg.SignedTransaction(keyPair, 9, 0))
	_, high, _ = pending.Range(sender)
	require.EqualValues(t, 9, high)

	// a lower floor widens the range downwards
	pending.Extend(2, tpkg.SignedTransaction(keyPair, 2, 0))
	low, high, _ = pending.Range(sender)
	require.EqualValues(t, 2, low)
	require.EqualValues(t, 9, high)

	require.Panics(t, func() {
		pending.Extend(10, tpkg.SignedTransaction(keyPair, 5, 0))
	})
}

func TestPendingTableCheckedExtend(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	keyPair := ed25519.GenerateKeyPair()
	sender := types.AddressFromPublicKey(keyPair.PublicKey)

	// the violating update is dropped silently
	require.False(t, pending.CheckedExtend(10, tpkg.SignedTransaction(keyPair, 5, 0)))
	_, _, exists := pending.Range(sender)
	require.False(t, exists)

	require.True(t, pending.CheckedExtend(5, tpkg.SignedTransaction(keyPair, 5, 0)))
	low, high, exists := pending.Range(sender)
	require.True(t, exists)
	require.EqualValues(t, 5, low)
	require.EqualValues(t, 5, high)
}

func TestPendingTableForward(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	keyPair := ed25519.GenerateKeyPair()
	sender := types.AddressFromPublicKey(keyPair.PublicKey)

	pending.Extend(5, tpkg.SignedTransaction(keyPair, 9, 0))

	pending.Forward([]*model.Transaction{tpkg.SignedTransaction(keyPair, 5, 0)})
	low, high, exists := pending.Range(sender)
	require.True(t, exists)
	require.EqualValues(t, 6, low)
	require.EqualValues(t, 9, high)

	for nonce := types.Nonce(6); nonce <= 8; nonce++ {
		pending.Forward([]*model.Transaction{tpkg.SignedTransaction(keyPair, nonce, 0)})
	}
	low, high, _ = pending.Range(sender)
	require.EqualValues(t, 9, low)
	require.EqualValues(t, 9, high)

	// forwarding the last pending nonce removes the account entry
	pending.Forward([]*model.Transaction{tpkg.SignedTransaction(keyPair, 9, 0)})
	_, _, exists = pending.Range(sender)
	require.False(t, exists)
	require.Equal(t, 0, pending.Size())
}

func TestPendingTableForwardViolations(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	keyPair := ed25519.GenerateKeyPair()

	// forwarding a transaction that was never recorded as pending
	require.Panics(t, func() {
		pending.Forward([]*model.Transaction{tpkg.SignedTransaction(keyPair, 1, 0)})
	})

	// forwarding out of nonce order
	pending.Extend(5, tpkg.SignedTransaction(keyPair, 9, 0))
	require.Panics(t, func() {
		pending.Forward([]*model.Transaction{tpkg.SignedTransaction(keyPair, 6, 0)})
	})
}

func TestPendingTableReverse(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	keyPair := ed25519.GenerateKeyPair()
	sender := types.AddressFromPublicKey(keyPair.PublicKey)

	// rolling back a block against an empty table reinstates its entries
	pending.Reverse([]*model.Transaction{tpkg.SignedTransaction(keyPair, 7, 0)})
	low, high, exists := pending.Range(sender)
	require.True(t, exists)
	require.EqualValues(t, 7, low)
	require.EqualValues(t, 7, high)

	pending.Reverse([]*model.Transaction{tpkg.SignedTransaction(keyPair, 6, 0)})
	low, high, _ = pending.Range(sender)
	require.EqualValues(t, 6, low)
	require.EqualValues(t, 7, high)

	// reversal must restore the exact predecessor
	require.Panics(t, func() {
		pending.Reverse([]*model.Transaction{tpkg.SignedTransaction(keyPair, 3, 0)})
	})
}

func TestPendingTableForwardReverseRoundTrip(t *testing.T) {
	pending := txpoolv1.NewPendingTransactionTable()
	first := ed25519.GenerateKeyPair()
	second := ed25519.GenerateKeyPair()
	firstSender := types.AddressFromPublicKey(first.PublicKey)
	secondSender := types.AddressFromPublicKey(second.PublicKey)

	var block []*model.Transaction
	for nonce := types.Nonce(1); nonce <= 3; nonce++ {
		tx := tpkg.SignedTransaction(first, nonce, 0)
		pending.Extend(1, tx)
		block = append(block, tx)
	}
	tx := tpkg.SignedTransaction(second, 1, 0)
	pending.Extend(1, tx)
	block = append(block, tx)

	pending.Forward(block)
	_, _, exists := pending.Range(firstSender)
	require.False(t, exists)
	_, _, exists = pending.Range(secondSender)
	require.False(t, exists)

	// reverse is the exact inverse of forward for the same block
	pending.Reverse(block)

	low, high, exists := pending.Range(firstSender)
	require.True(t, exists)
	require.EqualValues(t, 1, low)
	require.EqualValues(t, 3, high)

	low, high, exists = pending.Range(secondSender)
	require.True(t, exists)
	require.EqualValues(t, 1, low)
	require.EqualValues(t, 1, high)
}
