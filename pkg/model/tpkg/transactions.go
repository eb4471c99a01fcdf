package tpkg

import (
	"crypto/rand"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/lo"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/types"
)

// RandomPayload returns an opaque payload of the given size.
func RandomPayload(size int) model.EncodedPayload {
	payload := make(model.EncodedPayload, size)
	rand.Read(payload)

	return payload
}

// RandomHash returns a random transaction hash.
func RandomHash() types.TransactionHash {
	var hash types.TransactionHash
	rand.Read(hash[:])

	return hash
}

// SignedBareTransaction builds a signed bare transaction for the key pair.
func SignedBareTransaction(keyPair ed25519.KeyPair, nonce types.Nonce, energy types.Energy, payload model.EncodedPayload) *model.BareTransaction {
	header := model.NewTransactionHeader(keyPair.PublicKey, nonce, energy, uint32(len(payload)))

	return lo.PanicOnErr(model.SignTransaction(keyPair, header, payload))
}

// SignedTransaction builds a signed, pool-ready transaction for the key pair.
func SignedTransaction(keyPair ed25519.KeyPair, nonce types.Nonce, arrivalTime int64) *model.Transaction {
	return model.NewTransaction(SignedBareTransaction(keyPair, nonce, types.Energy(1000), RandomPayload(16)), arrivalTime)
}
