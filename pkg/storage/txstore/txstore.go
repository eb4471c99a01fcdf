package txstore

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/stream"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/types"
)

// TransactionStore persists pool transactions in their canonical wire
// encoding, keyed by content hash. It is a collaborator of the pool, not a
// part of it: the node stores admitted transactions beside the pool and
// streams them back after a restart.
//
// The stored value is the local arrival time followed by the wire bytes, so
// a reloaded transaction keeps its admission metadata. Loads decode without
// signature verification; the bytes were verified before they were stored.
type TransactionStore struct {
	store kvstore.KVStore
}

// New creates a TransactionStore on top of the given key-value store.
func New(store kvstore.KVStore) *TransactionStore {
	return &TransactionStore{
		store: store,
	}
}

// Store persists a transaction under its content hash.
func (s *TransactionStore) Store(tx *model.Transaction) error {
	byteBuffer := stream.NewByteBuffer()
	if err := stream.Write(byteBuffer, tx.ArrivalTime()); err != nil {
		return ierrors.Wrap(err, "failed to write arrival time")
	}
	if err := stream.WriteBytesWithSize(byteBuffer, tx.Bytes(), serializer.SeriLengthPrefixTypeAsUint32); err != nil {
		return ierrors.Wrap(err, "failed to write transaction bytes")
	}

	value, err := byteBuffer.Bytes()
	if err != nil {
		return ierrors.Wrap(err, "failed to serialize stored transaction")
	}

	hash := tx.Hash()
	if err := s.store.Set(hash[:], value); err != nil {
		return ierrors.Wrapf(err, "failed to store transaction %s", hash)
	}

	return nil
}

// Load retrieves a transaction by content hash.
func (s *TransactionStore) Load(hash types.TransactionHash) (*model.Transaction, bool, error) {
	value, err := s.store.Get(hash[:])
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, ierrors.Wrapf(err, "failed to load transaction %s", hash)
	}

	tx, err := transactionFromValue(value)
	if err != nil {
		return nil, false, ierrors.Wrapf(err, "failed to decode stored transaction %s", hash)
	}

	return tx, true, nil
}

// Has reports whether a transaction is stored.
func (s *TransactionStore) Has(hash types.TransactionHash) (bool, error) {
	return s.store.Has(hash[:])
}

// Delete removes a stored transaction.
func (s *TransactionStore) Delete(hash types.TransactionHash) error {
	return s.store.Delete(hash[:])
}

// Stream calls the consumer for every stored transaction until it returns an
// error.
func (s *TransactionStore) Stream(consumer func(tx *model.Transaction) error) error {
	var innerErr error
	if storageErr := s.store.Iterate(kvstore.EmptyPrefix, func(_ kvstore.Key, value kvstore.Value) bool {
		tx, err := transactionFromValue(value)
		if err != nil {
			innerErr = err
			return false
		}

		innerErr = consumer(tx)

		return innerErr == nil
	}); storageErr != nil {
		return ierrors.Wrap(storageErr, "failed to iterate over stored transactions")
	}

	if innerErr != nil {
		return ierrors.Wrap(innerErr, "failed to stream stored transactions")
	}

	return nil
}

func transactionFromValue(value []byte) (*model.Transaction, error) {
	valueReader := stream.NewByteReader(value)

	arrivalTime, err := stream.Read[int64](valueReader)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read arrival time")
	}

	txBytes, err := stream.ReadBytesWithSize(valueReader, serializer.SeriLengthPrefixTypeAsUint32)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read transaction bytes")
	}

	return model.TransactionFromBytes(txBytes, arrivalTime, false)
}
