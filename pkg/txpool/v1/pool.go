package txpoolv1

import (
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/txpool"
	"github.com/parv0888/concordium-base/pkg/types"
)

// Pool combines the TransactionTable and the PendingTransactionTable behind a
// single lock. Every mutating operation updates both tables inside one
// critical section, so no reader can observe a transaction table that
// disagrees with the pending summary.
//
// The pool is driven by three kinds of callers: network-receive admission,
// local submission, and the consensus path applying, reverting and finalizing
// blocks. All operations are synchronous and CPU-bound; decoding is pure and
// happens outside the lock.
type Pool struct {
	events  *txpool.Events
	table   *TransactionTable
	pending *PendingTransactionTable

	// clock stamps arrival times in seconds since epoch.
	clock func() int64

	mutex syncutils.RWMutex

	log.Logger
}

var _ txpool.TransactionPool = &Pool{}

// WithClock replaces the arrival-time source, mainly for tests.
func WithClock(clock func() int64) options.Option[Pool] {
	return func(p *Pool) {
		p.clock = clock
	}
}

// New creates an empty Pool.
func New(logger log.Logger, opts ...options.Option[Pool]) *Pool {
	return options.Apply(&Pool{
		events:  txpool.NewEvents(),
		table:   NewTransactionTable(),
		pending: NewPendingTransactionTable(),
		Logger:  logger,
	}, opts, func(p *Pool) {
		if p.clock == nil {
			p.clock = func() int64 { return time.Now().Unix() }
		}
	})
}

// Events returns the pool's event group.
func (p *Pool) Events() *txpool.Events {
	return p.events
}

// AddTransaction admits a decoded transaction into both tables. Admission is
// idempotent on the content hash: a duplicate returns the resident entry and
// ErrTransactionAlreadyExists, keeping whichever arrival time won the race.
// A nonce below the sender's finalized next nonce is rejected with
// ErrStaleNonce since it can never execute. Transactions of one account may
// arrive in any nonce order.
func (p *Pool) AddTransaction(tx *model.Transaction, slot txpool.Slot) (*model.Transaction, error) {
	resident, err := p.addTransaction(tx, slot)
	if err != nil {
		return resident, err
	}

	p.LogTrace("TxPool.TransactionStored", "tx", resident.Hash(), "sender", resident.Sender(), "nonce", resident.Nonce())
	p.events.TransactionStored.Trigger(resident)

	return resident, nil
}

func (p *Pool) addTransaction(tx *model.Transaction, slot txpool.Slot) (*model.Transaction, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if tx.Nonce() < p.finalizedNextNonce(tx.Sender()) {
		return nil, ierrors.WithMessagef(txpool.ErrStaleNonce, "nonce %s below finalized next nonce of account %s", tx.Nonce(), tx.Sender())
	}

	resident, inserted := p.table.Insert(tx, slot)
	if !inserted {
		return resident, ierrors.WithMessagef(txpool.ErrTransactionAlreadyExists, "transaction %s", tx.Hash())
	}

	// the pending floor is the transaction's own nonce: lower nonces are
	// tracked by their own admissions or already executed in the chain under
	// consideration
	p.pending.Extend(tx.Nonce(), resident)

	return resident, nil
}

// AddTransactionBytes decodes and signature-verifies a raw buffer, stamps the
// local arrival time and admits the result. Decoding is stateless, so it runs
// outside the pool lock; concurrent discoveries of the same bytes are
// reconciled by the idempotent insert.
func (p *Pool) AddTransactionBytes(data []byte, slot txpool.Slot) (*model.Transaction, error) {
	tx, err := model.TransactionFromBytes(data, p.clock(), true)
	if err != nil {
		return nil, err
	}

	return p.AddTransaction(tx, slot)
}

// AddBlockTransactions admits the transactions of a received block. Unknown
// transactions are inserted; known ones are kept as is. A transaction whose
// nonce a finalized block already consumed is ignored instead of rejected,
// because a block on a stale branch can legitimately carry one.
func (p *Pool) AddBlockTransactions(blockTransactions []*model.Transaction, slot txpool.Slot) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, tx := range blockTransactions {
		if tx.Nonce() < p.finalizedNextNonce(tx.Sender()) {
			continue
		}

		resident, inserted := p.table.Insert(tx, slot)
		if !inserted {
			p.table.MarkSlot(resident.Hash(), slot)
			continue
		}

		p.pending.CheckedExtend(tx.Nonce(), resident)
	}
}

// finalizedNextNonce is the lowest nonce not yet consumed by a finalized
// block, as far as the pool knows. Callers hold the pool lock.
func (p *Pool) finalizedNextNonce(address types.AccountAddress) types.Nonce {
	if account, exists := p.table.Account(address); exists {
		return account.NextNonce()
	}

	return types.MinNonce
}

// Transaction looks up a resident transaction by content hash.
func (p *Pool) Transaction(hash types.TransactionHash) (tx *model.Transaction, slot txpool.Slot, exists bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.table.LookupByHash(hash)
}

// ApplyBlock forwards the pending summary over a block that became part of
// the chain under consideration and stamps the block's slot marker onto its
// transactions. Transactions must be in block order.
func (p *Pool) ApplyBlock(blockTransactions []*model.Transaction, slot txpool.Slot) {
	p.mutex.Lock()
	p.pending.Forward(blockTransactions)
	for _, tx := range blockTransactions {
		p.table.MarkSlot(tx.Hash(), slot)
	}
	p.mutex.Unlock()

	p.LogTrace("TxPool.BlockApplied", "slot", slot, "transactions", len(blockTransactions))
	p.events.BlockApplied.Trigger(blockTransactions)
}

// RevertBlock rewinds the pending summary over a rolled-back block and clears
// the slot markers of its transactions, which become pending again.
func (p *Pool) RevertBlock(blockTransactions []*model.Transaction) {
	p.mutex.Lock()
	p.pending.Reverse(blockTransactions)
	for _, tx := range blockTransactions {
		p.table.MarkSlot(tx.Hash(), txpool.PendingSlot)
	}
	p.mutex.Unlock()

	p.LogTrace("TxPool.BlockReverted", "transactions", len(blockTransactions))
	p.events.BlockReverted.Trigger(blockTransactions)
}

// FinalizeAccount advances the account's finalized next nonce and evicts
// every transaction below it from the pool.
func (p *Pool) FinalizeAccount(address types.AccountAddress, nextNonce types.Nonce) {
	p.mutex.Lock()
	dropped := p.table.FinalizeAccount(address, nextNonce)
	p.mutex.Unlock()

	p.LogTrace("TxPool.AccountFinalized", "account", address, "nextNonce", nextNonce, "dropped", len(dropped))
	p.events.AccountFinalized.Trigger(address, dropped)
}

// PendingRange returns the contiguous pending nonce range of an account.
func (p *Pool) PendingRange(address types.AccountAddress) (low types.Nonce, high types.Nonce, exists bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.pending.Range(address)
}

// NextAccountNonce returns the successor nonce a new transaction from the
// account should carry.
func (p *Pool) NextAccountNonce(address types.AccountAddress) types.Nonce {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.table.NextAccountNonce(address)
}

// Size returns the number of resident transactions.
func (p *Pool) Size() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.table.Size()
}
