package txpool

import (
	"github.com/iotaledger/hive.go/runtime/event"

	"github.com/parv0888/concordium-base/pkg/model"
	"github.com/parv0888/concordium-base/pkg/types"
)

type Events struct {
	// TransactionStored is triggered when a transaction enters the pool.
	TransactionStored *event.Event1[*model.Transaction]

	// AccountFinalized is triggered when an account's next nonce advances,
	// with the transactions pruned below it.
	AccountFinalized *event.Event2[types.AccountAddress, []*model.Transaction]

	// BlockApplied is triggered after a block's transactions were forwarded
	// out of the pending view.
	BlockApplied *event.Event1[[]*model.Transaction]

	// BlockReverted is triggered after a rolled-back block's transactions
	// were reinstated as pending.
	BlockReverted *event.Event1[[]*model.Transaction]

	event.Group[Events, *Events]
}

var NewEvents = event.CreateGroupConstructor(func() *Events {
	return &Events{
		TransactionStored: event.New1[*model.Transaction](),
		AccountFinalized:  event.New2[types.AccountAddress, []*model.Transaction](),
		BlockApplied:      event.New1[[]*model.Transaction](),
		BlockReverted:     event.New1[[]*model.Transaction](),
	}
})
