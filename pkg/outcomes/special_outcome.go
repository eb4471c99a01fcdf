package outcomes

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/parv0888/concordium-base/pkg/types"
)

// SpecialOutcomeKind discriminates the protocol-generated ledger events.
type SpecialOutcomeKind uint8

const (
	// SpecialOutcomeBakingReward credits a block reward to a validator.
	SpecialOutcomeBakingReward SpecialOutcomeKind = iota
	// SpecialOutcomeFinalizationReward credits a finalization reward.
	SpecialOutcomeFinalizationReward
	// SpecialOutcomeMint credits newly minted funds.
	SpecialOutcomeMint
)

func (k SpecialOutcomeKind) String() string {
	switch k {
	case SpecialOutcomeBakingReward:
		return "BakingReward"
	case SpecialOutcomeFinalizationReward:
		return "FinalizationReward"
	case SpecialOutcomeMint:
		return "Mint"
	default:
		return "Unknown"
	}
}

// SpecialTransactionOutcome is a ledger event generated by the protocol
// rather than by a user transaction, e.g. a baking reward credited to an
// address.
type SpecialTransactionOutcome struct {
	Kind        SpecialOutcomeKind
	Beneficiary types.AccountAddress
	Amount      uint64
}

func (s SpecialTransactionOutcome) String() string {
	return stringify.Struct("SpecialTransactionOutcome",
		stringify.NewStructField("kind", s.Kind),
		stringify.NewStructField("beneficiary", s.Beneficiary),
		stringify.NewStructField("amount", s.Amount),
	)
}
