package charge

import (
	"github.com/ddcnet/charge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
)

// Recharge denial reasons reported after ErrRechargeDenied.
const (
	DenyToNullAccount = "recharge to null account"
	DenySelfTransfer  = "self-transfer not permitted via this path"
	DenyNotRegistered = "account not registered"
	DenySourceFrozen  = "source frozen"
	DenyDestFrozen    = "destination frozen"
	DenyNoPermission  = "no recharge permission"
)

// rechargeDenyReason applies the recharge permission rule to a pair of
// authority snapshots. Empty result means the recharge is allowed.
//
// Frozen-state checks are unconditional vetoes. The permission check is a
// single combined expression: an Operator source is always permitted, a
// hierarchy leader may recharge its subordinates, and the third disjunct
// is kept exactly as the original rule states it even though it requires
// the two identifiers to be equal, a pair rejected before snapshots are
// ever fetched.
func rechargeDenyReason(from, to common.AccountState) string {
	if from.PlatformState != common.StateActive || from.OperatorState != common.StateActive {
		return DenySourceFrozen
	}
	if to.PlatformState != common.StateActive || to.OperatorState != common.StateActive {
		return DenyDestFrozen
	}

	allowed := from.Role == common.RoleOperator ||
		sameAddress(from.Account, to.Leader) ||
		(sameAddress(from.Leader, to.Leader) &&
			sameAddress(from.Account, to.Account) &&
			to.Role != common.RoleConsumer)
	if !allowed {
		return DenyNoPermission
	}

	return ""
}

func sameAddress(a, b interop.Hash160) bool {
	return string(a) == string(b)
}
