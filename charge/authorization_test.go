package charge

import (
	"testing"

	"github.com/ddcnet/charge-contract/common"
	"github.com/stretchr/testify/require"
)

func activeAccount(account, leader byte, role int) common.AccountState {
	return common.AccountState{
		Account:       addr(account),
		Role:          role,
		Leader:        addr(leader),
		PlatformState: common.StateActive,
		OperatorState: common.StateActive,
	}
}

func addr(fill byte) []byte {
	a := make([]byte, 20)
	for i := range a {
		a[i] = fill
	}
	return a
}

func TestRechargeDenyReason(t *testing.T) {
	operator := activeAccount(1, 0, common.RoleOperator)
	leader := activeAccount(2, 0, common.RolePlatform)
	follower := activeAccount(3, 2, common.RoleConsumer)
	stranger := activeAccount(4, 0, common.RoleConsumer)

	t.Run("operator may recharge anyone", func(t *testing.T) {
		require.Empty(t, rechargeDenyReason(operator, follower))
		require.Empty(t, rechargeDenyReason(operator, stranger))
		require.Empty(t, rechargeDenyReason(operator, leader))
	})

	t.Run("leader may recharge subordinates", func(t *testing.T) {
		require.Empty(t, rechargeDenyReason(leader, follower))
		require.Equal(t, DenyNoPermission, rechargeDenyReason(leader, stranger))
	})

	t.Run("consumer without hierarchy claim is denied", func(t *testing.T) {
		require.Equal(t, DenyNoPermission, rechargeDenyReason(stranger, follower))
		require.Equal(t, DenyNoPermission, rechargeDenyReason(follower, stranger))
	})

	t.Run("consumer leading a subordinate is allowed", func(t *testing.T) {
		// The hierarchy clause overrides the consumer restriction: the
		// checks are combined into one expression, not applied as
		// sequential vetoes.
		consumerLeader := activeAccount(2, 0, common.RoleConsumer)
		require.Empty(t, rechargeDenyReason(consumerLeader, follower))
	})

	t.Run("frozen source", func(t *testing.T) {
		src := operator
		src.PlatformState = common.StateFrozen
		require.Equal(t, DenySourceFrozen, rechargeDenyReason(src, follower))

		src = operator
		src.OperatorState = common.StateFrozen
		require.Equal(t, DenySourceFrozen, rechargeDenyReason(src, follower))
	})

	t.Run("frozen destination", func(t *testing.T) {
		dst := follower
		dst.PlatformState = common.StateFrozen
		require.Equal(t, DenyDestFrozen, rechargeDenyReason(operator, dst))

		dst = follower
		dst.OperatorState = common.StateFrozen
		require.Equal(t, DenyDestFrozen, rechargeDenyReason(operator, dst))
	})

	t.Run("frozen state vetoes precede permission check", func(t *testing.T) {
		src := stranger
		src.PlatformState = common.StateFrozen
		require.Equal(t, DenySourceFrozen, rechargeDenyReason(src, follower))
	})
}

// The third disjunct of the permission rule compares the pair for equal
// leaders and equal identifiers at once, which only holds for identical
// accounts, and identical accounts never get this far. The branch is kept
// exactly as the original rule states it; this test pins it dead.
func TestRechargeRuleThirdDisjunctIsDead(t *testing.T) {
	t.Run("same account same leader non-consumer would pass", func(t *testing.T) {
		acc := activeAccount(5, 2, common.RolePlatform)
		require.Empty(t, rechargeDenyReason(acc, acc))
	})

	t.Run("same leader different accounts fails", func(t *testing.T) {
		a := activeAccount(5, 2, common.RolePlatform)
		b := activeAccount(6, 2, common.RolePlatform)
		require.Equal(t, DenyNoPermission, rechargeDenyReason(a, b))
	})

	t.Run("same account consumer fails", func(t *testing.T) {
		acc := activeAccount(5, 2, common.RoleConsumer)
		require.Equal(t, DenyNoPermission, rechargeDenyReason(acc, acc))
	})
}
