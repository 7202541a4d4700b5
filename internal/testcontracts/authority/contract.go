package authority

import (
	"github.com/ddcnet/charge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Register fills in the account record. The contract is a test double of
// the identity service, so the method performs no access checks.
func Register(account interop.Hash160, did string, role int, leader interop.Hash160, platformState, operatorState int) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}

	ctx := storage.GetContext()
	common.SetSerialized(ctx, account, common.AccountState{
		Account:       account,
		DID:           did,
		Role:          role,
		Leader:        leader,
		PlatformState: platformState,
		OperatorState: operatorState,
	})
}

// SetState overwrites both state fields of a registered account.
func SetState(account interop.Hash160, platformState, operatorState int) {
	ctx := storage.GetContext()
	acc := getState(ctx, account)
	if len(acc.Account) == 0 {
		panic("unknown account")
	}

	acc.PlatformState = platformState
	acc.OperatorState = operatorState
	common.SetSerialized(ctx, account, acc)
}

// GetAccount returns the stored account record, the zero value when the
// account was never registered.
func GetAccount(account interop.Hash160) common.AccountState {
	ctx := storage.GetReadOnlyContext()
	return getState(ctx, account)
}

// CheckRole reports whether the account is registered, fully active and
// holds the role.
func CheckRole(account interop.Hash160, role int) bool {
	ctx := storage.GetReadOnlyContext()
	acc := getState(ctx, account)

	return len(acc.Account) != 0 &&
		acc.Role == role &&
		acc.PlatformState == common.StateActive &&
		acc.OperatorState == common.StateActive
}

func getState(ctx storage.Context, account interop.Hash160) common.AccountState {
	data := storage.Get(ctx, account)
	if data == nil {
		return common.AccountState{}
	}
	return std.Deserialize(data.([]byte)).(common.AccountState)
}
