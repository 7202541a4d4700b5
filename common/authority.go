package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// AccountState is a point-in-time snapshot of an account record in the
// Authority contract. Accounts unknown to the Authority come back as a
// zero value with empty Account field.
type AccountState struct {
	// Account script hash.
	Account interop.Hash160
	// DID of the account in the identity service.
	DID string
	// Role of the account, one of Role* constants.
	Role int
	// Leader is the hierarchy parent of the account.
	Leader interop.Hash160
	// PlatformState is one of State* constants.
	PlatformState int
	// OperatorState is one of State* constants.
	OperatorState int
}

// Account roles in the Authority contract.
const (
	RoleOperator = 1
	RolePlatform = 2
	RoleConsumer = 3
)

// Account states in the Authority contract.
const (
	StateActive = 1
	StateFrozen = 2
)

// CheckRole invokes `checkRole` method of the Authority contract. It
// returns true iff the account is currently active and holds the role.
func CheckRole(authority interop.Hash160, account interop.Hash160, role int) bool {
	return contract.Call(authority, "checkRole", contract.ReadOnly, account, role).(bool)
}

// GetAccount invokes `getAccount` method of the Authority contract. The
// result is not cached: every authorization check fetches a fresh
// snapshot. A faulted call aborts the whole invocation.
func GetAccount(authority interop.Hash160, account interop.Hash160) AccountState {
	return contract.Call(authority, "getAccount", contract.ReadOnly, account).(AccountState)
}

// IsNullAddress reports whether addr is missing or consists of zero
// bytes only.
func IsNullAddress(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return true
	}
	for i := 0; i < len(addr); i++ {
		if addr[i] != 0 {
			return false
		}
	}
	return true
}
