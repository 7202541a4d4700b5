package charge

import (
	"github.com/ddcnet/charge-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	ownerKey       = 'o'
	authorityKey   = 'c'
	totalIssuedKey = 't'

	balancePrefix = 'b'
	feePrefix     = 'f'
	activePrefix  = 'a'

	// SelectorLen is the exact length of an operation selector in bytes.
	SelectorLen = 4

	maxBalance = 1<<63 - 1
	maxFee     = 1<<32 - 1
)

// Error messages thrown by the contract methods.
const (
	ErrInvalidAccount      = "invalid account"
	ErrZeroAmount          = "zero amount"
	ErrInsufficientBalance = "insufficient balance"
	ErrOverflow            = "balance overflow"
	ErrUnauthorized        = "unauthorized"
	ErrInvalidService      = "invalid service"
	ErrServiceUnavailable  = "service unavailable"
	ErrInvalidRequest      = "invalid request id"
	ErrInvalidSelector     = "invalid operation selector"
	ErrInvalidFee          = "invalid fee"
	ErrRechargeDenied      = "recharge denied"
)

func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner         interop.Hash160
		addrAuthority interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}
	if len(args.addrAuthority) != interop.Hash160Len {
		panic("incorrect length of authority contract script hash")
	}

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, authorityKey, args.addrAuthority)

	runtime.Log("charge contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(storage.Get(ctx, ownerKey).(interop.Hash160))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("charge contract updated")
}

// SetAuthorityContract replaces the Authority contract address used for
// role and account lookups. Can be invoked only by the contract owner.
func SetAuthorityContract(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(storage.Get(ctx, ownerKey).(interop.Hash160))

	if common.IsNullAddress(addr) {
		panic(ErrInvalidAccount)
	}

	storage.Put(ctx, authorityKey, addr)
	runtime.Log("authority contract updated")
}

// AuthorityContract returns the address of the Authority contract the
// charge contract currently consults.
func AuthorityContract() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, authorityKey).(interop.Hash160)
}

// BalanceOf returns the prepaid balance of the specified account.
func BalanceOf(account interop.Hash160) int {
	if common.IsNullAddress(account) {
		panic(ErrInvalidAccount)
	}

	ctx := storage.GetReadOnlyContext()
	return balanceOf(ctx, account)
}

// TotalIssued returns cumulative amount minted via SelfRecharge. It never
// decreases and is informational: transfers redistribute balances without
// touching it.
func TotalIssued() int {
	ctx := storage.GetReadOnlyContext()
	return totalIssued(ctx)
}

// Recharge transfers amount from one account to another after the
// authorization rule allows the pair. The method is deliberately not
// restricted to a witness of `from`: any caller may submit a recharge on
// behalf of a pair that authorizes.
//
// Produces Recharged notification.
func Recharge(from interop.Hash160, to interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrZeroAmount)
	}
	if common.IsNullAddress(to) {
		panic(ErrRechargeDenied + ": " + DenyToNullAccount)
	}
	if common.BytesEqual(from, to) {
		panic(ErrRechargeDenied + ": " + DenySelfTransfer)
	}

	ctx := storage.GetContext()
	authority := storage.Get(ctx, authorityKey).(interop.Hash160)

	src := common.GetAccount(authority, from)
	if len(src.Account) == 0 {
		panic(ErrRechargeDenied + ": " + DenyNotRegistered)
	}
	dst := common.GetAccount(authority, to)
	if len(dst.Account) == 0 {
		panic(ErrRechargeDenied + ": " + DenyNotRegistered)
	}

	reason := rechargeDenyReason(src, dst)
	if reason != "" {
		panic(ErrRechargeDenied + ": " + reason)
	}

	transfer(ctx, from, to, amount)
	runtime.Notify("Recharged", from, to, amount)
}

// SelfRecharge mints amount to the operator's own balance and increases
// total issued. Operator must sign the invocation and hold the Operator
// role in the Authority contract.
//
// Produces Recharged notification with the null address as source.
func SelfRecharge(operator interop.Hash160, amount int) {
	common.CheckWitness(operator)

	if amount <= 0 {
		panic(ErrZeroAmount)
	}

	ctx := storage.GetContext()
	authority := storage.Get(ctx, authorityKey).(interop.Hash160)
	if !common.CheckRole(authority, operator, common.RoleOperator) {
		panic(ErrUnauthorized)
	}

	transfer(ctx, nil, operator, amount)
	runtime.Notify("Recharged", nullAddress(), operator, amount)
}

// Pay charges the payer with the fee registered by the calling service for
// the given operation selector. Service must sign the invocation. A fee of
// zero moves nothing but the payment is still recorded with a
// notification. A payer unable to cover a non-zero fee aborts the whole
// call.
//
// Produces Paid notification.
func Pay(service interop.Hash160, payer interop.Hash160, selector []byte, requestID int) {
	common.CheckWitness(service)

	if common.IsNullAddress(payer) {
		panic(ErrInvalidAccount)
	}
	if requestID <= 0 {
		panic(ErrInvalidRequest)
	}

	ctx := storage.GetContext()
	fee := activeFee(ctx, service, selector)
	if fee > 0 {
		transfer(ctx, payer, service, fee)
	}

	runtime.Notify("Paid", payer, service, selector, fee, requestID)
}

// Settlement moves amount from an active service balance to the operator.
// Operator must sign the invocation and hold the Operator role.
//
// Produces Settled notification.
func Settlement(operator interop.Hash160, service interop.Hash160, amount int) {
	common.CheckWitness(operator)

	if amount <= 0 {
		panic(ErrZeroAmount)
	}

	ctx := storage.GetContext()
	if !isActiveService(ctx, service) {
		panic(ErrInvalidService)
	}

	authority := storage.Get(ctx, authorityKey).(interop.Hash160)
	if !common.CheckRole(authority, operator, common.RoleOperator) {
		panic(ErrUnauthorized)
	}

	transfer(ctx, service, operator, amount)
	runtime.Notify("Settled", operator, service, amount)
}

// SetFee marks the service active and sets the fee for the operation
// selector, overwriting any previous value. Operator must sign the
// invocation and hold the Operator role. Repeated calls are safe.
//
// Produces FeeSet notification.
func SetFee(operator interop.Hash160, service interop.Hash160, selector []byte, amount int) {
	ctx := storage.GetContext()
	checkOperator(ctx, operator)

	if common.IsNullAddress(service) {
		panic(ErrInvalidAccount)
	}
	if len(selector) != SelectorLen {
		panic(ErrInvalidSelector)
	}
	if amount < 0 || amount > maxFee {
		panic(ErrInvalidFee)
	}

	storage.Put(ctx, activeServiceKey(service), true)
	storage.Put(ctx, feeKey(service, selector), amount)

	runtime.Notify("FeeSet", service, selector, amount)
}

// DelFee removes the fee entry of the operation selector, so subsequent
// lookups yield zero. The active flag of the service is not affected.
// Operator must sign the invocation and hold the Operator role.
//
// Produces FeeDeleted notification.
func DelFee(operator interop.Hash160, service interop.Hash160, selector []byte) {
	ctx := storage.GetContext()
	checkOperator(ctx, operator)

	if common.IsNullAddress(service) {
		panic(ErrInvalidAccount)
	}
	if len(selector) != SelectorLen {
		panic(ErrInvalidSelector)
	}

	storage.Delete(ctx, feeKey(service, selector))

	runtime.Notify("FeeDeleted", service, selector)
}

// DelDDC deactivates the service: fee entries remain stored but are hidden
// from lookups until the service is activated again with SetFee. The
// second call in a row is a no-op. Operator must sign the invocation and
// hold the Operator role.
//
// Produces ServiceDeactivated notification.
func DelDDC(operator interop.Hash160, service interop.Hash160) {
	ctx := storage.GetContext()
	checkOperator(ctx, operator)

	if common.IsNullAddress(service) {
		panic(ErrInvalidAccount)
	}

	storage.Put(ctx, activeServiceKey(service), false)

	runtime.Notify("ServiceDeactivated", service)
}

// QueryFee returns the fee the active service registered for the
// operation selector, zero if the selector was never set or was deleted.
func QueryFee(service interop.Hash160, selector []byte) int {
	ctx := storage.GetReadOnlyContext()
	return activeFee(ctx, service, selector)
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

func checkOperator(ctx storage.Context, operator interop.Hash160) {
	common.CheckWitness(operator)

	authority := storage.Get(ctx, authorityKey).(interop.Hash160)
	if !common.CheckRole(authority, operator, common.RoleOperator) {
		panic(ErrUnauthorized)
	}
}

// transfer debits from and credits to within the same storage context, so
// the pair applies atomically or the whole invocation aborts. Nil from is
// the mint path: only the credit happens and total issued grows.
func transfer(ctx storage.Context, from, to interop.Hash160, amount int) {
	if len(from) == 0 {
		issued := totalIssued(ctx) + amount
		if issued > maxBalance {
			panic(ErrOverflow)
		}
		storage.Put(ctx, totalIssuedKey, issued)
	} else {
		fromBalance := balanceOf(ctx, from)
		if fromBalance < amount {
			panic(ErrInsufficientBalance)
		}

		if fromBalance == amount {
			storage.Delete(ctx, balanceKey(from))
		} else {
			storage.Put(ctx, balanceKey(from), fromBalance-amount)
		}
	}

	toBalance := balanceOf(ctx, to) + amount
	if toBalance > maxBalance {
		panic(ErrOverflow)
	}
	storage.Put(ctx, balanceKey(to), toBalance)
}

// activeFee looks up the selector fee refusing inactive and unregistered
// services.
func activeFee(ctx storage.Context, service interop.Hash160, selector []byte) int {
	if common.IsNullAddress(service) {
		panic(ErrInvalidAccount)
	}
	if len(selector) != SelectorLen {
		panic(ErrInvalidSelector)
	}
	if !isActiveService(ctx, service) {
		panic(ErrServiceUnavailable)
	}

	fee := storage.Get(ctx, feeKey(service, selector))
	if fee == nil {
		return 0
	}
	return fee.(int)
}

func isActiveService(ctx storage.Context, service interop.Hash160) bool {
	if common.IsNullAddress(service) {
		return false
	}

	active := storage.Get(ctx, activeServiceKey(service))
	return active != nil && active.(bool)
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	balance := storage.Get(ctx, balanceKey(account))
	if balance == nil {
		return 0
	}
	return balance.(int)
}

func totalIssued(ctx storage.Context) int {
	issued := storage.Get(ctx, totalIssuedKey)
	if issued == nil {
		return 0
	}
	return issued.(int)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func feeKey(service interop.Hash160, selector []byte) []byte {
	return append(append([]byte{feePrefix}, service...), selector...)
}

func activeServiceKey(service interop.Hash160) []byte {
	return append([]byte{activePrefix}, service...)
}

func nullAddress() interop.Hash160 {
	return make([]byte, interop.Hash160Len)
}
