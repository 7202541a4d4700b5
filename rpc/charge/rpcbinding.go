// Package charge contains RPC wrappers for DDC Charge contract.
package charge

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// RechargedEvent represents "Recharged" event emitted by the contract.
type RechargedEvent struct {
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// PaidEvent represents "Paid" event emitted by the contract.
type PaidEvent struct {
	Payer     util.Uint160
	Payee     util.Uint160
	Selector  []byte
	Amount    *big.Int
	RequestId *big.Int
}

// SettledEvent represents "Settled" event emitted by the contract.
type SettledEvent struct {
	Caller  util.Uint160
	Service util.Uint160
	Amount  *big.Int
}

// FeeSetEvent represents "FeeSet" event emitted by the contract.
type FeeSetEvent struct {
	Service  util.Uint160
	Selector []byte
	Amount   *big.Int
}

// FeeDeletedEvent represents "FeeDeleted" event emitted by the contract.
type FeeDeletedEvent struct {
	Service  util.Uint160
	Selector []byte
}

// ServiceDeactivatedEvent represents "ServiceDeactivated" event emitted by the contract.
type ServiceDeactivatedEvent struct {
	Service util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AuthorityContract invokes `authorityContract` method of contract.
func (c *ContractReader) AuthorityContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "authorityContract"))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", account))
}

// QueryFee invokes `queryFee` method of contract.
func (c *ContractReader) QueryFee(service util.Uint160, selector []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "queryFee", service, selector))
}

// TotalIssued invokes `totalIssued` method of contract.
func (c *ContractReader) TotalIssued() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalIssued"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// DelDDC creates a transaction invoking `delDDC` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DelDDC(operator util.Uint160, service util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "delDDC", operator, service)
}

// DelDDCTransaction creates a transaction invoking `delDDC` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DelDDCTransaction(operator util.Uint160, service util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "delDDC", operator, service)
}

// DelDDCUnsigned creates a transaction invoking `delDDC` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DelDDCUnsigned(operator util.Uint160, service util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "delDDC", nil, operator, service)
}

// DelFee creates a transaction invoking `delFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DelFee(operator util.Uint160, service util.Uint160, selector []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "delFee", operator, service, selector)
}

// DelFeeTransaction creates a transaction invoking `delFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DelFeeTransaction(operator util.Uint160, service util.Uint160, selector []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "delFee", operator, service, selector)
}

// DelFeeUnsigned creates a transaction invoking `delFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DelFeeUnsigned(operator util.Uint160, service util.Uint160, selector []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "delFee", nil, operator, service, selector)
}

// Pay creates a transaction invoking `pay` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pay(service util.Uint160, payer util.Uint160, selector []byte, requestID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pay", service, payer, selector, requestID)
}

// PayTransaction creates a transaction invoking `pay` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayTransaction(service util.Uint160, payer util.Uint160, selector []byte, requestID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pay", service, payer, selector, requestID)
}

// PayUnsigned creates a transaction invoking `pay` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayUnsigned(service util.Uint160, payer util.Uint160, selector []byte, requestID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pay", nil, service, payer, selector, requestID)
}

// Recharge creates a transaction invoking `recharge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Recharge(from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recharge", from, to, amount)
}

// RechargeTransaction creates a transaction invoking `recharge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RechargeTransaction(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recharge", from, to, amount)
}

// RechargeUnsigned creates a transaction invoking `recharge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RechargeUnsigned(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recharge", nil, from, to, amount)
}

// SelfRecharge creates a transaction invoking `selfRecharge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SelfRecharge(operator util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "selfRecharge", operator, amount)
}

// SelfRechargeTransaction creates a transaction invoking `selfRecharge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SelfRechargeTransaction(operator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "selfRecharge", operator, amount)
}

// SelfRechargeUnsigned creates a transaction invoking `selfRecharge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SelfRechargeUnsigned(operator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "selfRecharge", nil, operator, amount)
}

// SetAuthorityContract creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAuthorityContract(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAuthorityContract", addr)
}

// SetAuthorityContractTransaction creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAuthorityContractTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAuthorityContract", addr)
}

// SetAuthorityContractUnsigned creates a transaction invoking `setAuthorityContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAuthorityContractUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAuthorityContract", nil, addr)
}

// SetFee creates a transaction invoking `setFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFee(operator util.Uint160, service util.Uint160, selector []byte, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFee", operator, service, selector, amount)
}

// SetFeeTransaction creates a transaction invoking `setFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeTransaction(operator util.Uint160, service util.Uint160, selector []byte, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFee", operator, service, selector, amount)
}

// SetFeeUnsigned creates a transaction invoking `setFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeUnsigned(operator util.Uint160, service util.Uint160, selector []byte, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFee", nil, operator, service, selector, amount)
}

// Settlement creates a transaction invoking `settlement` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Settlement(operator util.Uint160, service util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settlement", operator, service, amount)
}

// SettlementTransaction creates a transaction invoking `settlement` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettlementTransaction(operator util.Uint160, service util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settlement", operator, service, amount)
}

// SettlementUnsigned creates a transaction invoking `settlement` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettlementUnsigned(operator util.Uint160, service util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settlement", nil, operator, service, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}
