// Package deploy provides chain deployment of the DDC Charge contract.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// required for the Charge contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups the parameters of the Charge contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Compiled Charge contract.
	NEF      nef.File
	Manifest manifest.Manifest

	// Owner of the deployed contract, allowed to update it and to replace
	// the Authority contract address. Defaults to the local account.
	Owner util.Uint160

	// Address of the Authority contract the Charge contract consults for
	// roles and account snapshots.
	AuthorityContract util.Uint160
}

// Deploy deploys the Charge contract represented by given Prm on the chain
// and returns its address. Deploy is idempotent: a contract already present
// on the chain is left as is, so the procedure may be safely re-run after a
// failure. Deployment progress is logged in detail.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	switch {
	case prm.Blockchain == nil:
		return util.Uint160{}, errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return util.Uint160{}, errors.New("missing local account")
	case prm.AuthorityContract.Equals(util.Uint160{}):
		return util.Uint160{}, errors.New("missing authority contract address")
	}

	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	owner := prm.Owner
	if owner.Equals(util.Uint160{}) {
		owner = prm.LocalAccount.ScriptHash()
	}

	onChainAddress := state.CreateContractHash(
		prm.LocalAccount.ScriptHash(), prm.NEF.Checksum, prm.Manifest.Name)

	deployed, err := isDeployed(prm.Blockchain, onChainAddress)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check %s contract presence on the chain: %w", prm.Manifest.Name, err)
	}
	if deployed {
		l.Info("contract is already deployed on the chain, skipping",
			zap.String("name", prm.Manifest.Name), zap.Stringer("address", onChainAddress))
		return onChainAddress, nil
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment: %w", err)
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	l.Info("sending deployment transaction...",
		zap.String("name", prm.Manifest.Name),
		zap.Stringer("owner", owner),
		zap.Stringer("authority", prm.AuthorityContract))

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest,
		[]interface{}{owner, prm.AuthorityContract})
	aer, err := act.Wait(txHash, vub, err)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("deploy %s contract: %w", prm.Manifest.Name, err)
	}
	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deploy %s contract: fault exception: %s",
			prm.Manifest.Name, aer.FaultException)
	}

	l.Info("contract successfully deployed on the chain",
		zap.String("name", prm.Manifest.Name), zap.Stringer("address", onChainAddress))

	return onChainAddress, nil
}

func isDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	cs, err := b.GetContractStateByHash(addr)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown contract") {
			return false, nil
		}
		return false, err
	}
	return cs != nil, nil
}
