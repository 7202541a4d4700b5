package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ddcnet/charge-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the deployer wallet file")
	walletPassword := flag.String("password", "", "Password of the deployer wallet account")
	nefPath := flag.String("nef", "contract.nef", "Path to the compiled Charge contract NEF")
	manifestPath := flag.String("manifest", "manifest.json", "Path to the Charge contract manifest")
	authorityAddr := flag.String("authority", "", "Address of the Authority contract (LE hex)")
	ownerAddr := flag.String("owner", "", "Contract owner address (LE hex, defaults to the deployer)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	case *authorityAddr == "":
		log.Fatal("missing Authority contract address")
	}

	err := _deploy(*neoRPCEndpoint, *walletPath, *walletPassword, *nefPath, *manifestPath, *authorityAddr, *ownerAddr)
	if err != nil {
		log.Fatal(err)
	}
}

func _deploy(neoRPCEndpoint, walletPath, walletPassword, nefPath, manifestPath, authorityAddr, ownerAddr string) error {
	ctx := context.Background()

	authority, err := util.Uint160DecodeStringLE(authorityAddr)
	if err != nil {
		return fmt.Errorf("decode Authority contract address: %w", err)
	}

	var owner util.Uint160
	if ownerAddr != "" {
		owner, err = util.Uint160DecodeStringLE(ownerAddr)
		if err != nil {
			return fmt.Errorf("decode owner address: %w", err)
		}
	}

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open deployer wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("deployer wallet '%s' has no usable account", walletPath)
	}

	err = acc.Decrypt(walletPassword, w.Scrypt)
	if err != nil {
		return fmt.Errorf("unlock deployer account: %w", err)
	}

	nefBytes, err := os.ReadFile(nefPath)
	if err != nil {
		return fmt.Errorf("read compiled contract: %w", err)
	}

	nefFile, err := nef.FileFromBytes(nefBytes)
	if err != nil {
		return fmt.Errorf("parse NEF: %w", err)
	}

	manifestBytes, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read contract manifest: %w", err)
	}

	var m manifest.Manifest
	err = json.Unmarshal(manifestBytes, &m)
	if err != nil {
		return fmt.Errorf("parse contract manifest: %w", err)
	}

	c, err := rpcclient.New(ctx, neoRPCEndpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init Neo RPC client: %w", err)
	}

	defer c.Close()

	if err = c.Init(); err != nil {
		return fmt.Errorf("initialize Neo RPC client: %w", err)
	}

	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	defer func() { _ = l.Sync() }()

	addr, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:            l,
		Blockchain:        c,
		LocalAccount:      acc,
		NEF:               nefFile,
		Manifest:          m,
		Owner:             owner,
		AuthorityContract: authority,
	})
	if err != nil {
		return err
	}

	log.Printf("Charge contract is on the chain at %s\n", addr.StringLE())

	return nil
}
