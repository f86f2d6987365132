package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// -----------------------------------------------------------------------------
// Export plumbing
// -----------------------------------------------------------------------------

// execute runs a handler and converts its outcome into the wasm call result:
// errors revert the call with the registered error text, success returns the
// serialized response with its instruction outbox.
func execute(handler func() (*Response, error)) *string {
	resp, err := handler()
	if err != nil {
		sdk.Revert(err.Error(), Codespace)
		return nil
	}
	if resp == nil {
		resp = NewResponse()
	}
	out, err := ToJSON(resp, "response")
	if err != nil {
		sdk.Revert(err.Error(), Codespace)
		return nil
	}
	return strptr(out)
}

// decodeArgs parses the inbound payload for an execute entry point.
func decodeArgs[T any](payload *string, objectType string) (*T, error) {
	if payload == nil || *payload == "" {
		return nil, ErrMalformedState.Wrapf("missing %s payload", objectType)
	}
	return FromJSON[T](*payload, objectType)
}

// -----------------------------------------------------------------------------
// Instantiate / Configuration
// -----------------------------------------------------------------------------

// Instantiate stores the initial platform configuration. The sender becomes
// owner unless an admin override is given; the collaborator addresses may be
// wired later through SetConfig.
//
//go:wasmexport instantiate
func Instantiate(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[InstantiateArgs](payload, "instantiate args")
		if err != nil {
			return nil, err
		}
		return instantiate(args)
	})
}

func instantiate(args *InstantiateArgs) (*Response, error) {
	if isInitialized() {
		return nil, ErrAlreadyInitialized
	}
	cfg := Config{Owner: getSenderAddress()}
	if args.Admin != nil {
		cfg.Owner = *args.Admin
	}
	cfg.Wefund = cfg.Owner
	if err := applyConfigOverrides(&cfg, args.Wefund, args.AnchorMarket, args.AustToken, args.VestingContract); err != nil {
		return nil, err
	}
	if err := saveConfig(&cfg); err != nil {
		return nil, err
	}
	setCount(ProjectSeqKey, 0)
	return NewResponse().addAttribute("owner", cfg.Owner.String()), nil
}

// SetConfig patches the platform configuration. Absent fields keep their
// stored value.
//
//go:wasmexport set_config
func SetConfig(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[SetConfigArgs](payload, "set config args")
		if err != nil {
			return nil, err
		}
		return setConfig(args)
	})
}

func setConfig(args *SetConfigArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	if args.Admin != nil {
		if !args.Admin.IsValid() {
			return nil, ErrInvalidAddress.Wrapf("admin %q", args.Admin.String())
		}
		cfg.Owner = *args.Admin
	}
	if err := applyConfigOverrides(cfg, args.Wefund, args.AnchorMarket, args.AustToken, args.VestingContract); err != nil {
		return nil, err
	}
	if err := saveConfig(cfg); err != nil {
		return nil, err
	}
	return NewResponse().addAttribute("owner", cfg.Owner.String()), nil
}

func applyConfigOverrides(cfg *Config, wefund, market, aust, vesting *sdk.Address) error {
	for _, f := range []struct {
		name string
		src  *sdk.Address
		dst  *sdk.Address
	}{
		{"wefund", wefund, &cfg.Wefund},
		{"anchor_market", market, &cfg.AnchorMarket},
		{"aust_token", aust, &cfg.AustToken},
		{"vesting_contract", vesting, &cfg.VestingContract},
	} {
		if f.src == nil {
			continue
		}
		if !f.src.IsValid() {
			return ErrInvalidAddress.Wrapf("%s %q", f.name, f.src.String())
		}
		*f.dst = *f.src
	}
	return nil
}

// -----------------------------------------------------------------------------
// Owner Sweep
// -----------------------------------------------------------------------------

// TransferAllCoins drains the platform accounts to a wallet: every native
// balance except a small stable reserve for gas, plus the full yield token
// position. Recovery hatch, owner only.
//
//go:wasmexport transfer_all_coins
func TransferAllCoins(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[WalletArgs](payload, "wallet args")
		if err != nil {
			return nil, err
		}
		return transferAllCoins(args)
	})
}

func transferAllCoins(args *WalletArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	if !args.Wallet.IsValid() {
		return nil, ErrInvalidAddress.Wrapf("sweep target %q", args.Wallet.String())
	}

	natives, err := getHost().NativeBalances(contractAddress())
	if err != nil {
		return nil, err
	}
	reserve := scaleToMinor(math.NewUint(SweepReserveUnits))
	var send []sdk.Coin
	for _, coin := range natives {
		amount := coin.Amount
		if coin.Denom == sdk.AssetStable {
			if amount.LTE(reserve) {
				return nil, ErrNeedCoin.Wrapf(
					"stable balance %s does not cover the %s reserve",
					amount.String(), reserve.String())
			}
			amount = amount.Sub(reserve)
		}
		if amount.IsZero() {
			continue
		}
		send = append(send, sdk.NewCoin(coin.Denom, amount))
	}

	resp := NewResponse()
	if len(send) > 0 {
		resp.queueBankSend(args.Wallet, send...)
	}
	if !cfg.AustToken.IsEmpty() {
		pool, err := getHost().TokenBalance(cfg.AustToken, contractAddress())
		if err != nil {
			return nil, err
		}
		if !pool.IsZero() {
			resp.queueTokenTransfer(cfg.AustToken, args.Wallet, pool)
		}
	}
	emitSweep(args.Wallet.String())
	return resp.addAttribute("to", args.Wallet.String()), nil
}
