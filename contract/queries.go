package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// -----------------------------------------------------------------------------
// Read-only Queries
// -----------------------------------------------------------------------------

// query serializes a read-only result, reverting on lookup failure.
func query(handler func() (any, error)) *string {
	v, err := handler()
	if err != nil {
		sdk.Revert(err.Error(), Codespace)
		return nil
	}
	out, err := ToJSON(v, "query result")
	if err != nil {
		sdk.Revert(err.Error(), Codespace)
		return nil
	}
	return strptr(out)
}

// GetConfig returns the platform configuration.
//
//go:wasmexport get_config
func GetConfig(_ *string) *string {
	return query(func() (any, error) {
		return loadConfig()
	})
}

// GetProject returns one full project record.
//
//go:wasmexport get_project
func GetProject(payload *string) *string {
	return query(func() (any, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return loadProject(args.ProjectID)
	})
}

// GetAllProject returns every project record in id order.
//
//go:wasmexport get_all_project
func GetAllProject(_ *string) *string {
	return query(func() (any, error) {
		return listAllProjects()
	})
}

// BackerResult splits a project's ledger by track.
type BackerResult struct {
	ProjectID        uint64         `json:"project_id"`
	Backers          []Contribution `json:"backer_states"`
	CommunityBackers []Contribution `json:"communitybacker_states"`
}

// GetBacker returns both contribution tracks of a project.
//
//go:wasmexport get_backer
func GetBacker(payload *string) *string {
	return query(func() (any, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		prj, err := loadProject(args.ProjectID)
		if err != nil {
			return nil, err
		}
		return &BackerResult{
			ProjectID:        prj.ID,
			Backers:          prj.Backers,
			CommunityBackers: prj.CommunityBackers,
		}, nil
	})
}

// GetCommunitymembers returns the community track registry.
//
//go:wasmexport get_communitymembers
func GetCommunitymembers(_ *string) *string {
	return query(func() (any, error) {
		return loadCommunity()
	})
}

// BalanceResult is a wallet's native holdings plus, for the platform account,
// its pooled yield token position.
type BalanceResult struct {
	Wallet sdk.Address `json:"wallet"`
	Native []sdk.Coin  `json:"native"`
	Yield  sdk.Coin    `json:"yield"`
}

// GetBalance reports a wallet's balances as the host sees them.
//
//go:wasmexport get_balance
func GetBalance(payload *string) *string {
	return query(func() (any, error) {
		args, err := decodeArgs[WalletArgs](payload, "wallet args")
		if err != nil {
			return nil, err
		}
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		natives, err := getHost().NativeBalances(args.Wallet)
		if err != nil {
			return nil, err
		}
		result := &BalanceResult{
			Wallet: args.Wallet,
			Native: natives,
			Yield:  sdk.NewCoin(sdk.AssetYield, math.ZeroUint()),
		}
		if !cfg.AustToken.IsEmpty() {
			pool, err := getHost().TokenBalance(cfg.AustToken, args.Wallet)
			if err != nil {
				return nil, err
			}
			result.Yield = sdk.NewCoin(sdk.AssetYield, pool)
		}
		return result, nil
	})
}
