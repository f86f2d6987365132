package contract

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// HostInterface covers every synchronous collaborator read the engine needs
// before it can commit a state change: token balances and metadata, the money
// market's oracle rate, and native bank balances. All of them must succeed or
// the whole call aborts; there is no fallback value for a failed query.
type HostInterface interface {
	Log(msg string)
	TokenBalance(token, holder sdk.Address) (math.Uint, error)
	TokenDecimals(token sdk.Address) (uint32, error)
	EpochRate(market sdk.Address) (string, error)
	NativeBalances(wallet sdk.Address) ([]sdk.Coin, error)
}

var hostInterface HostInterface

func InitHost(localDebug bool) {
	if localDebug {
		hostInterface = NewMockHost()
	} else {
		hostInterface = &RealHost{}
	}
}

func getHost() HostInterface {
	return hostInterface
}

// RealHost queries collaborators through the host's synchronous contract
// query import.
type RealHost struct{}

func (r *RealHost) Log(msg string) {
	sdk.Log(msg)
}

type balanceQuery struct {
	Balance struct {
		Address string `json:"address"`
	} `json:"balance"`
}

type balanceResponse struct {
	Balance math.Uint `json:"balance"`
}

func (r *RealHost) TokenBalance(token, holder sdk.Address) (math.Uint, error) {
	var q balanceQuery
	q.Balance.Address = holder.String()
	var resp balanceResponse
	if err := queryJSON(token, q, &resp); err != nil {
		return math.ZeroUint(), err
	}
	return resp.Balance, nil
}

type tokenInfoQuery struct {
	TokenInfo struct{} `json:"token_info"`
}

type tokenInfoResponse struct {
	Decimals uint32 `json:"decimals"`
}

func (r *RealHost) TokenDecimals(token sdk.Address) (uint32, error) {
	var resp tokenInfoResponse
	if err := queryJSON(token, tokenInfoQuery{}, &resp); err != nil {
		return 0, err
	}
	return resp.Decimals, nil
}

type epochStateQuery struct {
	EpochState struct{} `json:"epoch_state"`
}

type epochStateResponse struct {
	ExchangeRate string `json:"exchange_rate"`
}

func (r *RealHost) EpochRate(market sdk.Address) (string, error) {
	var resp epochStateResponse
	if err := queryJSON(market, epochStateQuery{}, &resp); err != nil {
		return "", err
	}
	return resp.ExchangeRate, nil
}

func (r *RealHost) NativeBalances(wallet sdk.Address) ([]sdk.Coin, error) {
	return sdk.GetBalances(wallet), nil
}

// queryJSON round-trips one synchronous smart query against a collaborator.
func queryJSON(target sdk.Address, query any, out any) error {
	payload, err := json.Marshal(query)
	if err != nil {
		return ErrHostQuery.Wrapf("encode query for %s: %v", target, err)
	}
	raw := sdk.ContractQuery(target, string(payload))
	if raw == nil || *raw == "" {
		return ErrHostQuery.Wrapf("no response from %s for %s", target, string(payload))
	}
	if err := json.Unmarshal([]byte(*raw), out); err != nil {
		return ErrHostQuery.Wrapf("decode response from %s: %v", target, err)
	}
	return nil
}
