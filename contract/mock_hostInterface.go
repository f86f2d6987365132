package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// MockHost lets tests pin every collaborator answer: token balances per
// holder, token decimals, the market's oracle rate string and native bank
// balances. Queries for unknown targets fail like the real host would.
type MockHost struct {
	TokenBalances map[string]math.Uint // key: token|holder
	Decimals      map[string]uint32
	Rate          string
	Balances      map[string][]sdk.Coin
	Logs          []string
}

func NewMockHost() *MockHost {
	return &MockHost{
		TokenBalances: map[string]math.Uint{},
		Decimals:      map[string]uint32{},
		Rate:          "1.0",
		Balances:      map[string][]sdk.Coin{},
	}
}

func tokenHolderKey(token, holder sdk.Address) string {
	return token.String() + "|" + holder.String()
}

// SetTokenBalance pins the balance a token contract reports for a holder.
func (m *MockHost) SetTokenBalance(token, holder sdk.Address, amount math.Uint) {
	m.TokenBalances[tokenHolderKey(token, holder)] = amount
}

func (m *MockHost) Log(msg string) {
	m.Logs = append(m.Logs, msg)
}

func (m *MockHost) TokenBalance(token, holder sdk.Address) (math.Uint, error) {
	bal, ok := m.TokenBalances[tokenHolderKey(token, holder)]
	if !ok {
		return math.ZeroUint(), ErrHostQuery.Wrapf("no balance pinned for %s", token)
	}
	return bal, nil
}

func (m *MockHost) TokenDecimals(token sdk.Address) (uint32, error) {
	dec, ok := m.Decimals[token.String()]
	if !ok {
		return 0, ErrHostQuery.Wrapf("no token info pinned for %s", token)
	}
	return dec, nil
}

func (m *MockHost) EpochRate(market sdk.Address) (string, error) {
	if m.Rate == "" {
		return "", ErrHostQuery.Wrapf("no epoch state pinned for %s", market)
	}
	return m.Rate, nil
}

func (m *MockHost) NativeBalances(wallet sdk.Address) ([]sdk.Coin, error) {
	return m.Balances[wallet.String()], nil
}
