package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// MockENV is a settable env source so tests can impersonate senders and
// attach funds per call.
type MockENV struct {
	Env sdk.Env
}

func NewMockENV() *MockENV {
	return &MockENV{
		Env: sdk.Env{
			ContractId:  "terra1platformcontract",
			TxId:        "test-tx",
			BlockHeight: 1,
			Timestamp:   "2022-01-01T00:00:00Z",
			Sender:      "terra1testsender",
		},
	}
}

func (m *MockENV) GetEnv() sdk.Env {
	return m.Env
}

// SetSender switches the impersonated caller for subsequent calls.
func (m *MockENV) SetSender(addr sdk.Address) *MockENV {
	m.Env.Sender = addr
	return m
}

// SetStableFunds attaches a single stable coin to the next call.
func (m *MockENV) SetStableFunds(amount math.Uint) *MockENV {
	m.Env.Funds = []sdk.Coin{sdk.NewCoin(sdk.AssetStable, amount)}
	return m
}

// ClearFunds drops all attached coins.
func (m *MockENV) ClearFunds() *MockENV {
	m.Env.Funds = nil
	return m
}
