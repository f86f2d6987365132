package sdk

import "cosmossdk.io/math"

type Asset string

const (
	// AssetStable is the native stable denom every contribution arrives in.
	AssetStable Asset = "uusd"
	// AssetYield is the yield-bearing token the money market mints on deposit.
	AssetYield Asset = "aust"
)

// String returns the raw denom string for logging or host calls.
// Example payload: sdk.AssetStable.String()
func (a Asset) String() string {
	return string(a)
}

// Coin pairs a denom with an amount in minor units. Amounts marshal as
// decimal strings so the host never sees floating point.
type Coin struct {
	Denom  Asset     `json:"denom"`
	Amount math.Uint `json:"amount"`
}

// NewCoin wraps denom plus amount, nothing fancy but keeps call sites short.
// Example payload: sdk.NewCoin(sdk.AssetStable, math.NewUint(5_000_000))
func NewCoin(denom Asset, amount math.Uint) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// IsZero reports whether the coin carries no value.
func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}
