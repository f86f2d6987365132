package contract

import "cosmossdk.io/math"

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// StableUnit is the minor-unit factor of the stable denom (1 unit = 1e6 uusd).
// The same factor scales the exchange rate for integer arithmetic.
const StableUnit = 1_000_000

// RateDecimals is how many fractional digits of the oracle's decimal rate
// survive the conversion to a scaled integer.
const RateDecimals = 6

// -----------------------------------------------------------------------------
// Contribution Fee Policy
// -----------------------------------------------------------------------------

const (
	// MinContributionUnits is the floor below which a backing is rejected.
	MinContributionUnits = 6
	// LargeContributionUnits switches the fee formula to the percentage split.
	LargeContributionUnits = 100
	// FlatFeeUnits is subtracted from the 5% platform cut on large backings.
	FlatFeeUnits = 4
	// SmallDeductionUnits comes off a small backing outright.
	SmallDeductionUnits = 5
	// SmallFeeUnits is the platform's share of a small backing.
	SmallFeeUnits = 1
	// SweepReserveUnits stays behind on an owner sweep to cover gas.
	SweepReserveUnits = 4
)

// scaleToMinor converts whole stable units into minor units.
func scaleToMinor(units math.Uint) math.Uint {
	return units.Mul(math.NewUint(StableUnit))
}
