package contract

import (
	"strings"

	"cosmossdk.io/math"
)

// releaseEstimate is the result of sizing a single treasury redemption. All
// rates are scaled by StableUnit.
type releaseEstimate struct {
	// Withdraw is the yield token amount to redeem at the market.
	Withdraw math.Uint
	// Actual is the stable amount expected back at the oracle rate. Always
	// at most the requested target because the effective rate never drops
	// below the oracle rate.
	Actual math.Uint
	// EstimatedRate is total outstanding obligations over the pool balance.
	EstimatedRate math.Uint
	// OracleRate is the market epoch exchange rate.
	OracleRate math.Uint
	// EffectiveRate is the larger of the two, used for the withdraw size.
	EffectiveRate math.Uint
}

// parseDecimalRate converts a decimal string like "1.2345678" into an
// integer scaled by RateDecimals, truncating extra fractional digits.
func parseDecimalRate(s string) (math.Uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.ZeroUint(), ErrZeroRate.Wrap("empty rate string")
	}
	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
	}
	if len(frac) > RateDecimals {
		frac = frac[:RateDecimals]
	}
	result := math.ZeroUint()
	ten := math.NewUint(10)
	for i := 0; i < len(whole); i++ {
		c := whole[i]
		if c < '0' || c > '9' {
			return math.ZeroUint(), ErrHostQuery.Wrapf("bad rate string %q", s)
		}
		result = result.Mul(ten).Add(math.NewUint(uint64(c - '0')))
	}
	for i := 0; i < RateDecimals; i++ {
		result = result.Mul(ten)
		if i < len(frac) {
			c := frac[i]
			if c < '0' || c > '9' {
				return math.ZeroUint(), ErrHostQuery.Wrapf("bad rate string %q", s)
			}
			result = result.Add(math.NewUint(uint64(c - '0')))
		}
	}
	return result, nil
}

// totalOutstanding sums the not yet released obligations across every
// project. Terminal projects still count until removed, which keeps the
// estimate conservative.
func totalOutstanding() (math.Uint, error) {
	projects, err := listAllProjects()
	if err != nil {
		return math.ZeroUint(), err
	}
	total := math.ZeroUint()
	for _, p := range projects {
		total = total.Add(p.Outstanding())
	}
	return total, nil
}

// oracleRate fetches and parses the market's current epoch exchange rate.
func oracleRate(cfg *Config) (math.Uint, error) {
	raw, err := getHost().EpochRate(cfg.AnchorMarket)
	if err != nil {
		return math.ZeroUint(), err
	}
	rate, err := parseDecimalRate(raw)
	if err != nil {
		return math.ZeroUint(), err
	}
	if rate.IsZero() {
		return math.ZeroUint(), ErrZeroRate.Wrap("market reported zero exchange rate")
	}
	return rate, nil
}

// estimateRelease sizes the yield token redemption needed to pay out target
// stable units. The pool is shared across projects, so the withdraw is
// priced at the platform's own obligations-over-balance rate whenever that
// exceeds the oracle rate; the surplus stays in the pool as a buffer.
func estimateRelease(cfg *Config, target math.Uint) (*releaseEstimate, error) {
	pool, err := getHost().TokenBalance(cfg.AustToken, contractAddress())
	if err != nil {
		return nil, err
	}
	if pool.IsZero() {
		return nil, ErrEmptyPool.Wrap("no yield tokens held")
	}
	outstanding, err := totalOutstanding()
	if err != nil {
		return nil, err
	}
	estimated := outstanding.Mul(math.NewUint(StableUnit)).Quo(pool)

	oracle, err := oracleRate(cfg)
	if err != nil {
		return nil, err
	}

	effective := math.MaxUint(estimated, oracle)
	withdraw := target.Mul(math.NewUint(StableUnit)).Quo(effective)
	actual := withdraw.Mul(oracle).Quo(math.NewUint(StableUnit))

	return &releaseEstimate{
		Withdraw:      withdraw,
		Actual:        actual,
		EstimatedRate: estimated,
		OracleRate:    oracle,
		EffectiveRate: effective,
	}, nil
}
