package contract

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalRate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1000000"},
		{"1.0", "1000000"},
		{"1.2", "1200000"},
		{"1.234567", "1234567"},
		{"1.23456789", "1234567"}, // extra digits truncate
		{"0.000001", "1"},
		{"0.0000001", "0"},
		{"12.5", "12500000"},
	}
	for _, tc := range cases {
		got, err := parseDecimalRate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got.String(), tc.in)
	}
}

func TestParseDecimalRateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2x", "-1.0"} {
		_, err := parseDecimalRate(in)
		require.Error(t, err, in)
	}
}

func setupReleasingProject(t *testing.T) (*MockENV, *MockHost, uint64) {
	env, host := setupTest(t)
	id := addTestProject(t, 300, 100, 200)
	approveProject(t, env, id)
	_, err := addCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.NoError(t, err)
	backProject(t, env, id, aliceAddr, 105)
	backProject(t, env, id, bobAddr, 210)
	env.SetSender(carolAddr).SetStableFunds(ust(210))
	_, err = back2Project(&BackProjectArgs{ProjectID: id, BackerWallet: carolAddr})
	require.NoError(t, err)
	env.ClearFunds()
	require.Equal(t, StatusReleasing, mustLoadProject(t, id).Status)
	return env, host, id
}

func TestEstimateReleasePoolAhead(t *testing.T) {
	_, host, _ := setupReleasingProject(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	// outstanding is 500 units; a pool of 400 yield tokens at oracle 1.2
	// means the platform rate (1.25) wins and prices the withdraw
	host.SetTokenBalance(austAddr, platformAddr, ust(400))
	host.Rate = "1.2"

	est, err := estimateRelease(cfg, ust(100))
	require.NoError(t, err)
	assert.Equal(t, "1250000", est.EstimatedRate.String())
	assert.Equal(t, "1200000", est.OracleRate.String())
	assert.Equal(t, "1250000", est.EffectiveRate.String())
	assert.Equal(t, ust(80).String(), est.Withdraw.String())
	assert.Equal(t, ust(96).String(), est.Actual.String())
	assert.True(t, est.Actual.LTE(ust(100)), "payout never exceeds the target")
}

func TestEstimateReleaseOracleAhead(t *testing.T) {
	_, host, _ := setupReleasingProject(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	// a flush pool drops the platform rate below the oracle, the oracle
	// rate takes over and the payout matches the target exactly
	host.SetTokenBalance(austAddr, platformAddr, ust(1000))
	host.Rate = "1.2"

	est, err := estimateRelease(cfg, ust(120))
	require.NoError(t, err)
	assert.Equal(t, "500000", est.EstimatedRate.String())
	assert.Equal(t, "1200000", est.EffectiveRate.String())
	assert.Equal(t, ust(100).String(), est.Withdraw.String())
	assert.Equal(t, ust(120).String(), est.Actual.String())
}

func TestEstimateReleaseEmptyPool(t *testing.T) {
	_, host, _ := setupReleasingProject(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	host.SetTokenBalance(austAddr, platformAddr, math.ZeroUint())
	_, err = estimateRelease(cfg, ust(100))
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestEstimateReleaseZeroRate(t *testing.T) {
	_, host, _ := setupReleasingProject(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	host.SetTokenBalance(austAddr, platformAddr, ust(400))
	host.Rate = "0.0"
	_, err = estimateRelease(cfg, ust(100))
	require.ErrorIs(t, err, ErrZeroRate)
}

func TestTotalOutstandingTracksReleases(t *testing.T) {
	env, host, id := setupReleasingProject(t)

	total, err := totalOutstanding()
	require.NoError(t, err)
	assert.Equal(t, ust(500).String(), total.String())

	host.SetTokenBalance(austAddr, platformAddr, ust(1000))
	host.Rate = "1.0"
	env.SetSender(ownerAddr)
	_, err = releaseMilestone(&ProjectIDArgs{ProjectID: id})
	require.NoError(t, err)

	total, err = totalOutstanding()
	require.NoError(t, err)
	assert.Equal(t, ust(400).String(), total.String(), "released tranche leaves the obligation")
}
