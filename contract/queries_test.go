package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

func TestGetConfigQuery(t *testing.T) {
	setupTest(t)
	out := GetConfig(nil)
	require.NotNil(t, out)
	cfg, err := FromJSON[Config](*out, "config")
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, cfg.Owner)
}

func TestGetProjectQuery(t *testing.T) {
	setupTest(t)
	id := addTestProject(t, 300, 100, 200)

	payload, err := ToJSON(&ProjectIDArgs{ProjectID: id}, "args")
	require.NoError(t, err)
	out := GetProject(&payload)
	require.NotNil(t, out)
	prj, err := FromJSON[Project](*out, "project")
	require.NoError(t, err)
	assert.Equal(t, id, prj.ID)
	assert.Equal(t, StatusWefundVote, prj.Status)
}

func TestGetAllProjectQuery(t *testing.T) {
	setupTest(t)
	addTestProject(t, 300, 100, 200)
	addTestProject(t, 400, 400)

	out := GetAllProject(nil)
	require.NotNil(t, out)
	all, err := FromJSON[[]*Project](*out, "projects")
	require.NoError(t, err)
	require.Len(t, *all, 2)
}

func TestGetBackerQuery(t *testing.T) {
	env, _ := setupTest(t)
	id := addTestProject(t, 300, 100, 200)
	approveProject(t, env, id)
	backProject(t, env, id, aliceAddr, 105)

	payload, err := ToJSON(&ProjectIDArgs{ProjectID: id}, "args")
	require.NoError(t, err)
	out := GetBacker(&payload)
	require.NotNil(t, out)
	result, err := FromJSON[BackerResult](*out, "backers")
	require.NoError(t, err)
	require.Len(t, result.Backers, 1)
	assert.Equal(t, aliceAddr, result.Backers[0].Wallet)
	assert.Empty(t, result.CommunityBackers)
}

func TestGetBalanceQuery(t *testing.T) {
	_, host := setupTest(t)
	host.Balances[aliceAddr.String()] = []sdk.Coin{sdk.NewCoin(sdk.AssetStable, ust(10))}
	host.SetTokenBalance(austAddr, aliceAddr, ust(7))

	payload, err := ToJSON(&WalletArgs{Wallet: aliceAddr}, "args")
	require.NoError(t, err)
	out := GetBalance(&payload)
	require.NotNil(t, out)
	result, err := FromJSON[BalanceResult](*out, "balance")
	require.NoError(t, err)
	require.Len(t, result.Native, 1)
	assert.Equal(t, ust(10).String(), result.Native[0].Amount.String())
	assert.Equal(t, ust(7).String(), result.Yield.Amount.String())
}
