package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

func TestInstantiateOnce(t *testing.T) {
	setupTest(t)
	_, err := instantiate(&InstantiateArgs{})
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInstantiateDefaultsOwnerToSender(t *testing.T) {
	setupTest(t)
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, cfg.Owner)
	assert.Equal(t, wefundAddr, cfg.Wefund)
	assert.Equal(t, marketAddr, cfg.AnchorMarket)
}

func TestSetConfigPatchesFields(t *testing.T) {
	env, _ := setupTest(t)
	env.SetSender(ownerAddr)

	next := sdk.Address("terra1newwefund")
	_, err := setConfig(&SetConfigArgs{Wefund: addrPtr(next)})
	require.NoError(t, err)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, next, cfg.Wefund)
	assert.Equal(t, marketAddr, cfg.AnchorMarket, "absent fields keep their value")
}

func TestSetConfigOwnerOnly(t *testing.T) {
	env, _ := setupTest(t)
	env.SetSender(aliceAddr)
	_, err := setConfig(&SetConfigArgs{Wefund: addrPtr(aliceAddr)})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSetConfigRejectsBadAddress(t *testing.T) {
	env, _ := setupTest(t)
	env.SetSender(ownerAddr)
	bad := sdk.Address("NOT-AN-ADDRESS")
	_, err := setConfig(&SetConfigArgs{Wefund: addrPtr(bad)})
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestCommunityRegistry(t *testing.T) {
	env, _ := setupTest(t)
	env.SetSender(ownerAddr)

	_, err := addCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.NoError(t, err)
	_, err = addCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.ErrorIs(t, err, ErrAlreadyCommunity)

	list, err := loadCommunity()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, isCommunityMember(list, carolAddr))

	_, err = removeCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.NoError(t, err)
	_, err = removeCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.ErrorIs(t, err, ErrNotCommunity)
}

func TestCommunityRegistryOwnerOnly(t *testing.T) {
	env, _ := setupTest(t)
	env.SetSender(aliceAddr)
	_, err := addCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransferAllCoinsKeepsReserve(t *testing.T) {
	env, host := setupTest(t)
	host.Balances[platformAddr.String()] = []sdk.Coin{
		sdk.NewCoin(sdk.AssetStable, ust(50)),
	}
	host.SetTokenBalance(austAddr, platformAddr, ust(80))

	env.SetSender(ownerAddr)
	resp, err := transferAllCoins(&WalletArgs{Wallet: bobAddr})
	require.NoError(t, err)

	sends := instructionsOfType(resp, InstrBankSend)
	require.Len(t, sends, 1)
	var msg BankSendMsg
	require.NoError(t, json.Unmarshal(sends[0].Msg, &msg))
	require.Len(t, msg.Amount, 1)
	assert.Equal(t, ust(46).String(), msg.Amount[0].Amount.String())

	transfers := instructionsOfType(resp, InstrTokenTransfer)
	require.Len(t, transfers, 1)
	var tmsg TokenTransferMsg
	require.NoError(t, json.Unmarshal(transfers[0].Msg, &tmsg))
	assert.Equal(t, ust(80).String(), tmsg.Amount.String())
}

func TestCorruptedCounterDiesInsteadOfRestarting(t *testing.T) {
	setupTest(t)
	getState().Set(ProjectSeqKey, "not a number")
	require.Panics(t, func() { getCount(ProjectSeqKey) })
}

func TestTransferAllCoinsNeedsReserve(t *testing.T) {
	env, host := setupTest(t)
	host.Balances[platformAddr.String()] = []sdk.Coin{
		sdk.NewCoin(sdk.AssetStable, ust(3)),
	}
	env.SetSender(ownerAddr)
	_, err := transferAllCoins(&WalletArgs{Wallet: bobAddr})
	require.ErrorIs(t, err, ErrNeedCoin)
}
