package contract

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

const projectToken = sdk.Address("terra1contractprjtoken")

// TestFullLifecycle walks one project from submission to done: review,
// approval, fundraising on both tracks, the releasing flip with its vesting
// side effects, two unanimous vote rounds and the final close.
func TestFullLifecycle(t *testing.T) {
	env, host := setupTest(t)
	host.Decimals[projectToken.String()] = 6

	resp, err := addProject(&AddProjectArgs{
		Title:         "chain game",
		CreatorWallet: creatorAddr,
		Collected:     math.NewUint(300),
		Milestones: []Milestone{
			{Name: "alpha", Amount: math.NewUint(100)},
			{Name: "mainnet", Amount: math.NewUint(200)},
		},
		Vesting: []VestingStage{
			{Title: "seed", Amount: math.NewUint(1000)},
			{Title: "public", Amount: math.NewUint(4000)},
		},
		TokenAddr: projectToken,
	})
	require.NoError(t, err)
	regs := instructionsOfType(resp, InstrVestingAddProject)
	require.Len(t, regs, 1)
	var reg VestingAddProjectMsg
	require.NoError(t, json.Unmarshal(regs[0].Msg, &reg))
	assert.Equal(t, platformAddr, reg.Admin, "platform administers the vesting entry")
	assert.True(t, reg.StartTime.IsZero(), "clock starts at release, not registration")
	id := getCount(ProjectSeqKey)

	approveProject(t, env, id)
	_, err = addCommunitymember(&WalletArgs{Wallet: carolAddr})
	require.NoError(t, err)

	// general track: 105 in, 100 credited; then 210 in, 200 credited
	env.SetSender(aliceAddr).SetStableFunds(ust(105))
	resp, err = back2Project(&BackProjectArgs{
		ProjectID: id, BackerWallet: aliceAddr, TokenAmount: math.NewUint(500),
	})
	require.NoError(t, err)
	require.Len(t, instructionsOfType(resp, InstrVestingAddUser), 1)

	env.SetSender(bobAddr).SetStableFunds(ust(210))
	_, err = back2Project(&BackProjectArgs{ProjectID: id, BackerWallet: bobAddr})
	require.NoError(t, err)

	// community track completes the raise and flips the project
	env.SetSender(carolAddr).SetStableFunds(ust(210))
	resp, err = back2Project(&BackProjectArgs{ProjectID: id, BackerWallet: carolAddr})
	require.NoError(t, err)
	env.ClearFunds()

	prj := mustLoadProject(t, id)
	require.Equal(t, StatusReleasing, prj.Status)

	// the flip escrows the whole token allocation and starts the clock
	pulls := instructionsOfType(resp, InstrTokenTransferFrom)
	require.Len(t, pulls, 1)
	var pull TokenTransferFromMsg
	require.NoError(t, json.Unmarshal(pulls[0].Msg, &pull))
	assert.Equal(t, creatorAddr, pull.Owner)
	assert.Equal(t, "5000000000", pull.Amount.String(), "5000 tokens at 6 decimals")
	clocks := instructionsOfType(resp, InstrVestingStartClock)
	require.Len(t, clocks, 1)
	var clock VestingStartReleaseMsg
	require.NoError(t, json.Unmarshal(clocks[0].Msg, &clock))
	assert.False(t, clock.StartTime.IsZero(), "the flip stamps the real release clock")

	host.SetTokenBalance(austAddr, platformAddr, ust(1000))
	host.Rate = "1.1"

	// round one: both open seats approve, tranche one pays out
	env.SetSender(aliceAddr)
	_, err = setMilestoneVote(&MilestoneVoteArgs{ProjectID: id, Voted: true})
	require.NoError(t, err)
	env.SetSender(bobAddr)
	resp, err = setMilestoneVote(&MilestoneVoteArgs{ProjectID: id, Voted: true})
	require.NoError(t, err)
	require.Len(t, instructionsOfType(resp, InstrMarketRedeem), 1)

	// round two closes the project
	env.SetSender(aliceAddr)
	_, err = setMilestoneVote(&MilestoneVoteArgs{ProjectID: id, Voted: true})
	require.NoError(t, err)
	env.SetSender(bobAddr)
	resp, err = setMilestoneVote(&MilestoneVoteArgs{ProjectID: id, Voted: true})
	require.NoError(t, err)

	sends := instructionsOfType(resp, InstrBankSend)
	require.Len(t, sends, 1)
	var msg BankSendMsg
	require.NoError(t, json.Unmarshal(sends[0].Msg, &msg))
	assert.Equal(t, creatorAddr, msg.ToAddress)
	// 200 units priced through the 1.1 oracle rate, truncating twice
	assert.Equal(t, "199999999", msg.Amount[0].Amount.String())

	prj = mustLoadProject(t, id)
	assert.Equal(t, StatusDone, prj.Status)
	assert.Equal(t, MilestoneReleased, prj.Milestones[0].Status)
	assert.Equal(t, MilestoneReleased, prj.Milestones[1].Status)
}
