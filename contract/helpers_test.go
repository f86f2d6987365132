package contract

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

const (
	ownerAddr    = sdk.Address("terra1owner")
	wefundAddr   = sdk.Address("terra1wefundwallet")
	marketAddr   = sdk.Address("terra1contractmarket")
	austAddr     = sdk.Address("terra1contractaust")
	vestingAddr  = sdk.Address("terra1contractvesting")
	creatorAddr  = sdk.Address("terra1creator")
	aliceAddr    = sdk.Address("terra1alice")
	bobAddr      = sdk.Address("terra1bob")
	carolAddr    = sdk.Address("terra1carol")
	platformAddr = sdk.Address("terra1platformcontract")
)

// setupTest rebuilds fresh state, env and host mocks and wires the platform
// config with the owner as sender.
func setupTest(t *testing.T) (*MockENV, *MockHost) {
	t.Helper()
	state = NewMockState()
	env := NewMockENV()
	envInterface = env
	host := NewMockHost()
	hostInterface = host

	env.SetSender(ownerAddr)
	_, err := instantiate(&InstantiateArgs{
		Wefund:          addrPtr(wefundAddr),
		AnchorMarket:    addrPtr(marketAddr),
		AustToken:       addrPtr(austAddr),
		VestingContract: addrPtr(vestingAddr),
	})
	require.NoError(t, err)
	return env, host
}

func addrPtr(a sdk.Address) *sdk.Address { return &a }

func ust(units uint64) math.Uint { return scaleToMinor(math.NewUint(units)) }

// addTestProject registers a project with the given goal and milestone
// tranche sizes (whole stable units) and returns its id.
func addTestProject(t *testing.T, goal uint64, tranches ...uint64) uint64 {
	t.Helper()
	milestones := make([]Milestone, len(tranches))
	for i, amt := range tranches {
		milestones[i] = Milestone{
			Name:   "milestone",
			Amount: math.NewUint(amt),
		}
	}
	resp, err := addProject(&AddProjectArgs{
		Title:         "test project",
		CreatorWallet: creatorAddr,
		Collected:     math.NewUint(goal),
		Milestones:    milestones,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Attributes)

	id := getCount(ProjectSeqKey)
	require.NotZero(t, id)
	return id
}

// approveProject flips a reviewed project into fundraising as the owner.
func approveProject(t *testing.T, env *MockENV, id uint64) {
	t.Helper()
	env.SetSender(ownerAddr).ClearFunds()
	_, err := wefundApprove(&ProjectIDArgs{ProjectID: id})
	require.NoError(t, err)
}

// backProject sends one backing of the given size on behalf of wallet.
func backProject(t *testing.T, env *MockENV, id uint64, wallet sdk.Address, units uint64) *Response {
	t.Helper()
	env.SetSender(wallet).SetStableFunds(ust(units))
	resp, err := back2Project(&BackProjectArgs{ProjectID: id, BackerWallet: wallet})
	require.NoError(t, err)
	env.ClearFunds()
	return resp
}

// mustLoadProject fails the test instead of returning lookup errors.
func mustLoadProject(t *testing.T, id uint64) *Project {
	t.Helper()
	prj, err := loadProject(id)
	require.NoError(t, err)
	return prj
}

// instructionsOfType filters a response outbox by instruction kind.
func instructionsOfType(resp *Response, kind string) []Instruction {
	var out []Instruction
	for _, in := range resp.Instructions {
		if in.Type == kind {
			out = append(out, in)
		}
	}
	return out
}
