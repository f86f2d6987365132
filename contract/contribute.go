package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// -----------------------------------------------------------------------------
// Backing
// -----------------------------------------------------------------------------

// Back2Project credits an attached stable payment to one of a project's two
// tracks, community or general, after the platform fee comes off the top. The
// net amount goes to the yield market, the fee to the platform wallet. When
// both tracks reach their quota the project flips into releasing.
//
//go:wasmexport back_2_project
func Back2Project(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[BackProjectArgs](payload, "back project args")
		if err != nil {
			return nil, err
		}
		return back2Project(args)
	})
}

func back2Project(args *BackProjectArgs) (*Response, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	if prj.Status != StatusFundraising {
		return nil, ErrWrongStatus.Wrapf("project %d is %s, expected %s",
			prj.ID, prj.Status.String(), StatusFundraising.String())
	}
	wallet := args.BackerWallet
	if wallet.IsEmpty() {
		wallet = getSenderAddress()
	}
	if !wallet.IsValid() {
		return nil, ErrInvalidAddress.Wrapf("backer wallet %q", wallet.String())
	}

	attached := attachedStable()
	if attached.LT(scaleToMinor(math.NewUint(MinContributionUnits))) {
		return nil, ErrNeedCoin.Wrapf("attached %s %s, minimum is %d %s",
			attached.String(), sdk.AssetStable, MinContributionUnits, sdk.AssetStable)
	}
	net, fee := splitFee(attached)

	community, err := loadCommunity()
	if err != nil {
		return nil, err
	}
	onCommunityTrack := isCommunityMember(community, wallet)

	// quota is checked against the pre-credit total, so the final backing of
	// a track may overshoot and is kept whole
	quota := prj.Quota()
	if onCommunityTrack {
		if prj.CommunityBacked.GTE(quota) {
			return nil, ErrAlreadyCollected.Wrapf("community track of project %d", prj.ID)
		}
		prj.CommunityBacked = prj.CommunityBacked.Add(net)
		prj.CommunityBackers = append(prj.CommunityBackers, newContribution(wallet, net, args))
	} else {
		if prj.BackerBacked.GTE(quota) {
			return nil, ErrAlreadyCollected.Wrapf("general track of project %d", prj.ID)
		}
		prj.BackerBacked = prj.BackerBacked.Add(net)
		prj.Backers = append(prj.Backers, newContribution(wallet, net, args))
	}
	prj.FundraisingStage = args.FundraisingStage

	resp := NewResponse()
	resp.queueMarketDeposit(cfg.AnchorMarket, sdk.NewCoin(sdk.AssetStable, net))
	resp.queueBankSend(cfg.Wefund, sdk.NewCoin(sdk.AssetStable, fee))

	if !prj.TokenAddr.IsEmpty() && !cfg.VestingContract.IsEmpty() && !args.TokenAmount.IsZero() {
		resp.queue(InstrVestingAddUser, VestingAddUserMsg{
			Contract:  cfg.VestingContract,
			ProjectID: prj.ID,
			Wallet:    wallet,
			Stage:     args.FundraisingStage,
			Amount:    args.TokenAmount,
		})
	}

	if prj.CommunityBacked.GTE(quota) && prj.BackerBacked.GTE(quota) {
		if err := startReleasing(cfg, prj, resp); err != nil {
			return nil, err
		}
	}

	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitBacked(prj.ID, wallet.String(), onCommunityTrack, net, fee)
	return resp.
		addAttribute("project_id", formatID(prj.ID)).
		addAttribute("net", net.String()).
		addAttribute("fee", fee.String()), nil
}

func newContribution(wallet sdk.Address, net math.Uint, args *BackProjectArgs) Contribution {
	return Contribution{
		Wallet:           wallet,
		Stable:           sdk.NewCoin(sdk.AssetStable, net),
		Yield:            sdk.NewCoin(sdk.AssetYield, math.ZeroUint()),
		OtherChain:       args.OtherChain,
		OtherChainWallet: args.OtherChainWallet,
	}
}

// splitFee carves the platform cut out of an attached stable amount. Large
// backings pay roughly 5% less a flat rebate, small ones a flat deduction
// with a one unit fee. The remainder of the deduction covers network cost.
func splitFee(attached math.Uint) (net, fee math.Uint) {
	if attached.GTE(scaleToMinor(math.NewUint(LargeContributionUnits))) {
		net = attached.Mul(math.NewUint(100)).Quo(math.NewUint(105))
		fee = attached.Mul(math.NewUint(5)).Quo(math.NewUint(105)).
			Sub(scaleToMinor(math.NewUint(FlatFeeUnits)))
		return net, fee
	}
	net = attached.Sub(scaleToMinor(math.NewUint(SmallDeductionUnits)))
	fee = scaleToMinor(math.NewUint(SmallFeeUnits))
	return net, fee
}

// startReleasing performs the fundraising-complete transition: freezes the
// milestone electorate, pulls the project token allocation into escrow and
// starts the vesting clock.
func startReleasing(cfg *Config, prj *Project, resp *Response) error {
	prj.Status = StatusReleasing

	electorate := milestoneElectorate(cfg, prj)
	for i := range prj.Milestones {
		prj.Milestones[i].Status = MilestoneVoting
		prj.Milestones[i].Votes = cloneVotes(electorate)
	}
	prj.MilestoneStep = math.ZeroUint()

	if !prj.TokenAddr.IsEmpty() && !cfg.VestingContract.IsEmpty() {
		decimals, err := getHost().TokenDecimals(prj.TokenAddr)
		if err != nil {
			return err
		}
		total := math.ZeroUint()
		for _, stage := range prj.Vesting {
			total = total.Add(stage.Amount.Mul(pow10(decimals)))
		}
		if !total.IsZero() {
			resp.queueTokenTransferFrom(prj.TokenAddr, prj.CreatorWallet, contractAddress(), total)
		}
		resp.queue(InstrVestingStartClock, VestingStartReleaseMsg{
			Contract:  cfg.VestingContract,
			ProjectID: prj.ID,
			StartTime: math.NewUint(uint64(nowUnix())),
		})
	}

	emitStatusChanged(prj.ID, prj.Status)
	return nil
}

// milestoneElectorate is the frozen voter set for every milestone of a
// project: each general track backer once, plus the platform owner whose
// seat starts approved.
func milestoneElectorate(cfg *Config, prj *Project) []Vote {
	seen := map[sdk.Address]bool{}
	votes := make([]Vote, 0, len(prj.Backers)+1)
	for _, b := range prj.Backers {
		if seen[b.Wallet] {
			continue
		}
		seen[b.Wallet] = true
		votes = append(votes, Vote{Wallet: b.Wallet, Voted: false})
	}
	if !seen[cfg.Owner] {
		votes = append(votes, Vote{Wallet: cfg.Owner, Voted: true})
	}
	return votes
}

func cloneVotes(votes []Vote) []Vote {
	out := make([]Vote, len(votes))
	copy(out, votes)
	return out
}

// pow10 scales a whole token count into its smallest denomination.
func pow10(decimals uint32) math.Uint {
	out := math.NewUint(1)
	ten := math.NewUint(10)
	for i := uint32(0); i < decimals; i++ {
		out = out.Mul(ten)
	}
	return out
}
