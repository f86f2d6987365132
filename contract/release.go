package contract

import (
	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// -----------------------------------------------------------------------------
// Release / Refund Engine
// -----------------------------------------------------------------------------

// executeMilestoneRelease redeems one milestone tranche from the shared pool
// and pays the project creator. Advances the milestone cursor and, after the
// last tranche, closes the project.
func executeMilestoneRelease(cfg *Config, prj *Project, resp *Response) error {
	step := prj.MilestoneStep.Uint64()
	if step >= uint64(len(prj.Milestones)) {
		return ErrWrongMilestone.Wrapf("project %d has no milestone %d", prj.ID, step)
	}
	ms := &prj.Milestones[step]
	if ms.Status == MilestoneReleased {
		return ErrWrongMilestone.Wrapf("milestone %d of project %d already released", step, prj.ID)
	}

	target := scaleToMinor(ms.Amount)
	est, err := estimateRelease(cfg, target)
	if err != nil {
		return err
	}
	resp.queueMarketRedeem(cfg.AustToken, cfg.AnchorMarket, est.Withdraw)
	resp.queueBankSend(prj.CreatorWallet, sdk.NewCoin(sdk.AssetStable, est.Actual))

	ms.Status = MilestoneReleased
	prj.MilestoneStep = math.NewUint(step + 1)
	if step+1 >= uint64(len(prj.Milestones)) {
		prj.Status = StatusDone
		emitStatusChanged(prj.ID, prj.Status)
	}
	emitRelease(prj.ID, step, est.Withdraw, est.Actual, est.OracleRate)
	resp.addAttribute("released", est.Actual.String())
	return nil
}

// ReleaseMilestone force-releases the current milestone without waiting for
// the ballot. Owner recovery hatch for stuck votes.
//
//go:wasmexport release_milestone
func ReleaseMilestone(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return releaseMilestone(args)
	})
}

func releaseMilestone(args *ProjectIDArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	if prj.Status != StatusReleasing {
		return nil, ErrWrongStatus.Wrapf("project %d is %s, expected %s",
			prj.ID, prj.Status.String(), StatusReleasing.String())
	}
	resp := NewResponse().addAttribute("project_id", formatID(prj.ID))
	if err := executeMilestoneRelease(cfg, prj, resp); err != nil {
		return nil, err
	}
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	return resp, nil
}

// CompleteProject pays any stable principal still parked in the pool out to
// the creator and closes the project.
//
//go:wasmexport complete_project
func CompleteProject(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return completeProject(args)
	})
}

func completeProject(args *ProjectIDArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	if prj.Status != StatusReleasing {
		return nil, ErrWrongStatus.Wrapf("project %d is %s, expected %s",
			prj.ID, prj.Status.String(), StatusReleasing.String())
	}
	resp := NewResponse().addAttribute("project_id", formatID(prj.ID))
	remaining := prj.Outstanding()
	if !remaining.IsZero() {
		est, err := estimateRelease(cfg, remaining)
		if err != nil {
			return nil, err
		}
		resp.queueMarketRedeem(cfg.AustToken, cfg.AnchorMarket, est.Withdraw)
		resp.queueBankSend(prj.CreatorWallet, sdk.NewCoin(sdk.AssetStable, est.Actual))
		resp.addAttribute("released", est.Actual.String())
	}
	// zero the obligation so the project stops weighing on the pool estimate
	prj.MilestoneStep = math.NewUint(uint64(len(prj.Milestones)))
	for i := range prj.Milestones {
		prj.Milestones[i].Status = MilestoneReleased
	}
	prj.Status = StatusDone
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitStatusChanged(prj.ID, prj.Status)
	return resp, nil
}

// FailProject cancels a project and refunds the general track pro rata from
// the pool. Community track contributions stay with the platform. The fail
// status sticks even when there is nothing to refund.
//
//go:wasmexport fail_project
func FailProject(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return failProject(args)
	})
}

func failProject(args *ProjectIDArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	if prj.Status != StatusReleasing {
		return nil, ErrWrongStatus.Wrapf("project %d is %s, expected %s",
			prj.ID, prj.Status.String(), StatusReleasing.String())
	}
	resp := NewResponse().addAttribute("project_id", formatID(prj.ID))

	raised := prj.CommunityBacked.Add(prj.BackerBacked)
	outstanding := prj.Outstanding()
	if !outstanding.IsZero() && !raised.IsZero() && len(prj.Backers) > 0 {
		est, err := estimateRelease(cfg, outstanding)
		if err != nil {
			return nil, err
		}
		resp.queueMarketRedeem(cfg.AustToken, cfg.AnchorMarket, est.Withdraw)
		refunded := 0
		for _, b := range prj.Backers {
			share := b.Stable.Amount.Mul(est.Actual).Quo(raised)
			if share.IsZero() {
				continue
			}
			resp.queueBankSend(b.Wallet, sdk.NewCoin(sdk.AssetStable, share))
			refunded++
		}
		emitRefund(prj.ID, refunded, est.Actual)
	}

	prj.Status = StatusFail
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitStatusChanged(prj.ID, prj.Status)
	return resp, nil
}
