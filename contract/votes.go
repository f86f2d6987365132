package contract

// -----------------------------------------------------------------------------
// Milestone Voting
// -----------------------------------------------------------------------------

// SetMilestoneVote records the caller's vote on the current milestone of a
// releasing project. Votes may be flipped until the ballot closes; the
// moment every seat reads true the tranche pays out in the same call.
//
//go:wasmexport set_milestone_vote
func SetMilestoneVote(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[MilestoneVoteArgs](payload, "milestone vote args")
		if err != nil {
			return nil, err
		}
		return setMilestoneVote(args)
	})
}

func setMilestoneVote(args *MilestoneVoteArgs) (*Response, error) {
	cfg, err := loadConfig()
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
	step := prj.MilestoneStep.Uint64()
	if step >= uint64(len(prj.Milestones)) {
		return nil, ErrWrongMilestone.Wrapf("project %d has no milestone %d", prj.ID, step)
	}
	ms := &prj.Milestones[step]
	if ms.Status != MilestoneVoting {
		return nil, ErrWrongMilestone.Wrapf("milestone %d of project %d is %s, ballot closed",
			step, prj.ID, ms.Status.String())
	}

	voter := getSenderAddress()
	seat := -1
	for i := range ms.Votes {
		if ms.Votes[i].Wallet == voter {
			seat = i
			break
		}
	}
	if seat < 0 {
		return nil, ErrNotBackerWallet.Wrapf("wallet %s holds no seat on milestone %d of project %d",
			voter.String(), step, prj.ID)
	}
	ms.Votes[seat].Voted = args.Voted
	emitVote(prj.ID, step, voter.String(), args.Voted)

	resp := NewResponse().
		addAttribute("project_id", formatID(prj.ID)).
		addAttribute("milestone", formatID(step))

	if args.Voted && ballotUnanimous(ms.Votes) {
		ms.Status = MilestoneReleasing
		if err := executeMilestoneRelease(cfg, prj, resp); err != nil {
			return nil, err
		}
	}

	if err := saveProject(prj); err != nil {
		return nil, err
	}
	return resp, nil
}

func ballotUnanimous(votes []Vote) bool {
	for _, v := range votes {
		if !v.Voted {
			return false
		}
	}
	return len(votes) > 0
}
