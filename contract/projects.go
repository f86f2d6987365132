package contract

import (
	"cosmossdk.io/math"
)

// -----------------------------------------------------------------------------
// Project Lifecycle Administration
// -----------------------------------------------------------------------------

// AddProject registers a new initiative. Anyone may submit; the project sits
// in review until the platform approves it for fundraising.
//
//go:wasmexport add_project
func AddProject(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[AddProjectArgs](payload, "add project args")
		if err != nil {
			return nil, err
		}
		return addProject(args)
	})
}

func addProject(args *AddProjectArgs) (*Response, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !args.CreatorWallet.IsValid() {
		return nil, ErrInvalidAddress.Wrapf("creator wallet %q", args.CreatorWallet.String())
	}
	if args.Collected.IsZero() {
		return nil, ErrNeedCoin.Wrap("funding goal must be positive")
	}
	if len(args.Milestones) == 0 {
		// a fully funded project with no milestone would have no ballot to
		// ever leave releasing through
		return nil, ErrWrongMilestone.Wrap("at least one milestone required")
	}

	prj := &Project{
		Company:     args.Company,
		Title:       args.Title,
		Description: args.Description,
		Ecosystem:   args.Ecosystem,
		CreatedDate: args.CreatedDate,
		Saft:        args.Saft,
		Logo:        args.Logo,
		Whitepaper:  args.Whitepaper,
		Website:     args.Website,
		Email:       args.Email,

		ID:            nextProjectID(),
		CreatorWallet: args.CreatorWallet,
		Collected:     args.Collected,
		Status:        StatusWefundVote,

		BackerBacked:     math.ZeroUint(),
		CommunityBacked:  math.ZeroUint(),
		MilestoneStep:    math.ZeroUint(),
		FundraisingStage: math.ZeroUint(),

		Milestones:  args.Milestones,
		TeamMembers: args.TeamMembers,
		Vesting:     args.Vesting,
		TokenAddr:   args.TokenAddr,
	}
	for i := range prj.Milestones {
		prj.Milestones[i].Step = math.NewUint(uint64(i))
		prj.Milestones[i].Status = MilestoneVoting
		prj.Milestones[i].Votes = nil
	}

	resp := NewResponse()
	if !prj.TokenAddr.IsEmpty() && !cfg.VestingContract.IsEmpty() {
		// the platform itself administers the vesting entry; the queued
		// start-release call later authenticates against this admin
		resp.queue(InstrVestingAddProject, VestingAddProjectMsg{
			Contract:  cfg.VestingContract,
			ProjectID: prj.ID,
			Admin:     contractAddress(),
			TokenAddr: prj.TokenAddr,
			Params:    prj.Vesting,
			StartTime: math.ZeroUint(),
		})
	}

	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitProjectAdded(prj.ID, prj.CreatorWallet.String())
	return resp.addAttribute("project_id", formatID(prj.ID)), nil
}

// RemoveProject hard deletes a project record and its index entry.
//
//go:wasmexport remove_project
func RemoveProject(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return removeProject(args)
	})
}

func removeProject(args *ProjectIDArgs) (*Response, error) {
	if _, err := requireOwner(); err != nil {
		return nil, err
	}
	if _, err := loadProject(args.ProjectID); err != nil {
		return nil, err
	}
	deleteProject(args.ProjectID)
	emitProjectRemoved(args.ProjectID)
	return NewResponse().addAttribute("project_id", formatID(args.ProjectID)), nil
}

// WefundApprove moves a reviewed project into fundraising.
//
//go:wasmexport wefund_approve
func WefundApprove(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[ProjectIDArgs](payload, "project id args")
		if err != nil {
			return nil, err
		}
		return wefundApprove(args)
	})
}

func wefundApprove(args *ProjectIDArgs) (*Response, error) {
	if _, err := requireOwner(); err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	if prj.Status != StatusWefundVote {
		return nil, ErrWrongStatus.Wrapf("project %d is %s, expected %s",
			prj.ID, prj.Status.String(), StatusWefundVote.String())
	}
	prj.Status = StatusFundraising
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitStatusChanged(prj.ID, prj.Status)
	return NewResponse().addAttribute("project_id", formatID(prj.ID)), nil
}

// SetFundraisingStage updates the stage marker forwarded to vesting.
//
//go:wasmexport set_fundraising_stage
func SetFundraisingStage(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[SetFundraisingStageArgs](payload, "fundraising stage args")
		if err != nil {
			return nil, err
		}
		return setFundraisingStage(args)
	})
}

func setFundraisingStage(args *SetFundraisingStageArgs) (*Response, error) {
	if _, err := requireOwner(); err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	prj.FundraisingStage = args.Stage
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	return NewResponse().addAttribute("project_id", formatID(prj.ID)), nil
}

// SetProjectStatus force-sets a lifecycle state. Administrative override for
// recovery, separate from the normal transitions and logged as such.
//
//go:wasmexport set_project_status
func SetProjectStatus(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[SetProjectStatusArgs](payload, "project status args")
		if err != nil {
			return nil, err
		}
		return setProjectStatus(args)
	})
}

func setProjectStatus(args *SetProjectStatusArgs) (*Response, error) {
	cfg, err := requireOwner()
	if err != nil {
		return nil, err
	}
	prj, err := loadProject(args.ProjectID)
	if err != nil {
		return nil, err
	}
	prj.Status = args.Status
	if err := saveProject(prj); err != nil {
		return nil, err
	}
	emitStatusOverride(prj.ID, prj.Status, cfg.Owner.String())
	return NewResponse().
		addAttribute("project_id", formatID(prj.ID)).
		addAttribute("status", prj.Status.String()), nil
}
