package contract

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// ProjectStatus captures a project's lifecycle. Status travels through JSON
// as its symbolic name so no call site can inject an unknown state by number.
type ProjectStatus uint8

const (
	StatusWefundVote ProjectStatus = iota
	StatusFundraising
	StatusReleasing
	StatusDone
	StatusFail
)

var projectStatusNames = map[ProjectStatus]string{
	StatusWefundVote:  "wefund_vote",
	StatusFundraising: "fundraising",
	StatusReleasing:   "releasing",
	StatusDone:        "done",
	StatusFail:        "fail",
}

// String prints the status as lower-case text for events and errors.
// Example payload: StatusReleasing.String()
func (s ProjectStatus) String() string {
	if name, ok := projectStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s ProjectStatus) MarshalJSON() ([]byte, error) {
	name, ok := projectStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown project status %d", uint8(s))
	}
	return json.Marshal(name)
}

func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, n := range projectStatusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown project status %q", name)
}

// MilestoneStatus tracks a single tranche: voting until unanimous, releasing
// while the treasury redemption is in flight, released once paid out.
type MilestoneStatus uint8

const (
	MilestoneVoting MilestoneStatus = iota
	MilestoneReleasing
	MilestoneReleased
)

var milestoneStatusNames = map[MilestoneStatus]string{
	MilestoneVoting:    "voting",
	MilestoneReleasing: "releasing",
	MilestoneReleased:  "released",
}

func (s MilestoneStatus) String() string {
	if name, ok := milestoneStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s MilestoneStatus) MarshalJSON() ([]byte, error) {
	name, ok := milestoneStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown milestone status %d", uint8(s))
	}
	return json.Marshal(name)
}

func (s *MilestoneStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, n := range milestoneStatusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown milestone status %q", name)
}

// Config holds the platform-level collaborator addresses. One record per
// deployment, mutated only by the owner.
type Config struct {
	Owner           sdk.Address `json:"owner"`
	Wefund          sdk.Address `json:"wefund"`
	AnchorMarket    sdk.Address `json:"anchor_market"`
	AustToken       sdk.Address `json:"aust_token"`
	VestingContract sdk.Address `json:"vesting_contract"`
}

// Contribution records one accepted backing. The stable amount is the net
// credited after fees and is the basis for pro-rata refunds.
type Contribution struct {
	Wallet           sdk.Address `json:"backer_wallet"`
	Stable           sdk.Coin    `json:"ust_amount"`
	Yield            sdk.Coin    `json:"aust_amount"`
	OtherChain       string      `json:"otherchain"`
	OtherChainWallet string      `json:"otherchain_wallet"`
}

// Vote is one seat on a milestone ballot. Membership is frozen when the
// project enters releasing; only the boolean flips afterwards.
type Vote struct {
	Wallet sdk.Address `json:"wallet"`
	Voted  bool        `json:"voted"`
}

// Milestone is one funded tranche. Amount is denominated in whole stable
// units, pre-scaling.
type Milestone struct {
	Step        math.Uint       `json:"milestone_step"`
	Name        string          `json:"milestone_name"`
	Description string          `json:"milestone_description"`
	StartDate   string          `json:"milestone_startdate"`
	EndDate     string          `json:"milestone_enddate"`
	Amount      math.Uint       `json:"milestone_amount"`
	Status      MilestoneStatus `json:"milestone_status"`
	Votes       []Vote          `json:"milestone_votes"`
}

// VestingStage mirrors the vesting module's schedule parameters: Soon is the
// percentage unlocked at release start, After the cliff, Period the linear
// release window. Opaque to this engine beyond totalling Amount.
type VestingStage struct {
	Title  string    `json:"stage_title"`
	Price  math.Uint `json:"stage_price"`
	Amount math.Uint `json:"stage_amount"`
	Soon   math.Uint `json:"stage_soon"`
	After  math.Uint `json:"stage_after"`
	Period math.Uint `json:"stage_period"`
}

// TeamMember is descriptive metadata only.
type TeamMember struct {
	Description string `json:"teammember_description"`
	Linkedin    string `json:"teammember_linkedin"`
	Role        string `json:"teammember_role"`
}

// Project is the full per-initiative record, one blob per id.
type Project struct {
	Company     string `json:"project_company"`
	Title       string `json:"project_title"`
	Description string `json:"project_description"`
	Ecosystem   string `json:"project_ecosystem"`
	CreatedDate string `json:"project_createddate"`
	Saft        string `json:"project_saft"`
	Logo        string `json:"project_logo"`
	Whitepaper  string `json:"project_whitepaper"`
	Website     string `json:"project_website"`
	Email       string `json:"project_email"`

	ID            uint64        `json:"project_id"`
	CreatorWallet sdk.Address   `json:"creator_wallet"`
	Collected     math.Uint     `json:"project_collected"`
	Status        ProjectStatus `json:"project_status"`
	// FundraisingStage is an administrative marker forwarded to the vesting
	// module; the engine itself never branches on it.
	FundraisingStage math.Uint `json:"fundraising_stage"`

	BackerBacked    math.Uint `json:"backerbacked_amount"`
	CommunityBacked math.Uint `json:"communitybacked_amount"`

	Backers          []Contribution `json:"backer_states"`
	CommunityBackers []Contribution `json:"communitybacker_states"`

	Milestones    []Milestone `json:"milestone_states"`
	MilestoneStep math.Uint   `json:"project_milestonestep"`

	TeamMembers []TeamMember   `json:"teammember_states"`
	Vesting     []VestingStage `json:"vesting"`

	// TokenAddr is optional; empty disables the whole vesting/token path.
	TokenAddr sdk.Address `json:"token_addr"`
}

// Outstanding is the stable principal still parked in the shared pool for
// this project: everything both tracks raised minus every already released
// milestone tranche.
func (p *Project) Outstanding() math.Uint {
	out := p.CommunityBacked.Add(p.BackerBacked)
	steps := p.MilestoneStep.Uint64()
	for i := uint64(0); i < steps && i < uint64(len(p.Milestones)); i++ {
		tranche := scaleToMinor(p.Milestones[i].Amount)
		if out.LT(tranche) {
			return math.ZeroUint()
		}
		out = out.Sub(tranche)
	}
	return out
}

// Quota is the per-track contribution ceiling in minor units: half the goal,
// truncating on odd goals, then scaled.
func (p *Project) Quota() math.Uint {
	return scaleToMinor(p.Collected.Quo(math.NewUint(2)))
}

// -----------------------------------------------------------------------------
// Handler argument payloads
// -----------------------------------------------------------------------------

type InstantiateArgs struct {
	Admin           *sdk.Address `json:"admin,omitempty"`
	Wefund          *sdk.Address `json:"wefund,omitempty"`
	AnchorMarket    *sdk.Address `json:"anchor_market,omitempty"`
	AustToken       *sdk.Address `json:"aust_token,omitempty"`
	VestingContract *sdk.Address `json:"vesting_contract,omitempty"`
}

type SetConfigArgs struct {
	Admin           *sdk.Address `json:"admin,omitempty"`
	Wefund          *sdk.Address `json:"wefund,omitempty"`
	AnchorMarket    *sdk.Address `json:"anchor_market,omitempty"`
	AustToken       *sdk.Address `json:"aust_token,omitempty"`
	VestingContract *sdk.Address `json:"vesting_contract,omitempty"`
}

type AddProjectArgs struct {
	Company     string `json:"project_company"`
	Title       string `json:"project_title"`
	Description string `json:"project_description"`
	Ecosystem   string `json:"project_ecosystem"`
	CreatedDate string `json:"project_createddate"`
	Saft        string `json:"project_saft"`
	Logo        string `json:"project_logo"`
	Whitepaper  string `json:"project_whitepaper"`
	Website     string `json:"project_website"`
	Email       string `json:"project_email"`

	CreatorWallet sdk.Address    `json:"creator_wallet"`
	Collected     math.Uint      `json:"project_collected"`
	Milestones    []Milestone    `json:"project_milestones"`
	TeamMembers   []TeamMember   `json:"project_teammembers"`
	Vesting       []VestingStage `json:"vesting"`
	TokenAddr     sdk.Address    `json:"token_addr"`
}

type ProjectIDArgs struct {
	ProjectID uint64 `json:"project_id"`
}

type BackProjectArgs struct {
	ProjectID        uint64      `json:"project_id"`
	BackerWallet     sdk.Address `json:"backer_wallet"`
	FundraisingStage math.Uint   `json:"fundraising_stage"`
	TokenAmount      math.Uint   `json:"token_amount"`
	OtherChain       string      `json:"otherchain"`
	OtherChainWallet string      `json:"otherchain_wallet"`
}

type MilestoneVoteArgs struct {
	ProjectID uint64 `json:"project_id"`
	Voted     bool   `json:"voted"`
}

type SetProjectStatusArgs struct {
	ProjectID uint64        `json:"project_id"`
	Status    ProjectStatus `json:"status"`
}

type SetFundraisingStageArgs struct {
	ProjectID uint64    `json:"project_id"`
	Stage     math.Uint `json:"stage"`
}

type WalletArgs struct {
	Wallet sdk.Address `json:"wallet"`
}
