package contract

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// The outbox. A handler never talks to a collaborator directly for writes: it
// queues typed instructions on its Response and the host dispatches them in
// order, only after the call's storage mutations are committed. A reverted
// call dispatches nothing.

const (
	InstrBankSend          = "bank_send"
	InstrMarketDeposit     = "market_deposit"
	InstrMarketRedeem      = "market_redeem"
	InstrTokenTransferFrom = "token_transfer_from"
	InstrTokenTransfer     = "token_transfer"
	InstrVestingAddProject = "vesting_add_project"
	InstrVestingStartClock = "vesting_start_release"
	InstrVestingAddUser    = "vesting_add_user"
)

// Instruction is one queued outgoing call: a type tag plus its typed body.
type Instruction struct {
	Type string          `json:"type"`
	Msg  json.RawMessage `json:"msg"`
}

// Attribute is a key/value pair echoed back to the caller for diagnostics.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response carries the ordered instruction outbox plus attributes.
type Response struct {
	Instructions []Instruction `json:"instructions,omitempty"`
	Attributes   []Attribute   `json:"attributes,omitempty"`
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) addAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) queue(kind string, msg any) {
	raw, err := json.Marshal(msg)
	if err != nil {
		// instruction bodies are engine-built structs; this cannot fire on
		// caller input
		panic(err)
	}
	r.Instructions = append(r.Instructions, Instruction{Type: kind, Msg: raw})
}

// -----------------------------------------------------------------------------
// Instruction bodies
// -----------------------------------------------------------------------------

type BankSendMsg struct {
	ToAddress sdk.Address `json:"to_address"`
	Amount    []sdk.Coin  `json:"amount"`
}

type MarketDepositMsg struct {
	Market sdk.Address `json:"market"`
	Funds  sdk.Coin    `json:"funds"`
}

// MarketRedeemMsg sends yield tokens to the market with its redeem hook so
// the pool converts them back into stable coin.
type MarketRedeemMsg struct {
	Token  sdk.Address `json:"token"`
	Market sdk.Address `json:"market"`
	Amount math.Uint   `json:"amount"`
}

type TokenTransferFromMsg struct {
	Token     sdk.Address `json:"token"`
	Owner     sdk.Address `json:"owner"`
	Recipient sdk.Address `json:"recipient"`
	Amount    math.Uint   `json:"amount"`
}

type TokenTransferMsg struct {
	Token     sdk.Address `json:"token"`
	Recipient sdk.Address `json:"recipient"`
	Amount    math.Uint   `json:"amount"`
}

type VestingAddProjectMsg struct {
	Contract  sdk.Address    `json:"contract"`
	ProjectID uint64         `json:"project_id"`
	Admin     sdk.Address    `json:"admin"`
	TokenAddr sdk.Address    `json:"token_addr"`
	Params    []VestingStage `json:"vesting_params"`
	StartTime math.Uint      `json:"start_time"`
}

type VestingStartReleaseMsg struct {
	Contract  sdk.Address `json:"contract"`
	ProjectID uint64      `json:"project_id"`
	StartTime math.Uint   `json:"start_time"`
}

type VestingAddUserMsg struct {
	Contract  sdk.Address `json:"contract"`
	ProjectID uint64      `json:"project_id"`
	Wallet    sdk.Address `json:"wallet"`
	Stage     math.Uint   `json:"stage"`
	Amount    math.Uint   `json:"amount"`
}

func (r *Response) queueBankSend(to sdk.Address, coins ...sdk.Coin) {
	r.queue(InstrBankSend, BankSendMsg{ToAddress: to, Amount: coins})
}

func (r *Response) queueMarketDeposit(market sdk.Address, funds sdk.Coin) {
	r.queue(InstrMarketDeposit, MarketDepositMsg{Market: market, Funds: funds})
}

func (r *Response) queueMarketRedeem(token, market sdk.Address, amount math.Uint) {
	r.queue(InstrMarketRedeem, MarketRedeemMsg{Token: token, Market: market, Amount: amount})
}

func (r *Response) queueTokenTransferFrom(token, owner, recipient sdk.Address, amount math.Uint) {
	r.queue(InstrTokenTransferFrom, TokenTransferFromMsg{
		Token: token, Owner: owner, Recipient: recipient, Amount: amount,
	})
}

func (r *Response) queueTokenTransfer(token, recipient sdk.Address, amount math.Uint) {
	r.queue(InstrTokenTransfer, TokenTransferMsg{Token: token, Recipient: recipient, Amount: amount})
}
