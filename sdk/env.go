package sdk

// Env is the per-call execution snapshot handed over by the host. One Env is
// valid for exactly one transaction; helpers must not cache it across calls.
type Env struct {
	ContractId  string  `json:"contract.id"`
	TxId        string  `json:"tx.id"`
	BlockHeight uint64  `json:"block.height"`
	Timestamp   string  `json:"block.timestamp"`
	Sender      Address `json:"msg.sender"`
	// Funds are the coins attached to the call, already credited to the
	// contract account when the handler runs.
	Funds []Coin `json:"msg.funds"`
}
