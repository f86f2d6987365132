//go:build !test

package sdk

import "encoding/json"

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("release|id:3")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk bank.get_balances
func getBalances(arg *string) *string

//go:wasmimport sdk contracts.query
func contractQuery(contractId *string, payload *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain,
// so use sparingly.
// Example payload: sdk.Abort("state corrupted")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller. The host discards every
// storage write of the call and dispatches none of its instructions.
// Example payload: sdk.Revert("quota already met", "already_collected")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("prj_seq", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("prj_seq")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("prj_seq")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to Env.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	if err := json.Unmarshal([]byte(envStr), &env); err != nil {
		Abort("malformed host env: " + err.Error())
	}
	return env
}

// GetBalances queries the native bank balances held by an account.
// Example payload: sdk.GetBalances(sdk.Address("terra1alice"))
func GetBalances(address Address) []Coin {
	addr := address.String()
	raw := getBalances(&addr)
	if raw == nil || *raw == "" {
		return nil
	}
	var coins []Coin
	if err := json.Unmarshal([]byte(*raw), &coins); err != nil {
		Abort("malformed balance response: " + err.Error())
	}
	return coins
}

// ContractQuery performs a synchronous read-only query against another
// contract and returns its raw JSON response. The query completes before the
// calling transaction commits; a nil result means the collaborator rejected
// the query.
// Example payload: sdk.ContractQuery("terra1market", `{"epoch_state":{}}`)
func ContractQuery(contractId Address, payload string) *string {
	id := contractId.String()
	return contractQuery(&id, &payload)
}
