package contract

import "github.com/L-Nova0211/Wefund-contract/sdk"

// State is the kv surface every persistence helper goes through. The host
// guarantees each inbound call sees a consistent snapshot and that all writes
// of a failed call are discarded together.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere
var state State

func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

func getState() State {
	return state
}

// WasmState routes kv access to the host storage imports.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
