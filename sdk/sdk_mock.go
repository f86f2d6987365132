//go:build test
// +build test

package sdk

import (
	"encoding/json"
	"fmt"
)

// Plain in-process stand-ins for the wasm host imports. The contract package
// normally talks to its own mockable interfaces during tests, so these exist
// mainly to keep the package compiling under the test tag and to catch stray
// host calls with visible output.

var mockDB = map[string]string{}

// MockEnvJSON can be set by tests that exercise the raw sdk surface.
var MockEnvJSON = `{
	"contract.id": "terra1platform",
	"tx.id": "mock-tx",
	"block.height": 1,
	"block.timestamp": "2022-01-01T00:00:00Z",
	"msg.sender": "terra1mocksender",
	"msg.funds": []
}`

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic("abort: " + msg)
}

func Revert(msg string, symbol string) {
	panic("revert[" + symbol + "]: " + msg)
}

func StateSetObject(key string, value string) {
	mockDB[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockDB[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockDB, key)
}

func GetEnv() Env {
	env := Env{}
	if err := json.Unmarshal([]byte(MockEnvJSON), &env); err != nil {
		panic(err)
	}
	return env
}

func GetBalances(address Address) []Coin {
	fmt.Println("GetBalances:", address)
	return nil
}

func ContractQuery(contractId Address, payload string) *string {
	fmt.Println("ContractQuery:", contractId, payload)
	return nil
}
