package main

import (
	"github.com/L-Nova0211/Wefund-contract/contract"
)

func main() {
	debug := false
	contract.InitState(debug) // true = use MockState
	contract.InitENV(debug)
	contract.InitHost(debug)
}
