package contract

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace tags every error this contract can surface. The set is closed:
// callers either correct their input or wait for chain state to change and
// resubmit; nothing here is retried or clamped internally.
const Codespace = "wefund"

var (
	ErrUnauthorized       = errorsmod.Register(Codespace, 2, "unauthorized")
	ErrProjectNotFound    = errorsmod.Register(Codespace, 3, "project is not registered")
	ErrProjectExists      = errorsmod.Register(Codespace, 4, "project is already registered")
	ErrNeedCoin           = errorsmod.Register(Codespace, 5, "insufficient attached funds")
	ErrAlreadyCollected   = errorsmod.Register(Codespace, 6, "already enough collected")
	ErrWrongStatus        = errorsmod.Register(Codespace, 7, "project not in required status")
	ErrWrongMilestone     = errorsmod.Register(Codespace, 8, "milestone not in required status")
	ErrNotBackerWallet    = errorsmod.Register(Codespace, 9, "not a listed voter wallet")
	ErrAlreadyCommunity   = errorsmod.Register(Codespace, 10, "already registered community member")
	ErrNotCommunity       = errorsmod.Register(Codespace, 11, "not a registered community member")
	ErrInvalidAddress     = errorsmod.Register(Codespace, 12, "invalid address")
	ErrEmptyPool          = errorsmod.Register(Codespace, 13, "yield pool balance is zero")
	ErrZeroRate           = errorsmod.Register(Codespace, 14, "exchange rate is zero")
	ErrHostQuery          = errorsmod.Register(Codespace, 15, "collaborator query failed")
	ErrMalformedState     = errorsmod.Register(Codespace, 16, "stored state cannot be decoded")
	ErrNotInitialized     = errorsmod.Register(Codespace, 17, "contract not initialized")
	ErrAlreadyInitialized = errorsmod.Register(Codespace, 18, "contract already initialized")
)
