package contract

import (
	"strconv"
	"time"

	"cosmossdk.io/math"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// ENVInterface hands out the per-call execution snapshot.
type ENVInterface interface {
	GetEnv() sdk.Env
}

// RealENV reads the snapshot from the host on every call.
type RealENV struct{}

func (r *RealENV) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

var envInterface ENVInterface

func InitENV(localDebug bool) {
	if localDebug {
		envInterface = NewMockENV()
	} else {
		envInterface = &RealENV{}
	}
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return envInterface.GetEnv().Sender
}

// contractAddress returns this contract's own account, the holder of the
// pooled yield position.
func contractAddress() sdk.Address {
	return sdk.Address(envInterface.GetEnv().ContractId)
}

// attachedStable returns the stable-denom amount attached to the call, zero
// when nothing usable was attached.
func attachedStable() math.Uint {
	for _, coin := range envInterface.GetEnv().Funds {
		if coin.Denom == sdk.AssetStable {
			return coin.Amount
		}
	}
	return math.ZeroUint()
}

// nowUnix returns the block timestamp as unix seconds. The env flips between
// integer seconds and iso formats, so both are accepted.
func nowUnix() int64 {
	ts := envInterface.GetEnv().Timestamp
	if ts == "" {
		return 0
	}
	if v, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return v
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix()
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", ts, time.UTC); err == nil {
		return t.Unix()
	}
	return 0
}
