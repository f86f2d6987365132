package contract

import (
	"encoding/json"
	"strconv"

	"github.com/L-Nova0211/Wefund-contract/sdk"
)

// ToJSON serializes state blobs and responses. Marshal failures are internal
// bugs, not caller mistakes, so they surface as malformed-state errors.
func ToJSON(v any, objectType string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", ErrMalformedState.Wrapf("marshal %s: %v", objectType, err)
	}
	return string(b), nil
}

// FromJSON decodes a stored blob or inbound payload into its typed form.
func FromJSON[T any](data string, objectType string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, ErrMalformedState.Wrapf("unmarshal %s: %v", objectType, err)
	}
	return &v, nil
}

// getCount reads the string counter under the key, zero when unset. A blob
// that no longer parses means corrupted storage; restarting the sequence
// would overwrite live records, so the call dies instead.
func getCount(key string) uint64 {
	ptr := getState().Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupted counter " + key + ": " + *ptr)
	}
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	getState().Set(key, strconv.FormatUint(n, 10))
}

// strptr is a tiny convenience for the wasm export wrappers.
func strptr(s string) *string { return &s }

// formatID renders project ids for attributes and log lines.
func formatID(id uint64) string { return strconv.FormatUint(id, 10) }
