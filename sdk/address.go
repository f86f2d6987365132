package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
)

type Address string

// String returns the literal bech32 representation of the address.
// Example payload: sdk.Address("terra1alice").String()
func (a Address) String() string {
	return string(a)
}

// IsEmpty reports whether the address carries no value at all. Empty is a
// legal state for optional collaborator slots (token address, vesting module).
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.String()) == ""
}

// Domain guesses whether the address names a user wallet or another contract.
// Example payload: sdk.Address("terra1contractxyz").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "terra1contract") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid runs the light sanity check the host also enforces: lowercase
// bech32-ish text with no separators beyond the charset.
// Example payload: sdk.Address("terra1bob").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	if len(s) < 3 {
		return false
	}
	for _, r := range s {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !ok {
			return false
		}
	}
	return true
}
