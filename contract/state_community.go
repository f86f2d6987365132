package contract

import "github.com/L-Nova0211/Wefund-contract/sdk"

// -----------------------------------------------------------------------------
// Community Registry State
// -----------------------------------------------------------------------------

// loadCommunity returns the registry list; missing key means empty, since
// Instantiate seeds it and RemoveProject never touches it.
func loadCommunity() ([]sdk.Address, error) {
	ptr := getState().Get(CommunityKey)
	if ptr == nil || *ptr == "" {
		return []sdk.Address{}, nil
	}
	list, err := FromJSON[[]sdk.Address](*ptr, "community")
	if err != nil {
		return nil, err
	}
	return *list, nil
}

func saveCommunity(list []sdk.Address) error {
	data, err := ToJSON(list, "community")
	if err != nil {
		return err
	}
	getState().Set(CommunityKey, data)
	return nil
}

// isCommunityMember reports whether the wallet routes to the community track.
func isCommunityMember(list []sdk.Address, wallet sdk.Address) bool {
	for _, member := range list {
		if member == wallet {
			return true
		}
	}
	return false
}
