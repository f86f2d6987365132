package contract

// The community registry decides which track a backing lands on. Membership
// is owner curated and read on every backing, so the whole list stays in one
// blob.

// AddCommunitymember registers a wallet on the community track.
//
//go:wasmexport add_communitymember
func AddCommunitymember(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[WalletArgs](payload, "wallet args")
		if err != nil {
			return nil, err
		}
		return addCommunitymember(args)
	})
}

func addCommunitymember(args *WalletArgs) (*Response, error) {
	if _, err := requireOwner(); err != nil {
		return nil, err
	}
	if !args.Wallet.IsValid() {
		return nil, ErrInvalidAddress.Wrapf("community wallet %q", args.Wallet.String())
	}
	list, err := loadCommunity()
	if err != nil {
		return nil, err
	}
	if isCommunityMember(list, args.Wallet) {
		return nil, ErrAlreadyCommunity.Wrapf("wallet %s", args.Wallet.String())
	}
	list = append(list, args.Wallet)
	if err := saveCommunity(list); err != nil {
		return nil, err
	}
	emitCommunityChanged(args.Wallet.String(), true)
	return NewResponse().addAttribute("wallet", args.Wallet.String()), nil
}

// RemoveCommunitymember drops a wallet from the community track. Existing
// contributions keep the track they were credited on.
//
//go:wasmexport remove_communitymember
func RemoveCommunitymember(payload *string) *string {
	return execute(func() (*Response, error) {
		args, err := decodeArgs[WalletArgs](payload, "wallet args")
		if err != nil {
			return nil, err
		}
		return removeCommunitymember(args)
	})
}

func removeCommunitymember(args *WalletArgs) (*Response, error) {
	if _, err := requireOwner(); err != nil {
		return nil, err
	}
	list, err := loadCommunity()
	if err != nil {
		return nil, err
	}
	kept := list[:0]
	found := false
	for _, w := range list {
		if w == args.Wallet {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return nil, ErrNotCommunity.Wrapf("wallet %s", args.Wallet.String())
	}
	if err := saveCommunity(kept); err != nil {
		return nil, err
	}
	emitCommunityChanged(args.Wallet.String(), false)
	return NewResponse().addAttribute("wallet", args.Wallet.String()), nil
}
