package contract

// -----------------------------------------------------------------------------
// Platform Configuration State
// -----------------------------------------------------------------------------

// isInitialized returns true once Instantiate has stored a config record.
func isInitialized() bool {
	ptr := getState().Get(ConfigKey)
	return ptr != nil && *ptr != ""
}

// loadConfig loads the platform configuration from state.
func loadConfig() (*Config, error) {
	ptr := getState().Get(ConfigKey)
	if ptr == nil || *ptr == "" {
		return nil, ErrNotInitialized
	}
	return FromJSON[Config](*ptr, "config")
}

// saveConfig stores the platform configuration to state.
func saveConfig(cfg *Config) error {
	data, err := ToJSON(cfg, "config")
	if err != nil {
		return err
	}
	getState().Set(ConfigKey, data)
	return nil
}

// requireOwner loads config and rejects any sender but the platform owner.
func requireOwner() (*Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if getSenderAddress() != cfg.Owner {
		return nil, ErrUnauthorized
	}
	return cfg, nil
}
