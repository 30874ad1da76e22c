package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.mnemonix",
		Entropy: EntropyConfig{
			Hardened:    true,
			DefaultBits: 256,
		},
		Wallet: WalletConfig{
			Network:     "mainnet",
			AddressType: "p2wpkh",
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.mnemonix/mnemonix.log",
		},
	}
}
