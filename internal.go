package textlog

// initializeOutputs returns the options that install cfg's outputs.
// With neither stderr nor files enabled, Configure falls back to stderr.
func initializeOutputs(cfg *Config) []ConfigOption {
	var outputs []Output
	if cfg.Stderr {
		outputs = append(outputs, DefaultStreamOutput())
	}

	opts := []ConfigOption{WithOutputs(outputs...)}
	for _, path := range cfg.Files {
		opts = append(opts, WithFile(path))
	}
	return opts
}
