package config

// IServiceConfiguration defines a configuration which can be loaded from the environment.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
