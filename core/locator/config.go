package locator

// Config holds configuration for the service locator.
type Config struct {
	// DefaultLoader is the loader used by definitions that do not name one.
	DefaultLoader string `mapstructure:"default_loader" default:"default"`
}
