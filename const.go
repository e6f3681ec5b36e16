package reqkit

const (
	// DefaultMaxBodySize default value for Composer.MaxBodySize parameter
	DefaultMaxBodySize int64 = 5 << 20 // 5 mb

	// DefaultProtocol is assumed for messages read without a scheme.
	DefaultProtocol = "http:"
)
