package cli

import (
	"github.com/arcthorne/mnemonix/internal/config"
	"github.com/arcthorne/mnemonix/internal/output"
)

// Compile-time interface checks.
var (
	_ ConfigProvider = (*config.Config)(nil)
	_ LogWriter      = (*config.Logger)(nil)
	_ FormatProvider = (*output.Formatter)(nil)
)

// ConfigProvider provides read access to configuration values, enabling
// mocking configuration in tests.
type ConfigProvider interface {
	GetHome() string
	GetLoggingLevel() string
	GetLoggingFile() string
	GetOutputFormat() string
	IsVerbose() bool
}

// LogWriter provides logging capabilities, enabling mocking in tests.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// FormatProvider provides output format information, enabling mocking in tests.
type FormatProvider interface {
	Format() output.Format
}
