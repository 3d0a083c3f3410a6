package pkg

import (
	"github.com/powerman/structlog"
)

// InitLog sets the default logger layout shared by molcal commands:
// time, level and unit first, the source line last.
func InitLog() {
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyTime, structlog.KeyLevel, structlog.KeyUnit,
		).
		SetDefaultKeyvals(
			structlog.KeyUnit, "main",
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   "%[2]s",
			structlog.KeyUnit:   " %-8[2]s",
			structlog.KeySource: " %[2]s",
		})
}

// LogPrependSuffixKeys returns child logger with keyvals printed right after the message.
func LogPrependSuffixKeys(log *structlog.Logger, args ...interface{}) *structlog.Logger {
	var keys []string
	for i, arg := range args {
		if i%2 == 0 {
			k, ok := arg.(string)
			if !ok {
				panic("key must be string")
			}
			keys = append(keys, k)
		}
	}
	return log.New(args...).PrependSuffixKeys(keys...)
}
