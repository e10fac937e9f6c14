package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCommand is the structured log field key for the running command.
	FieldCommand = "command"
	// FieldUser is the structured log field key for the acting user id.
	FieldUser = "user_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields turns command context into zap fields. Blank keys and values
// are skipped, so an unset user id leaves no "user_id" field behind.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields returns a child of logger carrying fields. A nil logger becomes
// a no-op one so commands built in tests need no logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithCommand attaches the command name and, when known, the acting user.
func WithCommand(logger *zap.Logger, command, userID string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldCommand, Value: command},
		StringField{Key: FieldUser, Value: userID},
	)...)
}
