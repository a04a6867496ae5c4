package manager

import (
	"unicode"

	"github.com/rs/zerolog/log"
)

// LogNotifier routes action outcomes to the structured log. The HTTP surface
// additionally returns them in response bodies; the log keeps an audit trail.
type LogNotifier struct {
	Resource string
}

func (n LogNotifier) Success(message string) {
	log.Info().Str("resource", n.Resource).Msg(message)
}

func (n LogNotifier) Error(message string) {
	log.Error().Str("resource", n.Resource).Msg(message)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// title uppercases the first rune of a resource name for user-facing messages.
func title(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
