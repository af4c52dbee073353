package a2a

import "strings"

// Strategy is the response strategy chosen for an incoming message. All
// strategies except StrategyNameQuery resolve to "pick a tip and format it";
// StrategyNameQuery resolves to a fixed identity string.
type Strategy int

const (
	StrategyNameQuery Strategy = iota
	StrategyGreeting
	StrategyDirectRequest
	StrategyDefault
)

// String returns a short label for logging.
func (s Strategy) String() string {
	switch s {
	case StrategyNameQuery:
		return "name_query"
	case StrategyGreeting:
		return "greeting"
	case StrategyDirectRequest:
		return "direct_request"
	default:
		return "default"
	}
}

var (
	namePhrases     = []string{"what is your name", "what's your name", "who are you"}
	greetingPhrases = []string{"how are you", "what's up", "whats up"}
	greetingWords   = map[string]bool{"hi": true, "hello": true, "hey": true}
	requestWords    = map[string]bool{"tip": true, "tips": true, "advice": true}
)

// Classify inspects free-text message content and picks a response strategy.
// Matching is case-insensitive; checks run in fixed priority order
// (name query, greeting, direct request, default) and the first hit wins,
// so "hello, what is your name?" is a name query, never a greeting.
func Classify(text string) Strategy {
	lower := strings.ToLower(text)
	for _, p := range namePhrases {
		if strings.Contains(lower, p) {
			return StrategyNameQuery
		}
	}
	for _, p := range greetingPhrases {
		if strings.Contains(lower, p) {
			return StrategyGreeting
		}
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '\''
	})
	for _, w := range words {
		if greetingWords[w] {
			return StrategyGreeting
		}
	}
	for _, w := range words {
		if requestWords[w] {
			return StrategyDirectRequest
		}
	}
	return StrategyDefault
}
