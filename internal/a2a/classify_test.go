package a2a

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Strategy
	}{
		{"what is your name", StrategyNameQuery},
		{"Who are you?", StrategyNameQuery},
		{"hello, what is your name?", StrategyNameQuery}, // name query beats greeting
		{"hi there", StrategyGreeting},
		{"HELLO", StrategyGreeting},
		{"Hey!", StrategyGreeting},
		{"how are you doing", StrategyGreeting},
		{"give me a tip", StrategyDirectRequest},
		{"any advice on sleeping better?", StrategyDirectRequest},
		{"Tips please", StrategyDirectRequest},
		{"hi, got a tip?", StrategyGreeting}, // greeting outranks direct request
		{"tell me about hydration", StrategyDefault},
		{"this is something else", StrategyDefault}, // "hi" inside a word is not a greeting
		{"", StrategyDefault},
	}
	for _, c := range cases {
		if got := Classify(c.text); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
