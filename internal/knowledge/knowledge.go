// Package knowledge loads the static business knowledge the assistant is
// primed with: the system prompt configuration and the intent → URL mapping
// used to inject a relevant link into replies.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Intent ties a set of trigger synonyms to the site URL worth surfacing when
// the customer asks about that topic.
type Intent struct {
	Synonyms []string `json:"synonyms"`
	URL      string   `json:"url"`
}

// Base holds the immutable startup knowledge.
type Base struct {
	promptJSON string
	intents    map[string]Intent
}

// Load reads the prompt and intents files. A missing prompt file is fatal to
// startup; a missing intents file only disables URL injection.
func Load(promptFile, intentsFile string) (*Base, error) {
	raw, err := os.ReadFile(promptFile)
	if err != nil {
		return nil, fmt.Errorf("knowledge: prompt configuration missing: %w", err)
	}

	var roles map[string]json.RawMessage
	if err := json.Unmarshal(raw, &roles); err != nil {
		return nil, fmt.Errorf("knowledge: invalid prompt configuration: %w", err)
	}
	promptJSON := string(raw)
	if jewelry, ok := roles["jewelry_ai"]; ok {
		pretty, err := json.MarshalIndent(json.RawMessage(jewelry), "", "  ")
		if err == nil {
			promptJSON = string(pretty)
		}
	}

	b := &Base{promptJSON: promptJSON, intents: map[string]Intent{}}

	if intentsFile != "" {
		if data, err := os.ReadFile(intentsFile); err == nil {
			_ = json.Unmarshal(data, &b.intents)
		}
	}
	return b, nil
}

// SystemPrompt assembles the full system prompt for the chat model.
func (b *Base) SystemPrompt() string {
	return "You are JewelryBox AI, a luxury jewelry consultant. Use this knowledge: " + b.promptJSON
}

// RelevantURL returns the most relevant site URL for the user input using
// synonym matching, or empty when nothing matches.
func (b *Base) RelevantURL(userInput string) string {
	lower := strings.ToLower(userInput)
	keys := make([]string, 0, len(b.intents))
	for k := range b.intents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		intent := b.intents[k]
		for _, synonym := range intent.Synonyms {
			if synonym != "" && strings.Contains(lower, strings.ToLower(synonym)) {
				return intent.URL
			}
		}
	}
	return ""
}

// InjectURL appends at most one relevant link to a reply.
func (b *Base) InjectURL(userInput, response string) string {
	if url := b.RelevantURL(userInput); url != "" {
		return response + "\n\nYou can explore that here: " + url
	}
	return response
}
