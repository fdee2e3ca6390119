package ai

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed prompts.json
var promptsJSON []byte

var (
	promptsOnce sync.Once
	promptsMap  map[string]string
)

// prompt retrieves an embedded prompt template by key. Panics on a missing
// key: prompts are compiled in, so a miss is a programming error.
func prompt(key string) string {
	promptsOnce.Do(func() {
		if err := json.Unmarshal(promptsJSON, &promptsMap); err != nil {
			panic(fmt.Sprintf("failed to parse embedded prompts: %v", err))
		}
	})
	p, ok := promptsMap[key]
	if !ok {
		panic(fmt.Sprintf("prompt key %q not found", key))
	}
	return p
}

// formatPrompt replaces {{.Key}} placeholders with values from data.
func formatPrompt(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
