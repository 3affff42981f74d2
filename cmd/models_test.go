package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/llm-central/llmctl/internal/catalog"
)

func TestModelsJSON(t *testing.T) {
	env := newTestEnv(t, "http://localhost:1")
	modelsCmd.Flags().Set("json", "true")
	defer modelsCmd.Flags().Set("json", "false")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"models", "--json", "--config", env.ConfigPath})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("models --json failed: %v", err)
	}

	var models []catalog.Model
	if err := json.Unmarshal(buf.Bytes(), &models); err != nil {
		t.Fatalf("invalid JSON output: %v\nGot: %s", err, buf.String())
	}

	if len(models) == 0 {
		t.Fatal("expected at least one model deployment")
	}

	defaults := 0
	seen := map[string]bool{}
	for _, m := range models {
		seen[m.ID] = true
		if m.Default {
			defaults++
		}
	}
	if !seen["gpt35turbo-dev"] {
		t.Errorf("expected gpt35turbo-dev in model list, got: %v", models)
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default deployment, got %d", defaults)
	}
}
