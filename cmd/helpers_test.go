package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// testEnv points llmctl at a fake gateway and an isolated token file
type testEnv struct {
	ConfigPath string
	TokenFile  string
}

// newTestEnv writes a throwaway .llmctl.yaml wired to baseURL
func newTestEnv(t *testing.T, baseURL string) testEnv {
	t.Helper()
	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "token")
	cfgPath := filepath.Join(dir, ".llmctl.yaml")

	content := fmt.Sprintf(`api:
  base_url: %s
  timeout: 5s
session:
  token_file: %s
output:
  colors: false
`, baseURL, tokenFile)
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return testEnv{ConfigPath: cfgPath, TokenFile: tokenFile}
}

// signTestToken builds a credential the informational decoder accepts
func signTestToken(t *testing.T, id, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  id,
		"username": username,
		"role":     role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

// seedToken persists a signed credential so commands start authenticated
func (e testEnv) seedToken(t *testing.T, id, username, role string) string {
	t.Helper()
	signed := signTestToken(t, id, username, role)
	if err := os.WriteFile(e.TokenFile, []byte(signed), 0o600); err != nil {
		t.Fatalf("writing test token: %v", err)
	}
	return signed
}
