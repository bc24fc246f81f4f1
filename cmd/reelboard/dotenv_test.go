// ABOUTME: Tests for the .env file loader that reads KEY=VALUE pairs into the process environment.
// ABOUTME: Covers plain and quoted values, comments, export prefixes, and no-clobber behavior.
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// unsetForTest clears key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDotEnvValues(t *testing.T) {
	path := writeTempEnv(t, `# board settings
REELBOARD_TEST_PLAIN=plain

REELBOARD_TEST_DOUBLE="double quoted"
REELBOARD_TEST_SINGLE='single quoted'
export REELBOARD_TEST_EXPORTED=yes
REELBOARD_TEST_EQUALS=a=b
not a pair
`)
	want := map[string]string{
		"REELBOARD_TEST_PLAIN":    "plain",
		"REELBOARD_TEST_DOUBLE":   "double quoted",
		"REELBOARD_TEST_SINGLE":   "single quoted",
		"REELBOARD_TEST_EXPORTED": "yes",
		"REELBOARD_TEST_EQUALS":   "a=b",
	}
	for k := range want {
		unsetForTest(t, k)
	}

	loadDotEnv(path)

	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestLoadDotEnvDoesNotClobber(t *testing.T) {
	path := writeTempEnv(t, "REELBOARD_TEST_KEEP=from-file\n")
	t.Setenv("REELBOARD_TEST_KEEP", "from-env")

	loadDotEnv(path)

	if got := os.Getenv("REELBOARD_TEST_KEEP"); got != "from-env" {
		t.Errorf("REELBOARD_TEST_KEEP = %q, want from-env", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"x"`, "x"},
		{`'x'`, "x"},
		{`"x'`, `"x'`},
		{`"`, `"`},
		{"", ""},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
