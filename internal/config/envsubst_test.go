package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("STREAMGEN_TEST_KEY", "abc")
	t.Setenv("STREAMGEN_TEST_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		missing []string
	}{
		{"plain", `api_key = "${STREAMGEN_TEST_KEY}"`, `api_key = "abc"`, nil},
		{"unset", `api_key = "${STREAMGEN_TEST_UNSET_12345}"`, `api_key = "${STREAMGEN_TEST_UNSET_12345}"`, []string{"STREAMGEN_TEST_UNSET_12345"}},
		{"set but empty", `api_key = "${STREAMGEN_TEST_EMPTY}"`, `api_key = ""`, nil},
		{"fallback used", `default_url = "${STREAMGEN_TEST_EMPTY:-https://streamwish.to/e/none00}"`, `default_url = "https://streamwish.to/e/none00"`, nil},
		{"fallback ignored", `x = "${STREAMGEN_TEST_KEY:-other}"`, `x = "abc"`, nil},
		{"required missing", `x = "${STREAMGEN_TEST_EMPTY:?get a key}"`, `x = "${STREAMGEN_TEST_EMPTY:?get a key}"`, []string{"STREAMGEN_TEST_EMPTY: get a key"}},
		{"required present", `x = "${STREAMGEN_TEST_KEY:?get a key}"`, `x = "abc"`, nil},
		{"comment line", "# ${VAR:?message} is read from the environment", "# ${VAR:?message} is read from the environment", nil},
		{"trailing comment", `x = "${STREAMGEN_TEST_KEY}" # or ${VAR}`, `x = "abc" # or ${VAR}`, nil},
		{"hash inside string", `x = "a#${STREAMGEN_TEST_KEY}"`, `x = "a#abc"`, nil},
		{"hash inside literal string", `x = 'a#${STREAMGEN_TEST_KEY}'`, `x = 'a#abc'`, nil},
		{
			"several",
			"${STREAMGEN_TEST_KEY} ${STREAMGEN_TEST_UNSET_12345} ${STREAMGEN_TEST_EMPTY:-three}",
			"abc ${STREAMGEN_TEST_UNSET_12345} three",
			[]string{"STREAMGEN_TEST_UNSET_12345"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		line, code, comment string
	}{
		{`port = 8484`, `port = 8484`, ``},
		{`port = 8484 # http`, `port = 8484 `, `# http`},
		{`# whole line`, ``, `# whole line`},
		{`x = "say \"#1\"" # note`, `x = "say \"#1\"" `, `# note`},
	}
	for _, tt := range tests {
		code, comment := splitComment(tt.line)
		assert.Equal(t, tt.code, code, tt.line)
		assert.Equal(t, tt.comment, comment, tt.line)
	}
}
