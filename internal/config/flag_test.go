package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "both flags", args: []string{"cmd", "-d", "/tmp/notes.db", "-l", "debug"},
			expected: &Config{DatabaseDSN: "/tmp/notes.db", LogLevel: "debug"}},
		{name: "only dsn", args: []string{"cmd", "-d", "alt.db"},
			expected: &Config{DatabaseDSN: "alt.db"}},
		{name: "no flags keep current values", args: []string{"cmd"},
			expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
