package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/safecrt/foundation/utils/timex"
	"github.com/msto63/safecrt/pkg/core/version"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes the command line in a temporary working directory with no
// config file in reach
func run(t *testing.T, args ...string) result {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

func runIn(t *testing.T, dir string, args ...string) result {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("SAFECRT_CONFIG", "")

	rootCmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	code := exitCode(&errOut, err)

	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func TestCatCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		status string
		result string
	}{
		{"fits", []string{"cat", "foo", "bar", "--dmax", "8"}, 0, "ok", `"foobar"`},
		{"exact fit", []string{"cat", "foo", "bar", "--dmax", "7"}, 0, "ok", `"foobar"`},
		{"no space", []string{"cat", "foo", "bar", "--dmax", "6"}, 2, "not enough space for source", `"fooba"`},
		{"unterminated", []string{"cat", "abcd", "x", "--dmax", "4"}, 2, "unterminated destination", ""},
		{"zero length", []string{"cat", "foo", "bar", "--dmax", "0"}, 2, "zero length", ""},
		{"negative length", []string{"cat", "foo", "bar", "--dmax", "-3"}, 2, "zero length", ""},
		{"exceeds max", []string{"cat", "foo", "bar", "--dmax", "5000"}, 2, "length exceeds max", ""},
		{"empty source", []string{"cat", "foo", "", "--dmax", "4"}, 0, "ok", `"foo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.args...)

			assert.Equal(t, tt.code, r.code, "stderr: %s", r.stderr)
			assert.Contains(t, r.stdout, tt.status)
			if tt.result != "" {
				assert.Contains(t, r.stdout, tt.result)
			}
		})
	}
}

func TestCatSourceFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src.bin"), []byte("bar\x00junk"), 0o644))

	r := runIn(t, dir, "cat", "foo", "--src-file", "src.bin", "--dmax", "16")

	assert.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"foobar"`)
	assert.NotContains(t, r.stdout, "junk")
}

func TestCatSourceFileMissing(t *testing.T) {
	r := run(t, "cat", "foo", "--src-file", "absent.bin", "--dmax", "16")

	assert.Equal(t, 3, r.code)
	assert.Contains(t, r.stderr, "Error:")
}

func TestCatDump(t *testing.T) {
	r := run(t, "cat", "foo", "bar", "--dmax", "8", "--null-slack", "--dump")

	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "66 6f 6f 62 61 72 00 00")
}

func TestCatUsageErrors(t *testing.T) {
	r := run(t, "cat", "foo", "--dmax", "8")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Error:")

	r = run(t, "cat", "foo", "bar")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "dmax")
}

func TestCpyCommand(t *testing.T) {
	r := run(t, "cpy", "hello", "--dmax", "6")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"hello"`)

	r = run(t, "cpy", "hello", "--dmax", "5")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stdout, "not enough space for source")
	assert.Contains(t, r.stdout, `""`)
}

func TestPrintfCommand(t *testing.T) {
	r := run(t, "printf", "--size", "16", "dmax=%d %s", "16", "ok")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"dmax=16 ok"`)
	assert.Contains(t, r.stdout, "10 / 16")

	r = run(t, "printf", "--size", "4", "dmax=%d", "16")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"dma"`)
	assert.Contains(t, r.stdout, "output truncated")

	r = run(t, "printf", "--size", "0", "x")
	assert.Equal(t, 2, r.code)
}

func TestParseArgs(t *testing.T) {
	got := parseArgs([]string{"16", "0x10", "2.5", "text"})
	assert.Equal(t, []interface{}{int64(16), int64(16), 2.5, "text"}, got)
}

func TestNowCommand(t *testing.T) {
	orig := clock
	defer func() { clock = orig }()
	fixed := time.Date(2023, 12, 5, 15, 4, 9, 250*int(time.Millisecond), time.UTC)
	clock = func() timex.Time { return timex.FromTime(fixed) }

	r := run(t, "now", "--format", "%Y-%m-%d", "--size", "11")
	assert.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"2023-12-05"`)
	assert.Contains(t, r.stdout, "250")

	r = run(t, "now", "--format", "%Y-%m-%d", "--size", "10")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stdout, "not enough space for source")

	r = run(t, "now", "--format", "compact")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"20231205150409"`)

	r = run(t, "now")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"2023-12-05 15:04:09"`)
}

func TestVersionCommand(t *testing.T) {
	r := run(t, "version")

	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "safecrt v"+version.Module)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := `
[concat]
max_length = 8

[log]
level = "debug"
format = "json"
file = "run.log"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "safecrt.toml"), []byte(conf), 0o644))

	r := runIn(t, dir, "cat", "foo", "bar", "--dmax", "16")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stdout, "length exceeds max")
	assert.Empty(t, r.stderr, "log output goes to the log file")

	data, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"concat finished"`)
	assert.Contains(t, string(data), `"correlation_id"`)
	assert.Contains(t, string(data), `"error_code":"VALUE_OUT_OF_RANGE"`)
}

func TestExplicitConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concat:\n  max_length: 4\n"), 0o644))

	r := run(t, "--config", path, "cpy", "ab", "--dmax", "5")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stdout, "length exceeds max")
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "safecrt.toml"), []byte("[log]\nlevel = \"loud\"\n"), 0o644))

	r := runIn(t, dir, "cpy", "x", "--dmax", "4")
	assert.Equal(t, 4, r.code)
	assert.Contains(t, r.stderr, "log.level")
}

func TestVerboseLogging(t *testing.T) {
	r := run(t, "-v", "cat", "foo", "bar", "--dmax", "8")

	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stderr, "concat finished")
	assert.Contains(t, r.stderr, "run=")
}
