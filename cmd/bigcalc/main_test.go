// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/bigint"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes bigcalc with args and returns its standard output and error
// output.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestOperations(t *testing.T) {
	for _, d := range []struct {
		args []string
		out  string
	}{
		{[]string{"add", "123", "456"}, "579"},
		{[]string{"sub", "--", "-7", "5"}, "-12"},
		{[]string{"mul", "123456789012345678901234567890", "987654321098765432109876543210"},
			"121932631137021795226185032733622923332237463801111263526900"},
		{[]string{"sq", "99999999999"}, "9999999999800000000001"},
		{[]string{"div", "--", "-7", "2"}, "-3"},
		{[]string{"rem", "--", "-7", "2"}, "-1"},
		{[]string{"divrem", "--", "-7", "2"}, "-3 -1"},
		{[]string{"pow", "2", "100"}, "1267650600228229401496703205376"},
		{[]string{"modpow", "5", "3", "13"}, "8"},
		{[]string{"exp10", "123456", "3"}, "123456000"},
		{[]string{"exp10", "--", "123456", "-4"}, "12"},
		{[]string{"cmp", "10", "9"}, "1"},
		{[]string{"cmp", "--", "-10", "9"}, "-1"},
		{[]string{"cmp", "1e3", "1000"}, "0"},
		{[]string{"conv", "255", "16"}, "FF"},
		{[]string{"conv", "1e9", "36"}, "GJDGXS"},
		{[]string{"log", "1"}, "0"},
		{[]string{"--radix", "16", "add", "FF", "1"}, "100"},
		{[]string{"--radix", "0", "mul", "0x10", "0b11"}, "48"},
		{[]string{"--radix", "2", "sq", "11"}, "1001"},
	} {
		t.Run(strings.Join(d.args, " "), func(t *testing.T) {
			out, _, err := run(t, "", d.args...)
			require.NoError(t, err)
			assert.Equal(t, d.out+"\n", out)
		})
	}
}

func TestOperationErrors(t *testing.T) {
	for _, d := range []struct {
		args []string
		is   error
	}{
		{[]string{"div", "1", "0"}, bigint.ErrDivideByZero},
		{[]string{"add", "12z", "1"}, bigint.ErrFormat},
		{[]string{"pow", "2", "1e10"}, bigint.ErrExponentRange},
		{[]string{"modpow", "2", "3", "0"}, bigint.ErrDivideByZero},
		{[]string{"exp10", "1", "1e30"}, bigint.ErrArgumentRange},
		{[]string{"conv", "1", "37"}, bigint.ErrRadix},
		{[]string{"conv", "1", "ten"}, bigint.ErrRadix},
		{[]string{"--radix", "40", "add", "1", "1"}, bigint.ErrRadix},
	} {
		t.Run(strings.Join(d.args, " "), func(t *testing.T) {
			_, _, err := run(t, "", d.args...)
			assert.True(t, errors.Is(err, d.is), "got %v, want %v", err, d.is)
		})
	}

	_, _, err := run(t, "", "add", "1")
	assert.Error(t, err)
	_, _, err = run(t, "", "--log-level", "loud", "add", "1", "2")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	input := `# comment
add 1 2

mul 123456789 987654321
divrem -7 2
frob 1 2
div 1 0
pow 2 64
`
	out, _, err := run(t, input, "--workers", "2", "batch")
	assert.Error(t, err)
	assert.Equal(t, strings.Join([]string{
		"3",
		"121932631112635269",
		"-3 -1",
		`line 6: unknown operation "frob"`,
		"line 7: div: " + bigint.ErrDivideByZero.Error(),
		"18446744073709551616",
	}, "\n")+"\n", out)
}

func TestBatchOrder(t *testing.T) {
	var in, want strings.Builder
	for i := 0; i < 200; i++ {
		in.WriteString("pow 3 ")
		in.WriteString(bigint.NewInt(int64(i)).String())
		in.WriteByte('\n')
		p, _ := bigint.NewInt(3).Pow(bigint.NewInt(int64(i)))
		want.WriteString(p.String())
		want.WriteByte('\n')
	}
	out, _, err := run(t, in.String(), "--workers", "8", "batch")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("sub 1 2\n"), 0o600))
	out, _, err := run(t, "", "batch", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	_, _, err = run(t, "", "batch", "-f", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte("radix = 16\nlog_level = \"debug\"\nlog_format = \"json\"\n"), 0o600))

	out, logs, err := run(t, "", "--config", path, "add", "F", "1")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Contains(t, logs, `"name":"add"`)
	assert.Contains(t, logs, `"msg":"evaluating"`)

	// flags override the file
	out, logs, err = run(t, "", "--config", path, "--radix", "10", "--log-level", "error", "add", "9", "1")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Empty(t, logs)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bigcalc "+version), out)
}
