package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

const (
	abc256   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	abc512   = "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"
	empty256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errb bytes.Buffer
	code = Execute(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestSum(t *testing.T) {
	t.Run("Stdin", func(t *testing.T) {
		code, out, _ := run(t, "abc")
		assert.Equal(t, code, 0)
		assert.Equal(t, out, abc256+"  -\n")
	})

	t.Run("Subcommand", func(t *testing.T) {
		code, out, _ := run(t, "abc", "sum", "-a", "sha512", "-")
		assert.Equal(t, code, 0)
		assert.Equal(t, out, abc512+"  -\n")
	})

	t.Run("Files", func(t *testing.T) {
		a := writeFile(t, "a", "abc")
		b := writeFile(t, "b", "")

		code, out, _ := run(t, "", a, b)
		assert.Equal(t, code, 0)
		assert.Equal(t, out, fmt.Sprintf("%s  %s\n%s  %s\n", abc256, a, empty256, b))
	})

	t.Run("SmallChunks", func(t *testing.T) {
		data := strings.Repeat("abcdefgh", 1000)
		_, want, _ := run(t, data)
		code, got, _ := run(t, data, "--chunk-size", "3B")
		assert.Equal(t, code, 0)
		assert.Equal(t, got, want)
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("SHA2SUM_ALGORITHM", "sha-512")
		code, out, _ := run(t, "abc")
		assert.Equal(t, code, 0)
		assert.Equal(t, out, abc512+"  -\n")
	})

	t.Run("MissingFile", func(t *testing.T) {
		a := writeFile(t, "a", "abc")
		missing := filepath.Join(t.TempDir(), "missing")

		code, out, stderr := run(t, "", missing, a)
		assert.Equal(t, code, 1)
		assert.Equal(t, out, abc256+"  "+a+"\n")
		assert.Equal(t, strings.Contains(stderr, "cannot hash"), true)
	})
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "md5"},
		{"--bogus"},
		{"--chunk-size", "lots"},
		{"--chunk-size", "0"},
		{"sum", "--log-level", "loud"},
		{"check", "a", "b"},
		{"bench", "extra"},
		{"bench", "--max-size", "huge"},
	} {
		code, _, _ := run(t, "", args...)
		assert.Equal(t, code, 2)
	}
}

func TestCheck(t *testing.T) {
	a := writeFile(t, "a", "abc")
	b := writeFile(t, "b", "")

	t.Run("OK", func(t *testing.T) {
		sums := writeFile(t, "sums", fmt.Sprintf("%s  %s\n%s *%s\n", abc512, a, strings.ToUpper(empty256), b))

		code, out, _ := run(t, "", "check", sums)
		assert.Equal(t, code, 0)
		assert.Equal(t, out, a+": OK\n"+b+": OK\n")
	})

	t.Run("Stdin", func(t *testing.T) {
		code, out, _ := run(t, abc256+"  "+a+"\n", "check")
		assert.Equal(t, code, 0)
		assert.Equal(t, out, a+": OK\n")
	})

	t.Run("Failed", func(t *testing.T) {
		sums := fmt.Sprintf("%s  %s\n%s  %s\n", empty256, a, empty256, b)

		code, out, _ := run(t, sums, "check", "-")
		assert.Equal(t, code, 1)
		assert.Equal(t, out, a+": FAILED\n"+b+": OK\n")
	})

	t.Run("Malformed", func(t *testing.T) {
		code, out, stderr := run(t, "not a sum line\n"+abc256+"  "+a+"\n", "check")
		assert.Equal(t, code, 1)
		assert.Equal(t, out, a+": OK\n")
		assert.Equal(t, strings.Contains(stderr, "improperly formatted"), true)
	})

	t.Run("StdinEntry", func(t *testing.T) {
		sums := writeFile(t, "sums", empty256+"  -\n")

		code, out, _ := run(t, "abc", "check", sums)
		assert.Equal(t, code, 1)
		assert.Equal(t, out, "-: FAILED\n")

		sums = writeFile(t, "sums", abc256+"  -\n")
		code, out, _ = run(t, "abc", "check", sums)
		assert.Equal(t, code, 0)
		assert.Equal(t, out, "-: OK\n")
	})

	t.Run("StdinEntryWithStdinSums", func(t *testing.T) {
		code, out, stderr := run(t, abc256+"  -\n", "check")
		assert.Equal(t, code, 1)
		assert.Equal(t, out, "-: FAILED open or read\n")
		assert.Equal(t, strings.Contains(stderr, "sum list"), true)
	})

	t.Run("Unreadable", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")

		code, out, _ := run(t, abc256+"  "+missing+"\n", "check")
		assert.Equal(t, code, 1)
		assert.Equal(t, out, missing+": FAILED open or read\n")
	})
}

func TestParseCheckLine(t *testing.T) {
	cl, ok := parseCheckLine(abc256 + "  name with spaces")
	assert.Equal(t, ok, true)
	assert.Equal(t, cl.name, "name with spaces")
	assert.Equal(t, cl.want, abc256)

	for _, line := range []string{
		abc256,
		abc256 + " x",
		abc256[:10] + "  x",
		strings.Repeat("z", 64) + "  x",
		abc256 + "  ",
	} {
		_, ok := parseCheckLine(line)
		assert.Equal(t, ok, false)
	}
}

func TestBench(t *testing.T) {
	code, out, _ := run(t, "", "bench", "--all", "--max-size", "2KiB", "--seed", "7")
	assert.Equal(t, code, 0)
	assert.Equal(t, strings.Contains(out, "sha256"), true)
	assert.Equal(t, strings.Contains(out, "sha512"), true)
	assert.Equal(t, strings.Contains(out, "MISMATCH"), false)
}
