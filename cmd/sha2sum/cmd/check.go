package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zeebo/sha2"
)

func newCheckCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "check [sumfile]",
		Short: "verify digests listed in a file produced by 'sha2sum sum'",
		Long: "check reads lines of the form '<hex>  <name>' from sumfile, or stdin\n" +
			"when it is absent or '-'. The algorithm is taken from the digest length.",
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: e.runCheck,
	}
	addSumFlags(c)
	return c
}

// errStdinTaken is reported for a '-' entry when the sum list itself is read
// from stdin.
var errStdinTaken = errors.New("stdin is already the sum list")

type checkLine struct {
	alg  sha2.Algorithm
	want string
	name string
}

// parseCheckLine accepts the coreutils format, including the '*' binary
// marker in front of the name.
func parseCheckLine(line string) (checkLine, bool) {
	sum, name, ok := strings.Cut(line, " ")
	if !ok || len(name) < 2 {
		return checkLine{}, false
	}
	if name[0] != ' ' && name[0] != '*' {
		return checkLine{}, false
	}
	name = name[1:]

	var alg sha2.Algorithm
	switch len(sum) {
	case 2 * sha2.Size256:
		alg = sha2.SHA256
	case 2 * sha2.Size512:
		alg = sha2.SHA512
	default:
		return checkLine{}, false
	}

	if _, err := hex.DecodeString(sum); err != nil {
		return checkLine{}, false
	}

	return checkLine{alg: alg, want: strings.ToLower(sum), name: name}, true
}

func (e *env) runCheck(cmd *cobra.Command, args []string) error {
	chunk, err := e.chunkSize()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	source := "-"
	if len(args) == 1 && args[0] != "-" {
		source = args[0]
		fh, err := os.Open(source)
		if err != nil {
			return errors.WithStack(err)
		}
		defer func() { _ = fh.Close() }()
		in = fh
	}

	var bad, malformed int
	out := cmd.OutOrStdout()

	scanner := bufio.NewScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		cl, ok := parseCheckLine(line)
		if !ok {
			e.log.Warn().Str("source", source).Int("line", lineno).Msg("improperly formatted line")
			malformed++
			continue
		}

		status := "OK"
		var got string
		if cl.name == "-" && source == "-" {
			err = errStdinTaken
		} else {
			got, err = hashNamed(cl.alg, cl.name, cmd.InOrStdin(), chunk)
		}
		switch {
		case err != nil:
			e.log.Error().Err(err).Str("file", cl.name).Msg("cannot hash")
			status = "FAILED open or read"
			bad++
		case got != cl.want:
			status = "FAILED"
			bad++
		}

		if _, err := fmt.Fprintf(out, "%s: %s\n", cl.name, status); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read sums")
	}

	if bad > 0 || malformed > 0 {
		e.log.Warn().Int("failed", bad).Int("malformed", malformed).Msg("check did not pass")
		return errFailed
	}
	return nil
}
