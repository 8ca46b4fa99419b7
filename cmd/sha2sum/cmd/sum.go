package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha2"
)

func newSumCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "sum [files...]",
		Short: "print the digest of each file, or of stdin when none or '-' is given",
		Args:  cobra.ArbitraryArgs,
		RunE:  e.runSum,
	}
	addSumFlags(c)
	return c
}

// hashFlags are shared by every command that reads inputs.
func hashFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hash", pflag.ContinueOnError)
	fs.String("chunk-size", "32KiB", "how much to read and hash at a time")
	return fs
}

func addSumFlags(c *cobra.Command) {
	c.Flags().AddFlagSet(hashFlags())
}

func (e *env) chunkSize() (int, error) {
	n, err := humanize.ParseBytes(e.v.GetString("chunk-size"))
	if err != nil {
		return 0, errors.Wrap(errUsage, err.Error())
	}
	if n == 0 || n > 1<<30 {
		return 0, errors.Wrapf(errUsage, "chunk size %d out of range", n)
	}
	return int(n), nil
}

func (e *env) runSum(cmd *cobra.Command, args []string) error {
	alg, err := e.algorithm()
	if err != nil {
		return err
	}
	chunk, err := e.chunkSize()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	failed := false
	for _, name := range args {
		sum, err := hashNamed(alg, name, cmd.InOrStdin(), chunk)
		if err != nil {
			e.log.Error().Err(err).Str("file", name).Msg("cannot hash")
			failed = true
			continue
		}

		e.log.Debug().Str("file", name).Str("algorithm", alg.String()).Msg("hashed")
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, name); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

// hashNamed hashes the named file, or stdin for "-".
func hashNamed(alg sha2.Algorithm, name string, stdin io.Reader, chunk int) (string, error) {
	if name == "-" {
		return hashReader(alg, stdin, chunk)
	}

	fh, err := os.Open(name)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() { _ = fh.Close() }()

	return hashReader(alg, fh, chunk)
}

// hashReader feeds r to a new hasher at most chunk bytes at a time.
func hashReader(alg sha2.Algorithm, r io.Reader, chunk int) (string, error) {
	h, err := alg.New(nil)
	if err != nil {
		return "", err
	}

	buf := make([]byte, chunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if err := h.Update(buf[:n]); err != nil {
				return "", err
			}
		}
		if err == io.EOF {
			return h.HexDigest(), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "read")
		}
	}
}
