// Package cmd implements the sha2sum command line tool.
package cmd

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeebo/sha2"
)

const envPrefix = "SHA2SUM"

var (
	// errUsage marks errors caused by how the tool was invoked.
	errUsage = errors.New("usage error")

	// errFailed is returned after the failures were already reported.
	errFailed = errors.New("one or more inputs failed")
)

// env carries what every command needs once flags are parsed.
type env struct {
	v   *viper.Viper
	log zerolog.Logger
}

// Execute runs the tool with args and returns the process exit code:
// 0 on success, 1 on failure and 2 on a usage error.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{v: viper.New(), log: zerolog.New(stderr)}

	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Cause(err) == errFailed:
		return 1
	case errors.Cause(err) == errUsage:
		e.log.Error().Msg(err.Error())
		return 2
	default:
		e.log.Error().Err(err).Msg("failed")
		return 1
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "sha2sum [files...]",
		Short: "compute and check SHA-256 and SHA-512 digests",
		Long: "sha2sum prints or checks SHA-256 and SHA-512 digests. Without a\n" +
			"subcommand it behaves like 'sha2sum sum'. Every flag can also be set\n" +
			"through an environment variable, e.g. SHA2SUM_ALGORITHM=sha512.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
		RunE:              e.runSum,
	}

	root.PersistentFlags().StringP("algorithm", "a", "sha256", "hash algorithm: sha256 or sha512")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	addSumFlags(root)

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errUsage, err.Error())
	})

	root.AddCommand(
		newSumCmd(e),
		newCheckCmd(e),
		newBenchCmd(e),
	)

	return root
}

// setup binds the flags of the running command to the environment and
// builds the logger.
func (e *env) setup(cmd *cobra.Command, _ []string) error {
	e.v.SetEnvPrefix(envPrefix)
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	if err := e.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	level, err := zerolog.ParseLevel(e.v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	e.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("cmd", cmd.Name()).
		Logger()

	return nil
}

// usageArgs reports argument count problems as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Wrap(errUsage, err.Error())
		}
		return nil
	}
}

func (e *env) algorithm() (sha2.Algorithm, error) {
	alg, err := sha2.ParseAlgorithm(e.v.GetString("algorithm"))
	if err != nil {
		return 0, errors.Wrap(errUsage, err.Error())
	}
	return alg, nil
}
