package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/safecrt/foundation/core/config"
	mdwerror "github.com/msto63/safecrt/foundation/core/error"
	mdwlog "github.com/msto63/safecrt/foundation/core/log"
	"github.com/msto63/safecrt/foundation/utils/filex"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg     *config.Config
	logger  *mdwlog.Logger
	logFile *filex.File
	runID   string
}

// statusError carries a failed status whose result was already printed
type statusError struct {
	status stringx.Status
}

func (e *statusError) Error() string {
	return e.status.String()
}

func (e *statusError) Unwrap() error {
	return e.status.Err()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "safecrt",
		Short: "Bounded string, print and clock operations on fixed buffers",
		Long: `safecrt runs bounded C runtime style operations on fixed size
buffers and reports the outcome of each one.

Commands:
  cat     - append SRC to DEST inside a dmax byte buffer
  cpy     - copy SRC into a dmax byte buffer
  printf  - format into a fixed size buffer
  now     - render the wall clock into a fixed size buffer
  version - show build information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $SAFECRT_CONFIG, ./safecrt.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newCatCmd(a),
		newCpyCmd(a),
		newPrintfCmd(a),
		newNowCmd(a),
		newVersionCmd(),
	)

	return rootCmd, a
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return exitCode(rootCmd.ErrOrStderr(), err)
}

// exitCode reports err unless it was already printed and maps it to an
// exit status by error category
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var se *statusError
	if !errors.As(err, &se) {
		fmt.Fprintln(stderr, failStyle.Render("Error:")+" "+err.Error())
	}

	return mdwerror.GetCode(err).ExitCode()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, _ := mdwlog.ParseLevel(a.cfg.Log.Level)
	if a.verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := mdwlog.ParseFormat(a.cfg.Log.Format)

	output := cmd.ErrOrStderr()
	if a.cfg.Log.File != "" {
		a.logFile, err = filex.Open(a.cfg.Log.File, "a")
		if err != nil {
			return err
		}
		output = a.logFile
	}

	a.runID = uuid.NewString()
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "safecrt",
	}).WithCorrelationID(a.runID).WithField("command", cmd.Name())

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"source":     a.cfg.Source(),
		"null_slack": a.cfg.Concat.NullSlack,
		"max_length": a.cfg.Concat.MaxLength,
	})

	return nil
}

// close flushes and closes the log file, if one was opened
func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// report logs a failed status and converts it for Execute
func (a *app) report(st stringx.Status) error {
	if st.OK() {
		return nil
	}
	a.logger.LogError(st.Err())
	return &statusError{status: st}
}
