package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
	mdwlog "github.com/msto63/safecrt/foundation/core/log"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

func newPrintfCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "printf FORMAT [ARGS...]",
		Short: "Format into a fixed size buffer",
		Long: `Formats ARGS with the Go fmt verbs in FORMAT into a buffer of
--size bytes. Arguments that parse as integers or floats are passed as
numbers, everything else as strings. The reported length is the length of
the complete output, so a length of --size or more means the buffer holds
a truncated prefix.`,
		Example: `  safecrt printf --size 16 "dmax=%d" 16`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrintf(cmd, args, size)
		},
	}

	cmd.Flags().IntVar(&size, "size", 64, "buffer size in bytes")

	return cmd
}

func (a *app) runPrintf(cmd *cobra.Command, args []string, size int) error {
	if size < 0 || size > maxBuffer {
		return mdwerror.Newf("size must be between 0 and %d", maxBuffer).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("printf").
			WithDetail("size", size)
	}

	buf := make([]byte, size)
	n := stringx.Printf(buf, args[0], parseArgs(args[1:])...)

	w := cmd.OutOrStdout()
	if n < 0 {
		err := mdwerror.New("buffer has no room for a terminator").
			WithCode(mdwerror.CodeInvalidLength).
			WithOperation("printf")
		a.logger.LogError(err)
		fmt.Fprintln(w, renderField("Status", failStyle.Render(err.Error())))
		return err
	}

	fmt.Fprintln(w, renderField("Result", strconv.Quote(stringx.String(buf))))
	fmt.Fprintln(w, renderField("Length", fmt.Sprintf("%d / %d", n, size)))

	if n >= size {
		a.logger.LogError(mdwerror.New("output truncated").
			WithCode(mdwerror.CodeTruncated).
			WithOperation("printf").
			WithDetail("needed", n+1).
			WithDetail("size", size))
		fmt.Fprintln(w, warnStyle.Render("output truncated"))
	}

	a.logger.Debug("printf finished", mdwlog.Fields{"length": n, "size": size})
	return nil
}

// parseArgs converts command line words into typed printf operands
func parseArgs(words []string) []interface{} {
	out := make([]interface{}, len(words))
	for i, w := range words {
		if n, err := strconv.ParseInt(w, 0, 64); err == nil {
			out[i] = n
		} else if f, err := strconv.ParseFloat(w, 64); err == nil {
			out[i] = f
		} else {
			out[i] = w
		}
	}
	return out
}
