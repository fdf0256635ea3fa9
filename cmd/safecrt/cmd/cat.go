package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/safecrt/foundation/core/log"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

type catOptions struct {
	dmax      int
	nullSlack bool
	srcFile   string
	dump      bool
}

func newCatCmd(a *app) *cobra.Command {
	opts := &catOptions{}

	cmd := &cobra.Command{
		Use:   "cat DEST [SRC]",
		Short: "Append SRC to DEST inside a dmax byte buffer",
		Long: `Places DEST in a buffer of dmax bytes and appends SRC to it.

The source is taken from --src-file when given; its contents end at the
first NUL byte or at the end of the file. A buffer too small for the
result keeps the part of SRC that fits and reports "not enough space".`,
		Example: `  safecrt cat foo bar --dmax 8
  safecrt cat foo --src-file suffix.bin --dmax 64 --null-slack --dump`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.srcFile != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCat(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.dmax, "dmax", 0, "declared capacity of the destination buffer")
	cmd.Flags().BoolVar(&opts.nullSlack, "null-slack", false, "zero the buffer after the terminator on success")
	cmd.Flags().StringVar(&opts.srcFile, "src-file", "", "read SRC from a file")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the buffer bytes")
	_ = cmd.MarkFlagRequired("dmax")

	return cmd
}

func (a *app) runCat(cmd *cobra.Command, args []string, opts *catOptions) error {
	src, err := sourceBytes(argOr(args, 1), opts.srcFile)
	if err != nil {
		return err
	}

	options := a.cfg.ConcatOptions()
	if cmd.Flags().Changed("null-slack") {
		options.NullSlack = opts.nullSlack
	}

	dest := newBuffer(args[0], opts.dmax)

	timer := a.logger.StartTimer("cat").WithField("dmax", opts.dmax)
	st := stringx.CatWithOptions(dest, opts.dmax, src, options)
	timer.Stop()

	a.logger.Debug("concat finished", mdwlog.Fields{
		"status":     st.String(),
		"dest_len":   len(args[0]),
		"src_len":    stringx.Len(src, len(src)),
		"null_slack": options.NullSlack,
	})

	printResult(cmd.OutOrStdout(), st, dest, opts.dmax, opts.dump)
	return a.report(st)
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
