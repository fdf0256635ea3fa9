package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/safecrt/foundation/core/log"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

type cpyOptions struct {
	dmax      int
	nullSlack bool
	dump      bool
}

func newCpyCmd(a *app) *cobra.Command {
	opts := &cpyOptions{}

	cmd := &cobra.Command{
		Use:   "cpy SRC",
		Short: "Copy SRC into a dmax byte buffer",
		Long: `Copies SRC into an empty buffer of dmax bytes. When SRC and its
terminator do not fit, nothing is copied and the buffer is left holding
the empty string.`,
		Example: `  safecrt cpy hello --dmax 6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCpy(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.dmax, "dmax", 0, "declared capacity of the destination buffer")
	cmd.Flags().BoolVar(&opts.nullSlack, "null-slack", false, "zero the buffer after the terminator on success")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the buffer bytes")
	_ = cmd.MarkFlagRequired("dmax")

	return cmd
}

func (a *app) runCpy(cmd *cobra.Command, args []string, opts *cpyOptions) error {
	src, _ := sourceBytes(args[0], "")

	options := a.cfg.ConcatOptions()
	if cmd.Flags().Changed("null-slack") {
		options.NullSlack = opts.nullSlack
	}

	dest := newBuffer("", opts.dmax)
	st := stringx.CpyWithOptions(dest, opts.dmax, src, options)

	a.logger.Debug("copy finished", mdwlog.Fields{
		"status":  st.String(),
		"dmax":    opts.dmax,
		"src_len": len(args[0]),
	})

	printResult(cmd.OutOrStdout(), st, dest, opts.dmax, opts.dump)
	return a.report(st)
}
