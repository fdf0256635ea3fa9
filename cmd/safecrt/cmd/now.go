package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/safecrt/foundation/core/log"
	"github.com/msto63/safecrt/foundation/utils/stringx"
	"github.com/msto63/safecrt/foundation/utils/timex"
)

// clock is replaced in tests
var clock = timex.GetTimeOfDay

func newNowCmd(a *app) *cobra.Command {
	var (
		format string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Render the wall clock into a fixed size buffer",
		Long: `Reads the clock and renders it into a buffer of --size bytes.

--format takes strftime conversions (%Y %m %d %H %M %S %y %b %B %a %A %j
%p %I %Z %z %e %%) or a layout name: iso8601, iso8601-date, iso8601-time,
business, short, compact or log. The default comes from time.format in
the configuration.`,
		Example: `  safecrt now --format "%H:%M:%S" --size 9
  safecrt now --format iso8601`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Time.Format
			}
			return a.runNow(cmd, format, size)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "strftime pattern or layout name")
	cmd.Flags().IntVar(&size, "size", 64, "buffer size in bytes")

	return cmd
}

func (a *app) runNow(cmd *cobra.Command, format string, size int) error {
	t := clock()

	buf := make([]byte, min(max(size, 0), maxBuffer))
	st := stringx.StatusOK
	if strings.Contains(format, "%") {
		if timex.Strftime(buf, format, t) == 0 && timex.FormatStrftime(t, format) != "" {
			st = stringx.StatusNoSpace
			if size <= 0 {
				st = stringx.StatusZeroLength
			}
		}
	} else {
		s := timex.Format(t.Std(), format)
		st = stringx.Cpy(buf, size, append([]byte(s), stringx.Terminator))
	}

	a.logger.Debug("clock rendered", mdwlog.Fields{
		"seconds":     t.Seconds,
		"millisecond": timex.Millisecond(t),
		"format":      format,
		"status":      st.String(),
	})

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, renderField("Status", renderStatus(st)))
	if st.OK() {
		fmt.Fprintln(w, renderField("Time", strconv.Quote(stringx.String(buf))))
		fmt.Fprintln(w, renderField("Millis", strconv.Itoa(int(timex.Millisecond(t)))))
	}
	return a.report(st)
}
