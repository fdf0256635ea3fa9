package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/msto63/safecrt/foundation/utils/filex"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

// maxBuffer caps the buffers the commands allocate. A larger dmax is
// passed through unchanged and rejected by the operation.
const maxBuffer = 1 << 20

// newBuffer returns a buffer holding s and its terminator, sized to dmax
// when dmax is larger
func newBuffer(s string, dmax int) []byte {
	size := len(s) + 1
	if dmax > size && dmax <= maxBuffer {
		size = dmax
	}
	buf := make([]byte, size)
	copy(buf, s)
	return buf
}

// sourceBytes returns the source operand: the file contents when path is
// set, else arg with a terminator
func sourceBytes(arg, path string) ([]byte, error) {
	if path != "" {
		return filex.ReadFile(path)
	}
	src := make([]byte, len(arg)+1)
	copy(src, arg)
	return src, nil
}

// printResult writes the outcome of a bounded operation on buf[:dmax]
func printResult(w io.Writer, st stringx.Status, buf []byte, dmax int, dump bool) {
	fmt.Fprintln(w, renderField("Status", renderStatus(st)))

	view := buf
	if dmax >= 0 && dmax < len(buf) {
		view = buf[:dmax]
	}
	if st.OK() || st == stringx.StatusNoSpace {
		s := stringx.String(view)
		fmt.Fprintln(w, renderField("Result", strconv.Quote(s)))
		fmt.Fprintln(w, renderField("Length", fmt.Sprintf("%d / %d", len(s), dmax)))
	}
	if dump {
		fmt.Fprintln(w, renderField("Buffer", fmt.Sprintf("% x", view)))
	}
}
