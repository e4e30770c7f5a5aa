package nd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/farr/errors"
)

// Render formats the array for debugging. It fails with ErrStaleView when
// the backing storage has been released, so formatting can never read from
// a dead buffer.
func (a *Array) Render() (string, error) {
	if err := a.guard(); err != nil {
		return "", errors.Wrap(err, "render")
	}

	var sb strings.Builder
	sb.WriteString(a.kind.String())
	if len(a.shape) > 0 {
		dims := make([]string, len(a.shape))
		for d, n := range a.shape {
			dims[d] = strconv.Itoa(n)
		}
		sb.WriteString("(" + strings.Join(dims, "x") + ")")
	}
	sb.WriteString("[")
	first := true
	a.each(func(pos int) error {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		switch a.kind {
		case Float64:
			sb.WriteString(strconv.FormatFloat(a.f[pos], 'g', -1, 64))
		case Int64:
			sb.WriteString(strconv.FormatInt(a.i[pos], 10))
		case Bool:
			sb.WriteString(strconv.FormatBool(a.b[pos]))
		case Char:
			sb.WriteString(fmt.Sprintf("%q", a.c[pos]))
		}
		return nil
	})
	sb.WriteString("]")
	return sb.String(), nil
}

// String implements fmt.Stringer. A released array renders a marker instead
// of failing, since Stringer cannot return an error; strict callers use
// Render.
func (a *Array) String() string {
	s, err := a.Render()
	if err != nil {
		return a.kind.String() + "[<released>]"
	}
	return s
}
