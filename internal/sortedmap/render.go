package sortedmap

import (
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Format renders seq as {'k1': 'v1', 'k2': 'v2'}. Keys and values are
// written verbatim between single quotes. An empty sequence renders as {}.
func Format(seq iter.Seq2[string, string]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	sep := ""
	for k, v := range seq {
		sb.WriteString(sep)
		sb.WriteByte('\'')
		sb.WriteString(k)
		sb.WriteString("': '")
		sb.WriteString(v)
		sb.WriteByte('\'')
		sep = ", "
	}
	sb.WriteByte('}')
	return sb.String()
}

// Render renders the map in ascending key order.
func (m *Map) Render() string {
	return Format(m.All())
}

// RenderReverse renders the map in descending key order.
func (m *Map) RenderReverse() string {
	return Format(m.Backward())
}

func (m *Map) String() string {
	return m.Render()
}

// Fprint writes the ascending rendering of m to w followed by a newline.
func Fprint(w io.Writer, m *Map) error {
	return fprint(w, m.All())
}

// FprintReverse writes the descending rendering of m to w followed by a
// newline.
func FprintReverse(w io.Writer, m *Map) error {
	return fprint(w, m.Backward())
}

func fprint(w io.Writer, seq iter.Seq2[string, string]) error {
	if _, err := io.WriteString(w, Format(seq)+"\n"); err != nil {
		return errors.Wrap(err, "write rendering")
	}
	return nil
}
