// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/strassen/matrix"
)

// SummaryLabel prefixes the total printed by WriteSummary.
const SummaryLabel = "Total sum of the resulting:"

// WriteRows prints m one row per line as "[v1 v2 ...]". Values use the
// shortest representation that round-trips.
func WriteRows(w io.Writer, m matrix.Matrix) error {
	d, err := matrix.AsDense(m)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, row := range d.ToRows() {
		bw.WriteByte('[')
		bw.WriteString(strings.Join(lo.Map(row, formatCell), " "))
		bw.WriteString("]\n")
	}

	return bw.Flush()
}

// WriteMatrix prints m in the brace-delimited input format, one row per
// line, so that Parse(output) reproduces m exactly.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	d, err := matrix.AsDense(m)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for i, row := range d.ToRows() {
		if i > 0 {
			bw.WriteString(",\n ")
		}
		bw.WriteByte('{')
		bw.WriteString(strings.Join(lo.Map(row, formatCell), ","))
		bw.WriteByte('}')
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

func formatCell(v float64, _ int) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// SummaryOption configures WriteSummary.
type SummaryOption func(*summaryOptions)

type summaryOptions struct {
	tag language.Tag
}

// WithLanguage selects the locale used for digit grouping (English by default).
func WithLanguage(tag language.Tag) SummaryOption {
	return func(o *summaryOptions) { o.tag = tag }
}

// WriteSummary prints "Total sum of the resulting: <sum>" for m. Integral
// sums are printed as integers; both forms use the locale's digit grouping.
func WriteSummary(w io.Writer, m matrix.Matrix, opts ...SummaryOption) error {
	o := summaryOptions{tag: language.English}
	for _, fn := range opts {
		fn(&o)
	}

	p := message.NewPrinter(o.tag)
	sum := matrix.SumAll(m)
	var err error
	if sum == math.Trunc(sum) && math.Abs(sum) < 1<<53 {
		_, err = p.Fprintf(w, "%s %d\n", SummaryLabel, int64(sum))
	} else {
		_, err = p.Fprintf(w, "%s %v\n", SummaryLabel, sum)
	}

	return err
}
