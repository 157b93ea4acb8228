package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/studentdiary/internal/grades"
)

const barWidth = 30

// index parses the 1-based list number in args[0].
func index(args []string, n int, use string) (int, error) {
	if len(args) == 0 {
		return 0, usage(use)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 1 {
		return 0, usage(use)
	}
	if i > n {
		return 0, inputError(fmt.Sprintf("No item #%d. Run the list command first.", i))
	}
	return i - 1, nil
}

// table renders rows as tab-aligned columns. The first row is the header.
func table(rows [][]string) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// bar draws value relative to top as a row of blocks.
func bar(value, top float64) string {
	if top <= 0 || value <= 0 || math.IsNaN(value) {
		return ""
	}
	n := int(math.Round(value / top * barWidth))
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("#", n)
}

// barChart renders the class performance chart.
func barChart(bars []grades.Bar) string {
	top := 0.0
	for _, b := range bars {
		top = math.Max(top, b.Total)
	}
	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, []string{b.Name, bar(b.Total, top), score(b.Total)})
	}
	return table(rows)
}

// sliceChart renders a distribution or breakdown as percentages of the sum.
func sliceChart(slices []grades.Slice) string {
	sum := 0.0
	for _, s := range slices {
		sum += s.Value
	}
	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		pct := 0.0
		if sum > 0 {
			pct = s.Value / sum * 100
		}
		rows = append(rows, []string{s.Name, bar(s.Value, sum), score(s.Value), fmt.Sprintf("%.0f%%", pct)})
	}
	return table(rows)
}
