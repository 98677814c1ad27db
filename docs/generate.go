package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nuts-foundation/nuts-pades/configuration"
	"github.com/spf13/pflag"
)

func main() {
	if err := generateConfigOptionsDocs("README_options.rst", configuration.FlagSet()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateConfigOptionsDocs(fileName string, flags *pflag.FlagSet) error {
	var rows [][3]string
	flags.VisitAll(func(f *pflag.Flag) {
		rows = append(rows, [3]string{f.Name, f.DefValue, f.Usage})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return os.WriteFile(fileName, []byte(optionsTable(rows)), 0644)
}

func optionsTable(rows [][3]string) string {
	header := [3]string{"Key", "Default", "Description"}
	widths := [3]int{}
	for _, r := range append([][3]string{header}, rows...) {
		for i, c := range r {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	sep := make([]string, 3)
	for i, w := range widths {
		sep[i] = strings.Repeat("=", w)
	}
	line := func(r [3]string) string {
		cells := make([]string, 3)
		for i, c := range r {
			cells[i] = c + strings.Repeat(" ", widths[i]-len(c))
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(".. table:: Configuration options\n    :widths: 20 30 50\n    :class: options-table\n\n")
	border := "    " + strings.Join(sep, "  ") + "\n"
	sb.WriteString(border)
	sb.WriteString("    " + line(header))
	sb.WriteString(border)
	for _, r := range rows {
		sb.WriteString("    " + line(r))
	}
	sb.WriteString(border)
	return sb.String()
}
