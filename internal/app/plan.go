package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sagit117/BuilderBricks/internal/scenario"
)

// WritePlan prints the ordered catalog as a table, one scenario per line.
func WritePlan(w io.Writer, scenarios []*scenario.Descriptor) error {
	if len(scenarios) == 0 {
		_, err := fmt.Fprintln(w, "No scenarios found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PRIORITY\tNAME\tVERSION\tCUBS\tDIGEST\tSOURCE")
	for _, d := range scenarios {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.Priority, d.Name, d.Version,
			orDash(strings.Join(d.SubUnitNames(), ",")),
			orDash(d.Source.ShortDigest()),
			orDash(d.Source.Path),
		)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
