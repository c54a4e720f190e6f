package cli

import (
	"fmt"
	"io"

	"github.com/m-mizutani/care/pkg/cli/config"
	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// printReport writes nothing but the result to w. An absent root prints as an empty line.
func printReport(w io.Writer, report *model.RootReport, cfg *config.Output) error {
	var err error
	switch {
	case cfg.List:
		for _, root := range report.Roots {
			if _, err = fmt.Fprintln(w, root); err != nil {
				break
			}
		}
	case cfg.WithFilename:
		_, err = fmt.Fprintf(w, "%d %s\n", report.Count(), report.Path)
	default:
		_, err = fmt.Fprintln(w, report.Count())
	}

	if err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}
