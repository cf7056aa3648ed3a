package engine

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/models"
)

// ExportCSV writes the events as delimited text with the full source column
// set, including columns the engine never consumes. Modeled columns come out
// normalized; the rest pass through verbatim. Derived fields like the
// location label are internal-only and never exported.
func ExportCSV(w io.Writer, ds *dataset.Dataset, events []*models.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.ExportHeader()); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, e := range events {
		if err := cw.Write(ds.ExportRecord(e)); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
