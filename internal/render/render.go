// Package render prints resolved jobs.
package render

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	cron "github.com/kaiserkarel/nextcron"
)

// Text writes one "HH:MM today|tomorrow name" line per result.
func Text(w io.Writer, results []cron.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return errors.Wrapf(err, "writing %s", r.Job)
		}
	}
	return nil
}
