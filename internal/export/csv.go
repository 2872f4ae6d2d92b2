package export

import (
	"encoding/csv"
	"io"

	"github.com/san-kum/trajsim/internal/flight"
)

// WriteCSV writes a time_s,x_m,y_m header and one row per sample.
func WriteCSV(w io.Writer, traj *flight.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(traj.Records()); err != nil {
		return err
	}
	return cw.Error()
}
