package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column layout of WriteCSV, one row per probability.
var csvHeader = []string{
	"datapoint", "probability", "clustering", "path_length",
	"clustering_sd", "path_length_sd",
}

// Normalized returns a copy of the report with both series rescaled against
// the first probability: clustering values and their SDs divided by
// Points[0].Clustering, path lengths and their SDs by Points[0].PathLength.
// The small-world curves conventionally start at 1 under this scaling.
// The receiver is never modified. An empty report copies unchanged, and a
// zero first value leaves that series unscaled rather than dividing by it.
func (r *Report) Normalized() *Report {
	out := &Report{
		RunID:        r.RunID,
		Points:       make([]Point, len(r.Points)),
		ClusteringSD: make([]float64, len(r.ClusteringSD)),
		PathLengthSD: make([]float64, len(r.PathLengthSD)),
	}
	copy(out.Points, r.Points)
	copy(out.ClusteringSD, r.ClusteringSD)
	copy(out.PathLengthSD, r.PathLengthSD)
	if len(out.Points) == 0 {
		return out
	}

	if c0 := out.Points[0].Clustering; c0 != 0 {
		for i := range out.Points {
			out.Points[i].Clustering /= c0
		}
		for i := range out.ClusteringSD {
			out.ClusteringSD[i] /= c0
		}
	}
	if l0 := out.Points[0].PathLength; l0 != 0 {
		for i := range out.Points {
			out.Points[i].PathLength /= l0
		}
		for i := range out.PathLengthSD {
			out.PathLengthSD[i] /= l0
		}
	}

	return out
}

// WriteCSV renders the report as CSV: a header row, then one row per
// probability with the grid index, probability, both means, and both
// standard deviations. Floats use the shortest decimal form that
// round-trips.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, pt := range r.Points {
		row := []string{
			strconv.Itoa(i),
			formatFloat(pt.Probability),
			formatFloat(pt.Clustering),
			formatFloat(pt.PathLength),
			formatFloat(sdAt(r.ClusteringSD, i)),
			formatFloat(sdAt(r.PathLengthSD, i)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// sdAt tolerates SD slices shorter than Points, reading 0 past the end.
func sdAt(sds []float64, i int) float64 {
	if i < len(sds) {
		return sds[i]
	}

	return 0
}
