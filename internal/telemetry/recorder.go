// Package telemetry records per-generation population statistics as CSV.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats is one CSV row of the stats file.
type GenerationStats struct {
	Generation uint64 `csv:"generation"`
	Alive      int    `csv:"alive"`
	Births     int    `csv:"births"`
	Deaths     int    `csv:"deaths"`
}

// Summary aggregates a whole run.
type Summary struct {
	Generations int
	MeanAlive   float64
	StdDevAlive float64
	MinAlive    float64
	MaxAlive    float64
}

// Recorder appends generation stats to a CSV file. A nil Recorder is valid
// and discards everything, so callers never need to branch on whether stats
// collection is enabled.
type Recorder struct {
	file          *os.File
	headerWritten bool
	alive         []float64
}

// NewRecorder creates a recorder writing to path. An empty path disables
// recording and returns nil.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating stats file: %w", err)
	}
	return &Recorder{file: f}, nil
}

// Record writes one generation row. The first write includes the CSV header.
func (r *Recorder) Record(s GenerationStats) error {
	if r == nil {
		return nil
	}
	r.alive = append(r.alive, float64(s.Alive))

	records := []GenerationStats{s}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Summary reduces the recorded population counts. The zero Summary is
// returned when nothing was recorded.
func (r *Recorder) Summary() Summary {
	if r == nil || len(r.alive) == 0 {
		return Summary{}
	}
	return Summary{
		Generations: len(r.alive),
		MeanAlive:   stat.Mean(r.alive, nil),
		StdDevAlive: stat.StdDev(r.alive, nil),
		MinAlive:    floats.Min(r.alive),
		MaxAlive:    floats.Max(r.alive),
	}
}

// Close flushes and closes the stats file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
