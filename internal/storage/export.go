package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData is the JSON export layout for one run.
type ExportData struct {
	Model     string      `json:"model"`
	Stepper   string      `json:"stepper"`
	Start     float64     `json:"start"`
	End       float64     `json:"end"`
	Delta     float64     `json:"delta"`
	Adaptive  bool        `json:"adaptive"`
	Tolerance float64     `json:"tolerance,omitempty"`
	Steps     uint64      `json:"steps"`
	Times     []float64   `json:"times"`
	States    [][]float64 `json:"states"`
}

// ExportJSON writes a stored run to w as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Model:     meta.Model,
		Stepper:   meta.Stepper,
		Start:     meta.Start,
		End:       meta.End,
		Delta:     meta.Delta,
		Adaptive:  meta.Adaptive,
		Tolerance: meta.Tolerance,
		Steps:     meta.Steps,
		Times:     times,
		States:    make([][]float64, len(states)),
	}
	for i, st := range states {
		data.States[i] = st
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a stored run to w as time,x0,...,xn rows.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	states, times, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(states) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, "x"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := make([]string, 0, len(states[i])+1)
		row = append(row, strconv.FormatFloat(times[i], 'g', -1, 64))
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
