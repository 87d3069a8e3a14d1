// SPDX-License-Identifier: AGPL-3.0-only

// Package ingest reads classified time-series records from JSON into event
// series.
package ingest

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/landsense/lucc/pkg/event"
	"github.com/landsense/lucc/pkg/interval"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one classified observation as found in the input file.
type Record struct {
	Index     int64  `json:"index"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

// Event validates the record and converts it. Dates are day-granularity or
// RFC 3339; reversed bounds are normalized.
func (r Record) Event() (event.Event, error) {
	if r.Label == "" {
		return event.Event{}, errors.New("missing label")
	}

	iv, err := interval.Parse(r.StartDate, r.EndDate)
	if err != nil {
		return event.Event{}, err
	}

	return event.Event{
		ID:    r.Index,
		Label: r.Label,
		Start: iv.Start(),
		End:   iv.End(),
	}, nil
}

// Read decodes a JSON array of records into an event series. Malformed
// records fail fast, naming the offending record.
func Read(r io.Reader) (event.Series, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decoding records")
	}
	return Events(records)
}

// Events converts a batch of records, failing on the first malformed one.
func Events(records []Record) (event.Series, error) {
	series := make(event.Series, 0, len(records))
	for idx, r := range records {
		e, err := r.Event()
		if err != nil {
			return nil, errors.Wrapf(err, "record %d (index %d)", idx, r.Index)
		}
		series = append(series, e)
	}
	return series, nil
}

// ReadFile reads an event series from a JSON file.
func ReadFile(fs afero.Fs, path string) (event.Series, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	series, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return series, nil
}
