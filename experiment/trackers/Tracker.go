// Package trackers implements Trackers, which track and save data in
// an experiment
package trackers

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/minegrid/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// save gob-encodes data to filename
func save(filename string, data interface{}) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save: could not open save file")
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return errors.Wrapf(err, "save: could not encode data to %v",
			filename)
	}
	return nil
}

// Load loads and returns the data saved by a Tracker
func Load[T any](filename string) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "load: could not open data file")
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []T
	if err = dec.Decode(&data); err != nil {
		return nil, errors.Wrapf(err, "load: could not decode %v", filename)
	}
	return data, nil
}

// LoadData loads and returns the data saved by a Return Tracker
func LoadData(filename string) ([]float64, error) {
	return Load[float64](filename)
}
