// Package trackers implements Trackers, which record per-round data
// during an experiment and save it to disk afterwards
package trackers

import (
	"encoding/gob"
	"os"

	"github.com/rs/zerolog/log"
)

// Round packages together the observable outcome of a single round of
// an experiment. The slices are the round's joint action and reward
// vectors, indexed by agent; Delta is the summed absolute value-table
// update magnitude; Param is the exploration parameter used for the
// round.
type Round struct {
	Iteration int
	Actions   []int
	Rewards   []float64
	Delta     float64
	Param     float64
}

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(r Round)
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open data file")
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64

	if err := dec.Decode(&data); err != nil {
		log.Fatal().Err(err).Msg("could not decode data")
	}
	return data
}

// save gob-encodes data to filename
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open save file")
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(data); err != nil {
		log.Fatal().Err(err).Msg("could not encode tracked data")
	}
}
