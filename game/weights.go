package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Weights is the coefficient vector of the weighted evaluator. It is a value
// type, so a search holding a copy cannot observe later changes.
type Weights [8]float64

// Indices into Weights.
const (
	OwnPieces = iota
	OpponentPieces
	OwnMobility
	OpponentMobility
	OwnCohesion
	OpponentCohesion
	OwnCentrality
	OpponentCentrality
)

var weightNames = [8]string{
	OwnPieces:          "own_pieces",
	OpponentPieces:     "opponent_pieces",
	OwnMobility:        "own_mobility",
	OpponentMobility:   "opponent_mobility",
	OwnCohesion:        "own_cohesion",
	OpponentCohesion:   "opponent_cohesion",
	OwnCentrality:      "own_centrality",
	OpponentCentrality: "opponent_centrality",
}

// DefaultWeights favour material first; mobility is two orders of magnitude
// smaller, and spreading out or drifting from the centre is penalised.
var DefaultWeights = Weights{1, -1, 0.01, -0.01, -0.001, 0.001, -0.005, 0.005}

// ParseWeights reads a weight vector from either a comma-separated list of
// eight numbers ("1,-1,0.01,...") or comma-separated key=value pairs
// ("own_pieces=1,own_mobility=0.02"). Keys not mentioned keep their value in
// DefaultWeights.
func ParseWeights(config string) (Weights, error) {
	w := DefaultWeights
	config = strings.TrimSpace(config)
	if config == "" {
		return w, nil
	}

	parts := strings.Split(config, ",")
	if !strings.Contains(config, "=") {
		if len(parts) != len(w) {
			return w, errors.Errorf("weight vector has %d values, want %d", len(parts), len(w))
		}
		for i, part := range parts {
			value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return w, errors.Wrapf(err, "failed to parse weight %s=%q", weightNames[i], part)
			}
			w[i] = value
		}
		return w, nil
	}

	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return w, errors.Errorf("weight %q has no value", part)
		}
		key = strings.TrimSpace(key)
		i := lo.IndexOf(weightNames[:], key)
		if i < 0 {
			return w, errors.Errorf("unknown weight %q", key)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return w, errors.Wrapf(err, "failed to parse weight %s=%q", key, value)
		}
		w[i] = parsed
	}
	return w, nil
}

func (w Weights) String() string {
	parts := make([]string, len(w))
	for i, value := range w {
		parts[i] = weightNames[i] + "=" + strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
