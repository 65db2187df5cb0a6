package rank

import (
	"fmt"
	"math"

	"payrise-engine/internal/errs"
)

// Weights combine the six sub-scores into the overall score.
type Weights struct {
	Salary      float64 `yaml:"salary" json:"salary"`
	Advancement float64 `yaml:"advancement" json:"advancement"`
	Benefits    float64 `yaml:"benefits" json:"benefits"`
	Diversity   float64 `yaml:"diversity" json:"diversity"`
	Growth      float64 `yaml:"growth" json:"growth"`
	Culture     float64 `yaml:"culture" json:"culture"`
}

var DefaultWeights = Weights{
	Salary:      0.35,
	Advancement: 0.25,
	Benefits:    0.15,
	Diversity:   0.10,
	Growth:      0.10,
	Culture:     0.05,
}

const weightTolerance = 1e-6

func (w Weights) Sum() float64 {
	return w.Salary + w.Advancement + w.Benefits + w.Diversity + w.Growth + w.Culture
}

func (w Weights) Validate() error {
	var problems []string
	named := []struct {
		name string
		v    float64
	}{
		{"salary", w.Salary},
		{"advancement", w.Advancement},
		{"benefits", w.Benefits},
		{"diversity", w.Diversity},
		{"growth", w.Growth},
		{"culture", w.Culture},
	}
	for _, n := range named {
		if n.v < 0 || math.IsNaN(n.v) {
			problems = append(problems, fmt.Sprintf("scoring.weights.%s must be >= 0", n.name))
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightTolerance {
		problems = append(problems, fmt.Sprintf("scoring.weights must sum to 1.0, got %.6f", sum))
	}
	if len(problems) > 0 {
		return errs.NewConfigurationError(problems...)
	}
	return nil
}

// Boosts are additive adjustments applied after scoring.
type Boosts struct {
	MSA    float64 `yaml:"msa" json:"msa"`
	Remote float64 `yaml:"remote" json:"remote"`
}

var DefaultBoosts = Boosts{MSA: 5, Remote: 5}
