package scoring

import (
	"fmt"
	"math"
)

// weightTolerance absorbs float error when summing template weights.
const weightTolerance = 0.001

// Sum returns the total of the criteria weights in s.
func (s Section) Sum() float64 {
	var total float64
	for _, c := range s.Criteria {
		total += c.Weight
	}
	return total
}

// ValidateWeights checks that section weights sum to 1.0, that each section's
// criteria sum to the section weight, and that no weight is non-positive.
func ValidateWeights(sections []Section) error {
	var total float64
	for _, s := range sections {
		if s.Weight <= 0 {
			return fmt.Errorf("section %s: non-positive weight: %f", s.ID, s.Weight)
		}
		for _, c := range s.Criteria {
			if c.Weight <= 0 {
				return fmt.Errorf("section %s: criterion %s: non-positive weight: %f", s.ID, c.ID, c.Weight)
			}
		}
		if math.Abs(s.Sum()-s.Weight) > weightTolerance {
			return fmt.Errorf("section %s: criteria weights sum to %.4f, must sum to %.4f", s.ID, s.Sum(), s.Weight)
		}
		total += s.Weight
	}
	if math.Abs(total-1.0) > weightTolerance {
		return fmt.Errorf("section weights sum to %.4f, must sum to 1.0", total)
	}
	return nil
}
