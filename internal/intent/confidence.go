package intent

import "math"

// component is one weighted input to an overall confidence score.
type component struct {
	weight  float64
	score   float64
	present bool
}

// weightedAverage combines component scores, excluding absent components
// from both numerator and denominator so the remaining weights renormalize.
// Returns 0 when no component is present. Result is rounded to two decimal
// places so repeated parses of the same input are byte-identical when
// serialized.
func weightedAverage(components []component) float64 {
	var sum, total float64
	for _, c := range components {
		if !c.present {
			continue
		}
		sum += c.weight * c.score
		total += c.weight
	}
	if total == 0 {
		return 0
	}
	return math.Round(sum/total*100) / 100
}
