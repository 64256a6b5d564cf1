package diagnostic

import (
	"fmt"
	"math"
)

// Sample is one accepted match as seen by the summary.
type Sample struct {
	Method     string
	Confidence float64
	// Label names the pair, e.g. "speed -> velocity".
	Label string
}

// ConfidenceSummary aggregates match confidences.
type ConfidenceSummary struct {
	Count    int            `json:"count" yaml:"count"`
	Average  float64        `json:"average" yaml:"average"`
	Min      float64        `json:"min" yaml:"min"`
	Max      float64        `json:"max" yaml:"max"`
	ByMethod map[string]int `json:"by_method" yaml:"by_method"`
}

// Summarize computes the summary of samples. An empty input yields zeros.
func Summarize(samples []Sample) ConfidenceSummary {
	s := ConfidenceSummary{ByMethod: make(map[string]int)}
	if len(samples) == 0 {
		return s
	}

	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)

	sum := 0.0

	for _, sm := range samples {
		sum += sm.Confidence
		s.Min = math.Min(s.Min, sm.Confidence)
		s.Max = math.Max(s.Max, sm.Confidence)
		s.ByMethod[sm.Method]++
	}

	s.Count = len(samples)
	s.Average = round(sum/float64(len(samples)), 4)
	s.Min = round(s.Min, 4)
	s.Max = round(s.Max, 4)

	return s
}

// FlagLowConfidence records a low_confidence warning for every sample
// below LowConfidenceThreshold.
func (d *Diagnostics) FlagLowConfidence(samples []Sample) {
	for _, sm := range samples {
		if sm.Confidence >= LowConfidenceThreshold {
			continue
		}

		d.AddWarning(KindLowConfidence, sm.Label,
			fmt.Sprintf("mapping confidence below %.1f (%.2f), manual review recommended",
				LowConfidenceThreshold, sm.Confidence))
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}
