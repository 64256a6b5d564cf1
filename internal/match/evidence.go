package match

import (
	"fmt"
)

// Method names the cascade level that produced a match.
type Method string

const (
	MethodExplicitOverride      Method = "explicit_override"
	MethodCharacteristic        Method = "characteristic_match"
	MethodPreferredName         Method = "preferred_name_match"
	MethodLocalName             Method = "local_name_match"
	MethodDescriptionSimilarity Method = "description_similarity"
)

// Fixed cascade confidences.
const (
	ConfidenceOverride         = 1.0
	ConfidenceCharacteristic   = 0.9
	ConfidencePreferredName    = 0.8
	ConfidenceLocalName        = 0.7
	ConfidenceDescriptionFloor = 0.6
)

// Level returns the cascade position of m, 1 being the strongest.
// Unknown methods sort last.
func (m Method) Level() int {
	switch m {
	case MethodExplicitOverride:
		return 1
	case MethodCharacteristic:
		return 2
	case MethodPreferredName:
		return 3
	case MethodLocalName:
		return 4
	case MethodDescriptionSimilarity:
		return 5
	default:
		return 6
	}
}

// Evidence explains why two properties were matched. The concrete types
// below are the only implementations.
type Evidence interface {
	Method() Method
	Confidence() float64
	// Explain renders the evidence for reports.
	Explain() string

	isEvidence()
}

// ExplicitOverride is a caller-supplied pairing.
type ExplicitOverride struct {
	// Key is the override key as written in the configuration.
	Key string
}

func (ExplicitOverride) Method() Method      { return MethodExplicitOverride }
func (ExplicitOverride) Confidence() float64 { return ConfidenceOverride }
func (e ExplicitOverride) Explain() string   { return "explicit override " + e.Key }
func (ExplicitOverride) isEvidence()         {}

// CharacteristicMatch records the shared characteristic URI.
type CharacteristicMatch struct {
	Characteristic string
}

func (CharacteristicMatch) Method() Method      { return MethodCharacteristic }
func (CharacteristicMatch) Confidence() float64 { return ConfidenceCharacteristic }
func (e CharacteristicMatch) Explain() string {
	return "same characteristic " + e.Characteristic
}
func (CharacteristicMatch) isEvidence() {}

// PreferredNameMatch records the shared normalized preferred name.
type PreferredNameMatch struct {
	Normalized string
}

func (PreferredNameMatch) Method() Method      { return MethodPreferredName }
func (PreferredNameMatch) Confidence() float64 { return ConfidencePreferredName }
func (e PreferredNameMatch) Explain() string {
	return fmt.Sprintf("preferred names normalize to %q", e.Normalized)
}
func (PreferredNameMatch) isEvidence() {}

// LocalNameMatch records the shared local name, lowercased.
type LocalNameMatch struct {
	Name string
}

func (LocalNameMatch) Method() Method      { return MethodLocalName }
func (LocalNameMatch) Confidence() float64 { return ConfidenceLocalName }
func (e LocalNameMatch) Explain() string {
	return fmt.Sprintf("local names equal ignoring case (%q)", e.Name)
}
func (LocalNameMatch) isEvidence() {}

// DescriptionSimilarity records the description similarity score.
type DescriptionSimilarity struct {
	Score float64
}

func (DescriptionSimilarity) Method() Method        { return MethodDescriptionSimilarity }
func (e DescriptionSimilarity) Confidence() float64 { return DescriptionConfidence(e.Score) }
func (e DescriptionSimilarity) Explain() string {
	return fmt.Sprintf("descriptions similar (score %.2f)", e.Score)
}
func (DescriptionSimilarity) isEvidence() {}
