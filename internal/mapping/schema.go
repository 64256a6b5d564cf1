package mapping

// CurrentVersion is the mapping file format version.
const CurrentVersion = "1"

// CollectionStyle selects how several array-element matches under one
// target collection are rendered.
type CollectionStyle string

const (
	// CollectionsParallel renders one projection per field, producing
	// parallel sequences.
	CollectionsParallel CollectionStyle = "parallel"
	// CollectionsObjects renders one sequence of objects per collection.
	CollectionsObjects CollectionStyle = "objects"
)

// Valid reports whether s is a known style.
func (s CollectionStyle) Valid() bool {
	return s == CollectionsParallel || s == CollectionsObjects
}

// File is the mapping configuration file.
type File struct {
	Version string `yaml:"version" toml:"version"`

	// Threshold overrides the acceptance threshold when set.
	Threshold *float64 `yaml:"threshold,omitempty" toml:"threshold,omitempty"`

	// Precision overrides the rounding precision of unit conversions.
	Precision *int `yaml:"precision,omitempty" toml:"precision,omitempty"`

	Collections     CollectionStyle `yaml:"collections,omitempty" toml:"collections,omitempty"`
	ReportAmbiguity bool            `yaml:"report_ambiguity,omitempty" toml:"report_ambiguity,omitempty"`

	// Units extend and override the default unit table.
	Units []UnitConversion `yaml:"units,omitempty" toml:"units,omitempty"`

	// Overrides maps source references to target references.
	Overrides map[string]string `yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

// UnitConversion is one (from, to) -> factor entry.
type UnitConversion struct {
	From   string  `yaml:"from" toml:"from"`
	To     string  `yaml:"to" toml:"to"`
	Factor float64 `yaml:"factor" toml:"factor"`
}

// ThresholdOr returns the configured threshold or def.
func (f *File) ThresholdOr(def float64) float64 {
	if f == nil || f.Threshold == nil {
		return def
	}

	return *f.Threshold
}

// PrecisionOr returns the configured precision or def.
func (f *File) PrecisionOr(def int) int {
	if f == nil || f.Precision == nil {
		return def
	}

	return *f.Precision
}

// CollectionStyleOr returns the configured style or def.
func (f *File) CollectionStyleOr(def CollectionStyle) CollectionStyle {
	if f == nil || f.Collections == "" {
		return def
	}

	return f.Collections
}

// UnitTable returns the default table extended with the file's units.
func (f *File) UnitTable() *UnitTable {
	t := DefaultUnitTable()
	if f == nil {
		return t
	}

	return t.With(f.Units...)
}
