// Package mapping holds the caller-supplied configuration of a mapping run:
// acceptance threshold, rounding precision, the unit-conversion table,
// explicit overrides and the collection rendering style.
//
// The file is YAML or TOML, chosen by extension:
//
//	version: "1"
//	threshold: 0.6
//	precision: 2
//	collections: parallel      # or "objects"
//	report_ambiguity: false
//	units:
//	  - from: kilometrePerHour
//	    to: metrePerSecond
//	    factor: 0.27778
//	overrides:
//	  # source URI or path -> target URI or path
//	  pcf.partialFullPcf: pcf.pcfType
//
// Nothing in this package is global; every run receives its own File and
// UnitTable, so concurrent runs cannot interfere.
package mapping
