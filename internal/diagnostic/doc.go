// Package diagnostic collects the non-fatal findings of a mapping run:
// warnings and infos keyed by property path, plus confidence statistics.
//
// Every non-fatal condition ends up either in an unmapped set or here,
// never in both.
package diagnostic
