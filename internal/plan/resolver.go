package plan

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/mapping"
	"samm-mapper/internal/match"
	"samm-mapper/internal/model"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	Match   match.Config
	Planner PlannerConfig
	// Logger is passed to the engine and planner when they have none.
	Logger *log.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		Match:   match.DefaultConfig(),
		Planner: DefaultPlannerConfig(),
	}
}

// ConfigFromFile applies a mapping file on top of the defaults.
func ConfigFromFile(f *mapping.File) ResolutionConfig {
	cfg := DefaultConfig()
	if f == nil {
		return cfg
	}

	cfg.Match.Threshold = f.ThresholdOr(match.DefaultThreshold)
	cfg.Match.Overrides = f.Overrides
	cfg.Match.ReportAmbiguity = f.ReportAmbiguity
	cfg.Planner.Units = f.UnitTable()
	cfg.Planner.Precision = f.PrecisionOr(DefaultPrecision)

	return cfg
}

// Resolver runs matching and planning for one model pair.
type Resolver struct {
	source *model.Model
	target *model.Model
	config ResolutionConfig
	log    *log.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(source, target *model.Model, config ResolutionConfig) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if config.Match.Logger == nil {
		config.Match.Logger = logger
	}

	if config.Planner.Logger == nil {
		config.Planner.Logger = logger
	}

	return &Resolver{source: source, target: target, config: config, log: logger}
}

// Resolve runs the full resolution pipeline and returns a MappingResult.
func (r *Resolver) Resolve() (*MappingResult, error) {
	if r.source == nil || r.target == nil {
		return nil, errors.New("resolve: source and target models are required")
	}

	srcIdx := model.NewIndex(r.source)
	tgtIdx := model.NewIndex(r.target)

	matched := match.NewEngine(r.config.Match).Match(srcIdx, tgtIdx)

	result := &MappingResult{
		Entries:        make([]Entry, 0, len(matched.Matches)),
		UnmappedSource: matched.UnmappedSource,
		UnmappedTarget: matched.UnmappedTarget,
		Source:         r.source,
		Target:         r.target,
		SourceIndex:    srcIdx,
		TargetIndex:    tgtIdx,
	}

	result.Diagnostics.Merge(matched.Diagnostics)

	planner := NewPlanner(r.config.Planner)
	samples := make([]diagnostic.Sample, 0, len(matched.Matches))

	for _, m := range matched.Matches {
		steps, diags := planner.Plan(m)
		result.Diagnostics.Merge(diags)
		result.Entries = append(result.Entries, Entry{Match: m, Steps: steps})

		samples = append(samples, diagnostic.Sample{
			Method:     string(m.Method()),
			Confidence: m.Confidence(),
			Label:      m.Label(),
		})
	}

	result.Summary = diagnostic.Summarize(samples)
	result.Diagnostics.FlagLowConfidence(samples)

	r.log.Debug("resolved",
		"matches", len(result.Entries),
		"unmapped_source", len(result.UnmappedSource),
		"unmapped_target", len(result.UnmappedTarget),
		"warnings", len(result.Diagnostics.Warnings))

	return result, nil
}

// Resolve is shorthand for NewResolver(source, target, config).Resolve().
func Resolve(source, target *model.Model, config ResolutionConfig) (*MappingResult, error) {
	return NewResolver(source, target, config).Resolve()
}
