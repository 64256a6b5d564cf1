package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"samm-mapper/internal/gen"
	"samm-mapper/internal/mapping"
	"samm-mapper/internal/model"
	"samm-mapper/internal/plan"
	"samm-mapper/internal/samm"
)

// Options configure one run.
type Options struct {
	Builder    model.BuilderConfig
	Resolution plan.ResolutionConfig
	Generator  gen.GeneratorConfig
	// YAMLReport writes mapping_result.yaml instead of mapping_result.json.
	YAMLReport bool
	// Logger is handed to every stage that has none.
	Logger *log.Logger
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Builder:    model.DefaultBuilderConfig(),
		Resolution: plan.DefaultConfig(),
		Generator:  gen.DefaultGeneratorConfig(),
	}
}

// OptionsFromFile applies a mapping file on top of the defaults.
func OptionsFromFile(f *mapping.File) Options {
	opts := DefaultOptions()
	opts.Resolution = plan.ConfigFromFile(f)
	opts.Generator.Collections = f.CollectionStyleOr(mapping.CollectionsParallel)

	return opts
}

func (o Options) withLogger() Options {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if o.Builder.Logger == nil {
		o.Builder.Logger = logger
	}

	if o.Resolution.Logger == nil {
		o.Resolution.Logger = logger
	}

	if o.Generator.Logger == nil {
		o.Generator.Logger = logger
	}

	o.Logger = logger

	return o
}

// Result is the outcome of one run.
type Result struct {
	Mapping *plan.MappingResult
	Output  *gen.Output
}

// WriteFiles writes the report and the expression into dir.
func (r *Result) WriteFiles(dir string, yamlReport bool) error {
	files, err := r.Output.Files(yamlReport)
	if err != nil {
		return err
	}

	return gen.WriteFiles(files, dir)
}

// Run builds both models from their graphs, resolves and generates.
// Structural errors of either model are returned unwrapped.
func Run(ctx context.Context, source, target samm.Graph, opts Options) (*Result, error) {
	opts = opts.withLogger()

	src, err := model.NewBuilder(source, opts.Builder).Build()
	if err != nil {
		return nil, err
	}

	tgt, err := model.NewBuilder(target, opts.Builder).Build()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts.Logger.Debug("models built", "source", src.ID, "source_properties", src.Count(),
		"target", tgt.ID, "target_properties", tgt.Count())

	mr, err := plan.Resolve(src, tgt, opts.Resolution)
	if err != nil {
		return nil, fmt.Errorf("resolving mapping: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := gen.NewGenerator(opts.Generator).Generate(mr)
	if err != nil {
		return nil, fmt.Errorf("generating transformation: %w", err)
	}

	opts.Logger.Info("mapping generated",
		"mappings", len(mr.Entries),
		"unmapped_source", len(mr.UnmappedSource),
		"unmapped_target", len(mr.UnmappedTarget),
		"warnings", len(out.Report.Warnings))

	return &Result{Mapping: mr, Output: out}, nil
}

// RunFiles loads two Turtle files and runs. The file names label the
// models unless labels are already configured.
func RunFiles(ctx context.Context, sourcePath, targetPath string, opts Options) (*Result, error) {
	source, err := samm.LoadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("loading source model: %w", err)
	}

	target, err := samm.LoadFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("loading target model: %w", err)
	}

	if opts.Generator.SourceLabel == "" {
		opts.Generator.SourceLabel = filepath.Base(sourcePath)
	}

	if opts.Generator.TargetLabel == "" {
		opts.Generator.TargetLabel = filepath.Base(targetPath)
	}

	return Run(ctx, source, target, opts)
}
