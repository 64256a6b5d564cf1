package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"samm-mapper/internal/mapping"
)

// Job is one model pair of a batch.
type Job struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Output is the directory the files are written to; empty skips writing.
	Output string `yaml:"output,omitempty"`
	// Mapping is an optional mapping file (YAML or TOML) for this pair.
	Mapping string `yaml:"mapping,omitempty"`
}

// Manifest lists the jobs of a batch.
type Manifest struct {
	// Concurrency bounds the jobs running at once; <= 0 means GOMAXPROCS.
	Concurrency int   `yaml:"concurrency,omitempty"`
	Jobs        []Job `yaml:"jobs"`
}

// LoadManifest reads a YAML manifest. Relative paths are resolved against
// the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse batch manifest: %w", err)
	}

	base := filepath.Dir(path)

	for i := range m.Jobs {
		j := &m.Jobs[i]

		if j.Source == "" || j.Target == "" {
			return nil, fmt.Errorf("batch job %d: source and target are required", i)
		}

		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i+1)
		}

		j.Source = resolve(base, j.Source)
		j.Target = resolve(base, j.Target)
		j.Output = resolve(base, j.Output)
		j.Mapping = resolve(base, j.Mapping)
	}

	return &m, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}

// JobResult is the outcome of one job. Exactly one of Result and Err is set.
type JobResult struct {
	Job    Job
	Result *Result
	Err    error
}

// RunBatch runs jobs concurrently, at most limit at a time (<= 0 means
// GOMAXPROCS). A failing job does not stop the others; the returned error
// joins every job error. Results keep the order of jobs.
func RunBatch(ctx context.Context, jobs []Job, opts Options, limit int) ([]JobResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	opts = opts.withLogger()
	results := make([]JobResult, len(jobs))

	var g errgroup.Group

	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = JobResult{Job: job}

			if err := ctx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			res, err := runJob(ctx, job, opts)
			if err != nil {
				opts.Logger.Error("batch job failed", "job", job.Name, "err", err)
				results[i].Err = fmt.Errorf("%s: %w", job.Name, err)

				return nil
			}

			opts.Logger.Info("batch job done", "job", job.Name, "mappings", len(res.Mapping.Entries))
			results[i].Result = res

			return nil
		})
	}

	// Jobs report through results; Wait only joins them.
	_ = g.Wait()

	var errs []error

	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return results, errors.Join(errs...)
}

func runJob(ctx context.Context, job Job, opts Options) (*Result, error) {
	jobOpts := opts

	if job.Mapping != "" {
		f, err := mapping.LoadFile(job.Mapping)
		if err != nil {
			return nil, err
		}

		jobOpts = OptionsFromFile(f)
		jobOpts.Builder = opts.Builder
		jobOpts.YAMLReport = opts.YAMLReport
		jobOpts.Logger = opts.Logger
		jobOpts = jobOpts.withLogger()
	}

	jobOpts.Logger = jobOpts.Logger.With("job", job.Name)

	res, err := RunFiles(ctx, job.Source, job.Target, jobOpts)
	if err != nil {
		return nil, err
	}

	if job.Output != "" {
		if err := res.WriteFiles(job.Output, jobOpts.YAMLReport); err != nil {
			return nil, err
		}
	}

	return res, nil
}
