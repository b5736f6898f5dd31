package conversion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"vid2aud/domain/audio"

	"golang.org/x/sync/errgroup"
)

// Reporter receives progress for a batch. All calls are made from a single
// goroutine, so implementations need no locking of their own.
type Reporter interface {
	Start(total int)
	Report(result audio.ConversionResult)
	Finish(summary *Summary)
}

// Summary aggregates the results of a batch
type Summary struct {
	Total     int
	Completed int
	Succeeded int
	Failed    []audio.ConversionResult
}

// Service dispatches conversion jobs onto a bounded worker pool
type Service struct {
	converter audio.Converter
	verifier  audio.OutputVerifier
	workers   int
}

// ServiceOption is a functional option for configuring Service
type ServiceOption func(*Service)

// WithWorkers sets the worker pool size; values below 1 mean runtime.NumCPU()
func WithWorkers(n int) ServiceOption {
	return func(s *Service) {
		s.workers = n
	}
}

// WithOutputVerifier makes a zero exit code count as success only when the
// destination file exists and is non-empty
func WithOutputVerifier(v audio.OutputVerifier) ServiceOption {
	return func(s *Service) {
		s.verifier = v
	}
}

// NewService creates a new conversion Service
func NewService(converter audio.Converter, opts ...ServiceOption) *Service {
	s := &Service{converter: converter}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	return s
}

// Workers returns the effective worker pool size
func (s *Service) Workers() int {
	return s.workers
}

// BuildJobs creates one job per file name found in inputDir
func BuildJobs(inputDir, outputDir string, names []string, format audio.Format) ([]*audio.ConversionJob, error) {
	jobs := make([]*audio.ConversionJob, 0, len(names))
	for _, name := range names {
		job, err := audio.NewConversionJob(filepath.Join(inputDir, name), outputDir, format)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Run converts every job and blocks until all of them have completed.
// A failing job never cancels its siblings; failures are collected in the
// returned Summary and passed to the reporter.
func (s *Service) Run(ctx context.Context, jobs []*audio.ConversionJob, reporter Reporter) *Summary {
	summary := &Summary{Total: len(jobs)}
	if len(jobs) == 0 {
		return summary
	}

	reporter.Start(len(jobs))

	results := make(chan audio.ConversionResult)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			summary.Completed++
			if r.Success {
				summary.Succeeded++
			} else {
				summary.Failed = append(summary.Failed, r)
			}
			reporter.Report(r)
		}
	}()

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			results <- audio.NewConversionResult(job, s.convert(ctx, job))
			return nil
		})
	}
	_ = g.Wait()
	close(results)
	<-done

	reporter.Finish(summary)
	return summary
}

func (s *Service) convert(ctx context.Context, job *audio.ConversionJob) error {
	if err := s.converter.Convert(ctx, job); err != nil {
		return err
	}
	if s.verifier != nil && !s.verifier.NonEmpty(job.DestinationPath) {
		return &audio.ConversionError{
			Job:        job,
			Diagnostic: fmt.Sprintf("output file %s is missing or empty", job.DestinationPath),
		}
	}
	return nil
}
