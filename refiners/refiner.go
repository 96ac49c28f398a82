// Package refiners rewrites a language-neutral element tree into the shape a
// target language's emitter expects. A Refiner holds one ordered Profile per
// language; Refine runs the profile selected by the configuration over one
// tree, mutating it in place.
package refiners

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
	"github.com/teranos/refinery/langdata"
	"github.com/teranos/refinery/logger"
)

// PassTiming records how long one pass took.
type PassTiming struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// Report summarizes a refinement run.
type Report struct {
	RunID    string               `json:"run_id"`
	Language config.Language      `json:"language"`
	Passes   []PassTiming         `json:"passes"`
	Warnings []errors.SoftWarning `json:"warnings,omitempty"`
	Duration time.Duration        `json:"duration"`
}

// Refiner runs language profiles over element trees. It is immutable after
// New and safe for concurrent use on distinct trees.
type Refiner struct {
	catalog  *langdata.Catalog
	profiles map[config.Language]*Profile
}

// New builds a Refiner with every language profile over catalog.
func New(catalog *langdata.Catalog) *Refiner {
	r := &Refiner{
		catalog:  catalog,
		profiles: make(map[config.Language]*Profile, len(profileBuilders)),
	}
	for lang, build := range profileBuilders {
		r.profiles[lang] = build()
	}
	return r
}

// Default returns the process-wide Refiner, built on first use.
var Default = sync.OnceValue(func() *Refiner {
	return New(langdata.NewCatalog())
})

// Profile returns the profile of lang.
func (r *Refiner) Profile(lang config.Language) (*Profile, error) {
	p, ok := r.profiles[lang]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupportedLanguage, "no profile for %q", lang)
	}
	return p, nil
}

// Profiles returns every profile in language order.
func (r *Refiner) Profiles() []*Profile {
	out := make([]*Profile, 0, len(r.profiles))
	for _, lang := range config.AllLanguages() {
		if p, ok := r.profiles[lang]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Refine runs the profile of cfg's language over root. The tree is refined at
// most once: a second call on the same tree is an invariant violation. On
// error the returned report covers the passes that completed.
func (r *Refiner) Refine(ctx context.Context, root *codedom.Namespace, cfg *config.Config) (*Report, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("no configuration given")
	}
	lang, err := cfg.Target()
	if err != nil {
		return nil, err
	}
	profile, err := r.Profile(lang)
	if err != nil {
		return nil, err
	}
	tables, err := r.catalog.For(lang)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.NewConfigurationError("no root namespace given")
	}
	if !root.MarkRefined() {
		return nil, errors.NewInvariantViolation("namespace %q was already refined", root.Root().Name())
	}

	runID := uuid.NewString()
	ctx = logger.WithComponent(logger.WithRunID(ctx, runID), "refiners")
	log := logger.LoggerFromContext(ctx).With(logger.FieldLanguage, string(lang))

	run := &Run{
		ID:       runID,
		Root:     root,
		Config:   cfg,
		Tables:   tables,
		Warnings: &errors.Warnings{},
		Logger:   log,
	}
	report := &Report{RunID: runID, Language: lang}
	start := time.Now()
	defer func() {
		report.Warnings = run.Warnings.All()
		report.Duration = time.Since(start)
	}()

	log.Debugw("Refinement started", logger.FieldPasses, len(profile.passes))
	for _, pass := range profile.passes {
		if err := ctx.Err(); err != nil {
			log.Infow("Refinement cancelled", logger.FieldPass, pass.Name)
			return report, errors.WrapCancelled(err, fmt.Sprintf("before pass %s", pass.Name))
		}

		run.pass = pass.Name
		passStart := time.Now()
		if err := pass.Run(run); err != nil {
			log.Errorw("Pass failed", logger.FieldPass, pass.Name, logger.FieldError, err)
			return report, errors.Wrapf(err, "pass %s", pass.Name)
		}
		elapsed := time.Since(passStart)
		report.Passes = append(report.Passes, PassTiming{Name: pass.Name, Duration: elapsed})
		log.Debugw("Pass complete",
			logger.FieldPass, pass.Name,
			logger.FieldDurationMS, elapsed.Milliseconds())
	}

	log.Infow("Refinement complete",
		logger.FieldPasses, len(report.Passes),
		logger.FieldWarnings, run.Warnings.Len(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return report, nil
}

// Refine runs the default Refiner.
func Refine(ctx context.Context, root *codedom.Namespace, cfg *config.Config) (*Report, error) {
	return Default().Refine(ctx, root, cfg)
}

// Job is one independent refinement: a tree and its configuration.
type Job struct {
	Root   *codedom.Namespace
	Config *config.Config
}

// RefineAll runs independent jobs concurrently. Every job must own a distinct
// tree. The first failure cancels the jobs that have not started a pass yet;
// reports are returned in job order.
func (r *Refiner) RefineAll(ctx context.Context, jobs []Job) ([]*Report, error) {
	seen := make(map[*codedom.Namespace]int, len(jobs))
	for i, job := range jobs {
		if job.Root == nil {
			continue
		}
		root := job.Root.Root()
		if prev, dup := seen[root]; dup {
			return nil, errors.NewInvariantViolation("jobs %d and %d share one tree", prev, i)
		}
		seen[root] = i
	}

	reports := make([]*Report, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			report, err := r.Refine(gctx, job.Root, job.Config)
			reports[i] = report
			if err != nil {
				return errors.Wrapf(err, "job %d", i)
			}
			return nil
		})
	}
	return reports, g.Wait()
}

// Summary counts warnings per pass.
func (rep *Report) Summary() map[string]int {
	counts := make(map[string]int)
	for _, w := range rep.Warnings {
		counts[w.Pass]++
	}
	return counts
}

// PassNames lists the passes that ran, in order.
func (rep *Report) PassNames() []string {
	names := make([]string, len(rep.Passes))
	for i, p := range rep.Passes {
		names[i] = p.Name
	}
	return names
}

// SlowestPasses returns up to n passes ordered by duration, slowest first.
func (rep *Report) SlowestPasses(n int) []PassTiming {
	sorted := append([]PassTiming(nil), rep.Passes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Duration > sorted[j].Duration })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
