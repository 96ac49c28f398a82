package refiners

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/errors"
)

func TestEveryLanguageHasAProfile(t *testing.T) {
	r := New(testCatalog)
	for _, lang := range config.AllLanguages() {
		t.Run(string(lang), func(t *testing.T) {
			p, err := r.Profile(lang)
			require.NoError(t, err)
			names := p.PassNames()
			require.NotEmpty(t, names)
			assert.Equal(t, "convert-union-types", names[0])
			assert.Equal(t, "sync-type-reference-names", names[len(names)-1])
			assert.Contains(t, names, "add-error-base")
			assert.Contains(t, names, "add-types-imports")
		})
	}
	assert.Len(t, r.Profiles(), len(config.AllLanguages()))
}

func TestTypeScriptImportPathsPrecedeNameSync(t *testing.T) {
	p, err := New(testCatalog).Profile(config.TypeScript)
	require.NoError(t, err)
	names := p.PassNames()
	require.GreaterOrEqual(t, len(names), 2)
	assert.Equal(t, "replace-relative-imports", names[len(names)-2])
	assert.Equal(t, "sync-type-reference-names", names[len(names)-1])
}

func TestPassNamesAreUniqueWithinAProfile(t *testing.T) {
	for _, p := range New(testCatalog).Profiles() {
		seen := map[string]bool{}
		for _, name := range p.PassNames() {
			if seen[name] {
				t.Errorf("%s: pass %s appears twice", p.Language, name)
			}
			seen[name] = true
		}
	}
}

func TestDiscriminatorPruningPrecedesFactory(t *testing.T) {
	for _, p := range New(testCatalog).Profiles() {
		names := p.PassNames()
		prune, factory := -1, -1
		for i, n := range names {
			switch n {
			case "remove-unreachable-discriminator-mappings":
				prune = i
			case "add-discriminator-factory":
				factory = i
			}
		}
		require.GreaterOrEqual(t, prune, 0, p.Language)
		assert.Less(t, prune, factory, p.Language)
	}
}

func TestRefineUnsupportedLanguage(t *testing.T) {
	root, _ := clientTree()
	cfg := testConfig(config.Language("cobol"))

	_, err := New(testCatalog).Refine(context.Background(), root, cfg)
	require.Error(t, err)
	assert.False(t, root.IsRefined())
}

func TestRefineRequiresConfigAndRoot(t *testing.T) {
	r := New(testCatalog)

	_, err := r.Refine(context.Background(), codedom.NewRootNamespace("x"), nil)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = r.Refine(context.Background(), nil, testConfig(config.Go))
	assert.True(t, errors.IsConfigurationError(err))
}

func TestRefineTwiceIsRejected(t *testing.T) {
	root, _ := clientTree()
	r := New(testCatalog)

	_, err := r.Refine(context.Background(), root, testConfig(config.CSharp))
	require.NoError(t, err)

	_, err = r.Refine(context.Background(), root, testConfig(config.CSharp))
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
}

func TestRefineCancelledBeforeFirstPass(t *testing.T) {
	root, client := clientTree()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(testCatalog).Refine(ctx, root, testConfig(config.Go))
	require.Error(t, err)
	assert.True(t, errors.IsCancelled(err))
	assert.Contains(t, err.Error(), "before pass convert-union-types")
	require.NotNil(t, report)
	assert.Empty(t, report.Passes)
	// nothing ran
	assert.Len(t, client.PropertiesOfKind(codedom.PropertyRequestAdapter), 1)
}

func TestRefineCancelledDuringPass(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ran []string
	record := func(name string, fn func()) PassFunc {
		return func(run *Run) error {
			if fn != nil {
				fn()
			}
			ran = append(ran, name)
			return nil
		}
	}
	r := New(testCatalog)
	r.profiles[config.Go] = NewProfile(config.Go).
		Then("first", record("first", nil)).
		Then("cancelling", record("cancelling", cancel)).
		Then("after", record("after", nil)).
		Build()

	root, _ := clientTree()
	report, err := r.Refine(ctx, root, testConfig(config.Go))
	require.Error(t, err)
	assert.True(t, errors.IsCancelled(err))
	assert.Contains(t, err.Error(), "before pass after")
	// the cancelling pass runs to completion, the next one never starts
	assert.Equal(t, []string{"first", "cancelling"}, ran)
	assert.Equal(t, []string{"first", "cancelling"}, report.PassNames())
}

func TestRefineMissingClientClass(t *testing.T) {
	root, _ := clientTree()
	cfg := testConfig(config.Python)
	cfg.ClientClassName = "NoSuchClient"

	report, err := New(testCatalog).Refine(context.Background(), root, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "pass add-serialization-modules")
	assert.NotEmpty(t, errors.GetAllHints(err))
	assert.NotEmpty(t, report.Passes)
}

func TestRefineReport(t *testing.T) {
	root, _ := clientTree()
	report, err := Refine(context.Background(), root, testConfig(config.TypeScript))
	require.NoError(t, err)

	p, err := Default().Profile(config.TypeScript)
	require.NoError(t, err)
	assert.Equal(t, p.PassNames(), report.PassNames())
	assert.Equal(t, config.TypeScript, report.Language)
	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Warnings)
	assert.Len(t, report.SlowestPasses(3), 3)
}

func TestReportSummaryAndSlowest(t *testing.T) {
	report := &Report{
		Passes: []PassTiming{
			{Name: "a", Duration: time.Millisecond},
			{Name: "b", Duration: 3 * time.Millisecond},
			{Name: "c", Duration: 2 * time.Millisecond},
		},
		Warnings: []errors.SoftWarning{
			{Pass: "a", Message: "x"},
			{Pass: "a", Message: "y"},
			{Pass: "c", Message: "z"},
		},
	}

	assert.Equal(t, map[string]int{"a": 2, "c": 1}, report.Summary())
	slowest := report.SlowestPasses(2)
	require.Len(t, slowest, 2)
	assert.Equal(t, "b", slowest[0].Name)
	assert.Equal(t, "c", slowest[1].Name)
	assert.Len(t, report.SlowestPasses(10), 3)
}

func TestRefineAll(t *testing.T) {
	var jobs []Job
	for _, lang := range config.AllLanguages() {
		root, _ := clientTree()
		users := root.AddNamespace(testNamespace + ".users")
		users.AddClass(modelClass("User", stringProp("displayName")))
		jobs = append(jobs, Job{Root: root, Config: testConfig(lang)})
	}

	reports, err := New(testCatalog).RefineAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, reports, len(jobs))
	for i, rep := range reports {
		assert.Equal(t, config.AllLanguages()[i], rep.Language)
		assert.True(t, jobs[i].Root.IsRefined())
	}
}

func TestRefineAllRejectsSharedTree(t *testing.T) {
	root, _ := clientTree()
	sub := root.AddNamespace(testNamespace + ".users")

	_, err := New(testCatalog).RefineAll(context.Background(), []Job{
		{Root: root, Config: testConfig(config.Go)},
		{Root: sub, Config: testConfig(config.Java)},
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
	assert.False(t, root.IsRefined())
}

func TestRefineAllReportsFailingJob(t *testing.T) {
	good, _ := clientTree()
	bad, _ := clientTree()
	cfg := testConfig(config.Java)
	cfg.ClientClassName = "Missing"

	_, err := New(testCatalog).RefineAll(context.Background(), []Job{
		{Root: good, Config: testConfig(config.Go)},
		{Root: bad, Config: cfg},
	})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "job 1"))
	assert.True(t, errors.IsConfigurationError(err))
}

func TestProfileBuilderThenIf(t *testing.T) {
	var ran []string
	record := func(name string) PassFunc {
		return func(run *Run) error {
			ran = append(ran, name)
			return nil
		}
	}
	p := NewProfile(config.Go).
		Then("always", record("always")).
		ThenIf("backing-store", func(c *config.Config) bool { return c.UsesBackingStore }, record("backing-store")).
		Build()

	root, _ := clientTree()
	run := newTestRun(t, config.Go, root)
	runPasses(t, run, p.Passes()...)
	assert.Equal(t, []string{"always"}, ran)

	ran = nil
	run.Config.UsesBackingStore = true
	runPasses(t, run, p.Passes()...)
	assert.Equal(t, []string{"always", "backing-store"}, ran)
	assert.Equal(t, []string{"always", "backing-store"}, p.PassNames())
}
