// Package version reports the build the refinery binary came from and the
// refinement targets it carries.
package version

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// Set at build time via -ldflags "-X github.com/teranos/refinery/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info describes one build.
type Info struct {
	Version    string   `json:"version" yaml:"version"`
	CommitHash string   `json:"commit_hash" yaml:"commit_hash"`
	BuildTime  string   `json:"build_time" yaml:"build_time"`
	GoVersion  string   `json:"go_version" yaml:"go_version"`
	Platform   string   `json:"platform" yaml:"platform"`
	Languages  []string `json:"languages" yaml:"languages"`
}

// Get returns the build info of the running binary. languages lists the
// refinement targets compiled in; they are reported sorted.
func Get(languages ...string) Info {
	langs := slices.Clone(languages)
	slices.Sort(langs)
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Languages:  slices.Compact(langs),
	}
}

// Supports reports whether lang is one of the build's targets, ignoring case.
func (i Info) Supports(lang string) bool {
	return slices.ContainsFunc(i.Languages, func(l string) bool {
		return strings.EqualFold(l, lang)
	})
}

// String renders e.g. "refinery v0.4.0 (commit 0123456, built 2026-01-02) targets go, java".
func (i Info) String() string {
	s := fmt.Sprintf("refinery %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
	if len(i.Languages) == 0 {
		return s + " no targets"
	}
	return s + " targets " + strings.Join(i.Languages, ", ")
}

// Short is the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
