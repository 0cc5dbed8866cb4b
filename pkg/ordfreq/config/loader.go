package config

import (
	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
	"github.com/cognicore/ordfreq/pkg/ordfreq/stoplist"
)

// Matcher builds the similarity matcher described by c.
func (c Config) Matcher() (*fuzzy.Matcher, error) {
	return fuzzy.NewMatcher(c.Matching.MaxMatches, c.Matching.Cutoff)
}

// Sources returns the blacklist sources in configuration order.
func (c Config) Sources() []stoplist.Source {
	sources := make([]stoplist.Source, 0, len(c.Blacklist.Sources)+len(c.Blacklist.Stoplists))
	for _, p := range c.Blacklist.Sources {
		sources = append(sources, stoplist.LineFile{Path: p, KeepLineEndings: c.Blacklist.KeepLineEndings})
	}
	for _, p := range c.Blacklist.Stoplists {
		sources = append(sources, stoplist.YAMLFile{Path: p})
	}
	return sources
}
