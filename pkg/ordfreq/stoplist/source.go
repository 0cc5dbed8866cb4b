package stoplist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

// Source produces blacklist terms.
type Source interface {
	Name() string
	Terms() ([]string, error)
}

// LineFile reads one term per line from a text file.
type LineFile struct {
	Path string
	// KeepLineEndings leaves "\n" / "\r\n" on each term, as the raw lines
	// were read. Such terms never match a token exactly and rely on the
	// similarity cutoff instead.
	KeepLineEndings bool
}

// Name implements Source.
func (f LineFile) Name() string { return f.Path }

// Terms implements Source.
func (f LineFile) Terms() ([]string, error) {
	file, err := openSource(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	terms, err := readLines(file, f.KeepLineEndings)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return terms, nil
}

func readLines(r io.Reader, keepLineEndings bool) ([]string, error) {
	var terms []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if !keepLineEndings {
				line = strings.TrimRight(line, "\r\n")
			}
			if line != "" {
				terms = append(terms, line)
			}
		}
		if errors.Is(err, io.EOF) {
			return terms, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// YAMLFile reads terms from a YAML document with a top-level "terms" list.
type YAMLFile struct {
	Path string
}

// Name implements Source.
func (f YAMLFile) Name() string { return f.Path }

// Terms implements Source.
func (f YAMLFile) Terms() ([]string, error) {
	file, err := openSource(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var doc struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.NewDecoder(file).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return doc.Terms, nil
}

// Static is an in-memory source.
type Static []string

// Name implements Source.
func (s Static) Name() string { return "static" }

// Terms implements Source.
func (s Static) Terms() ([]string, error) { return s, nil }

func openSource(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, internalerr.ErrBlacklistUnavailable, err)
	}
	return file, nil
}

// Build collects the terms of every source into one Manager. Empty terms
// are skipped. Any source failing aborts the build.
func Build(sources ...Source) (*Manager, error) {
	m := NewManager(nil)
	for _, src := range sources {
		terms, err := src.Terms()
		if err != nil {
			return nil, fmt.Errorf("load stoplist %s: %w", src.Name(), err)
		}
		for _, t := range terms {
			if t == "" {
				continue
			}
			m.Add(t)
		}
	}
	return m, nil
}
