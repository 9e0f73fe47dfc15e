// SPDX-License-Identifier: MIT
// Package: regcolor/pipeline

package pipeline

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regcolor/coloring"
)

// Snapshot is the state of one coloring at one stage.
type Snapshot struct {
	Edges          int      `yaml:"edges"`
	InvalidEdges   int      `yaml:"invalid_edges"`
	InvalidPercent *float64 `yaml:"invalid_percent"` // nil when the instance has no edge
	Distinct       int      `yaml:"distinct_colors"`
	MaxColor       int      `yaml:"max_color"`
	Colors         string   `yaml:"colors"` // valid nodes, comma separated
}

func snapshot(m coloring.Metrics, ch coloring.Chromatic) Snapshot {
	s := Snapshot{
		Edges:        m.Edges,
		InvalidEdges: m.InvalidEdges,
		Distinct:     ch.Distinct,
		MaxColor:     ch.Max,
		Colors:       ch.Join(),
	}
	if pct, ok := m.Percent(); ok {
		s.InvalidPercent = &pct
	}

	return s
}

// Report is the outcome of one instance.
type Report struct {
	Index        int      `yaml:"index"`
	ID           string   `yaml:"id,omitempty"`
	ValidNodes   int      `yaml:"valid_nodes"`
	LabelClasses int      `yaml:"label_classes"` // distinct canonical labels
	Components   int      `yaml:"components"`    // connected parts among valid nodes
	Empty        bool     `yaml:"empty,omitempty"`
	Before       Snapshot `yaml:"before"`
	After        Snapshot `yaml:"after"`
	Conflicts    int      `yaml:"conflicts"`
	Overrides    int      `yaml:"overrides"`
	Allocated    int      `yaml:"allocated"`
}

// Failure is the serializable form of an InstanceError.
type Failure struct {
	Index int    `yaml:"index"`
	ID    string `yaml:"id,omitempty"`
	Error string `yaml:"error"`
}

// Batch collects the outcome of one Run.
type Batch struct {
	RunID    string    `yaml:"run_id"`
	Reports  []Report  `yaml:"reports"`
	Failures []Failure `yaml:"failures,omitempty"`

	errs []*InstanceError
}

// Errors returns the failed instances in row order.
func (b *Batch) Errors() []*InstanceError { return b.errs }

func (b *Batch) fail(e *InstanceError) {
	b.errs = append(b.errs, e)
	b.Failures = append(b.Failures, Failure{Index: e.Index, ID: e.ID, Error: e.Err.Error()})
}

// EncodeReports writes b as a YAML document.
func EncodeReports(w io.Writer, b *Batch) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("EncodeReports: %w", err)
	}

	return enc.Close()
}
