package evaluation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

//go:embed template.yaml
var defaultTemplate []byte

// CriterionTemplate is a fixed row of the evaluation form.
type CriterionTemplate struct {
	ID     string          `yaml:"id" json:"id"`
	Name   string          `yaml:"name" json:"name"`
	Weight float64         `yaml:"weight" json:"weight"`
	Kind   classifier.Kind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// SectionTemplate is a fixed group of criteria with its share of the global score.
type SectionTemplate struct {
	ID       string              `yaml:"id" json:"id"`
	Title    string              `yaml:"title" json:"title"`
	Weight   float64             `yaml:"weight" json:"weight"`
	Criteria []CriterionTemplate `yaml:"criteria" json:"criteria"`
}

// KeyMetricTemplate is a free-form metric row of the key-metrics block.
type KeyMetricTemplate struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Template defines the sections, criteria and weights of an evaluation.
type Template struct {
	Sections   []SectionTemplate   `yaml:"sections" json:"sections"`
	KeyMetrics []KeyMetricTemplate `yaml:"key_metrics" json:"key_metrics"`
}

// LoadTemplate reads a template file. An empty path loads the embedded default.
func LoadTemplate(path string) (*Template, error) {
	data := defaultTemplate
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
	}
	return ParseTemplate(data)
}

// DefaultTemplate returns the embedded six-section template.
func DefaultTemplate() *Template {
	t, err := ParseTemplate(defaultTemplate)
	if err != nil {
		panic(fmt.Sprintf("embedded template: %v", err))
	}
	return t
}

// ParseTemplate decodes and validates a template document.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &t, nil
}

// Validate checks ids, calculator bindings and weights.
func (t *Template) Validate() error {
	if len(t.Sections) == 0 {
		return errors.New("no sections")
	}

	sectionIDs := make(map[string]bool)
	kinds := make(map[classifier.Kind]string)
	for _, s := range t.Sections {
		if s.ID == "" {
			return errors.New("section without id")
		}
		if sectionIDs[s.ID] {
			return fmt.Errorf("duplicate section %q", s.ID)
		}
		sectionIDs[s.ID] = true

		criterionIDs := make(map[string]bool)
		for _, c := range s.Criteria {
			if c.ID == "" {
				return fmt.Errorf("section %s: criterion without id", s.ID)
			}
			if criterionIDs[c.ID] {
				return fmt.Errorf("section %s: duplicate criterion %q", s.ID, c.ID)
			}
			criterionIDs[c.ID] = true

			if c.Kind == "" {
				continue
			}
			if !c.Kind.Valid() {
				return fmt.Errorf("section %s: criterion %s: %w: %q", s.ID, c.ID, classifier.ErrUnknownKind, c.Kind)
			}
			if prev, ok := kinds[c.Kind]; ok {
				return fmt.Errorf("kind %s bound twice (%s and %s/%s)", c.Kind, prev, s.ID, c.ID)
			}
			kinds[c.Kind] = s.ID + "/" + c.ID
		}
	}

	return scoring.ValidateWeights(t.scoringSections())
}

func (t *Template) scoringSections() []scoring.Section {
	out := make([]scoring.Section, 0, len(t.Sections))
	for _, s := range t.Sections {
		ss := scoring.Section{ID: s.ID, Weight: s.Weight}
		for _, c := range s.Criteria {
			ss.Criteria = append(ss.Criteria, scoring.Criterion{ID: c.ID, Weight: c.Weight})
		}
		out = append(out, ss)
	}
	return out
}
