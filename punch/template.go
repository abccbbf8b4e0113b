package punch

import (
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// TemplateColumn labels a span of columns in a layout. Labels are
// descriptive only; templates never validate field contents.
type TemplateColumn struct {
	Range ColumnRange
	Label string
}

// Template describes a language or workload-specific card layout.
type Template struct {
	Name        string
	Description string
	Columns     []TemplateColumn
	DefaultType CardType
}

// Apply builds a card record from raw text using the template's
// default card type.
func (t *Template) Apply(text string) (CardRecord, error) {
	return NewCardRecord(text, EncodingHollerith, t.DefaultType)
}

// TemplateRegistry resolves layout templates by name. A fresh registry
// holds the built-in layouts; additional ones can be loaded from YAML.
type TemplateRegistry struct {
	templates []*Template
}

// NewTemplateRegistry returns a registry seeded with the built-in
// fortran, cobol, jcl and assembler layouts.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: builtinTemplates()}
}

// List returns every registered template in registration order.
func (r *TemplateRegistry) List() []*Template {
	return r.templates
}

// Lookup resolves a template by name, case-insensitively.
func (r *TemplateRegistry) Lookup(name string) (*Template, error) {
	for _, tpl := range r.templates {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("unknown template %q", name)
}

type templateFile struct {
	Templates []templateConfig `yaml:"templates"`
}

type templateConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	DefaultType string `yaml:"default_type"`
	Columns     []struct {
		Range string `yaml:"range"`
		Label string `yaml:"label"`
	} `yaml:"columns"`
}

// LoadYAML registers extra templates from a YAML document of the form:
//
//	templates:
//	  - name: rpg
//	    description: RPG fixed-format columns
//	    default_type: code
//	    columns:
//	      - range: 1-5
//	        label: Sequence
func (r *TemplateRegistry) LoadYAML(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("error parsing template file: %w", err)
	}
	loaded := make([]*Template, 0, len(file.Templates))
	for ii, cfg := range file.Templates {
		if cfg.Name == "" {
			return fmt.Errorf("template %d has no name", ii+1)
		}
		cardType := TypeCode
		if cfg.DefaultType != "" {
			cardType, err = ParseCardType(cfg.DefaultType)
			if err != nil {
				return fmt.Errorf("template %q: %w", cfg.Name, err)
			}
		}
		tpl := &Template{
			Name:        cfg.Name,
			Description: cfg.Description,
			DefaultType: cardType,
		}
		for _, col := range cfg.Columns {
			rng, err := ParseColumnRange(col.Range)
			if err != nil {
				return fmt.Errorf("template %q: %w", cfg.Name, err)
			}
			tpl.Columns = append(tpl.Columns, TemplateColumn{Range: rng, Label: col.Label})
		}
		loaded = append(loaded, tpl)
	}
	r.templates = append(r.templates, loaded...)
	return nil
}

func builtinTemplates() []*Template {
	col := func(start, end int, label string) TemplateColumn {
		return TemplateColumn{Range: ColumnRange{Start: start, End: end}, Label: label}
	}
	return []*Template{
		{
			Name:        "fortran",
			Description: "FORTRAN IV layout with fixed-format areas.",
			DefaultType: TypeCode,
			Columns: []TemplateColumn{
				col(1, 5, "Statement label / comment (C in col 1)"),
				col(6, 6, "Continuation (non-blank for continuation)"),
				col(7, 72, "Source statement"),
				col(73, 80, "Sequence number"),
			},
		},
		{
			Name:        "cobol",
			Description: "COBOL columnar layout (sequence, area A/B, comments).",
			DefaultType: TypeCode,
			Columns: []TemplateColumn{
				col(1, 6, "Sequence number / identification"),
				col(7, 7, "Indicator (e.g., * comment)"),
				col(8, 11, "Area A"),
				col(12, 72, "Area B"),
				col(73, 80, "Identification / sequence"),
			},
		},
		{
			Name:        "jcl",
			Description: "IBM JCL job card layout.",
			DefaultType: TypeJcl,
			Columns: []TemplateColumn{
				col(1, 2, "Job card '//'"),
				col(3, 10, "Job/step name"),
				col(11, 15, "Operation (JOB/EXEC/DD)"),
				col(16, 71, "Parameters"),
				col(72, 72, "Continuation indicator"),
				col(73, 80, "Sequence number"),
			},
		},
		{
			Name:        "assembler",
			Description: "IBM System/360 assembler (H) columns.",
			DefaultType: TypeCode,
			Columns: []TemplateColumn{
				col(1, 8, "Label"),
				col(9, 9, "Continuation"),
				col(10, 15, "Operation"),
				col(16, 71, "Operands / comments"),
				col(72, 72, "Continuation"),
				col(73, 80, "Sequence number"),
			},
		},
	}
}
