// Package store persists user-defined rule templates on disk as YAML.
// The engine only ever sees the decoded rules.Template values; the file
// schema lives here.
package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/formallab/sequent/internal/rules"
)

type templateFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	Name     string   `yaml:"name"`
	Side     string   `yaml:"side"`
	Arity    string   `yaml:"arity"`
	Formulas []string `yaml:"formulas,omitempty"`
}

// Load reads rule templates from the given path. A missing file is not
// an error; it yields an empty list so first runs work unconfigured.
func Load(path string) ([]rules.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading templates: %w", err)
	}
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding templates: %w", err)
	}
	tpls := make([]rules.Template, 0, len(file.Templates))
	for _, entry := range file.Templates {
		tpl, err := decodeEntry(entry)
		if err != nil {
			return nil, err
		}
		tpls = append(tpls, tpl)
	}
	return tpls, nil
}

// Save writes the templates to the given path, replacing the file.
func Save(path string, tpls []rules.Template) error {
	file := templateFile{Templates: make([]templateEntry, 0, len(tpls))}
	for _, tpl := range tpls {
		file.Templates = append(file.Templates, encodeEntry(tpl))
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing templates: %w", err)
	}
	return nil
}

func decodeEntry(entry templateEntry) (rules.Template, error) {
	var side rules.Side
	switch entry.Side {
	case "lhs":
		side = rules.SideLeft
	case "rhs":
		side = rules.SideRight
	default:
		return rules.Template{}, fmt.Errorf("template %q: side must be lhs or rhs, got %q", entry.Name, entry.Side)
	}
	var arity rules.TemplateArity
	switch entry.Arity {
	case "unary":
		arity = rules.Unary
	case "binary":
		arity = rules.Binary
	case "close":
		arity = rules.Close
	default:
		return rules.Template{}, fmt.Errorf("template %q: arity must be unary, binary or close, got %q", entry.Name, entry.Arity)
	}
	if entry.Name == "" {
		return rules.Template{}, fmt.Errorf("template with empty name")
	}
	return rules.Template{
		Name:     entry.Name,
		Side:     side,
		Arity:    arity,
		Formulas: entry.Formulas,
	}, nil
}

func encodeEntry(tpl rules.Template) templateEntry {
	return templateEntry{
		Name:     tpl.Name,
		Side:     tpl.Side.String(),
		Arity:    tpl.Arity.String(),
		Formulas: tpl.Formulas,
	}
}
