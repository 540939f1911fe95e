package docfields

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML exports the model as a mapping whose keys follow section
// order. Absent fields are left out.
func (m *Model) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&v,
		)

		return nil
	}

	f := m.f
	fields := []struct {
		key     string
		present bool
		value   any
	}{
		{"summary", true, f.Summary},
		{"deprecation", f.Deprecation != nil, f.Deprecation},
		{"extended_summary", f.ExtendedSummary != "", f.ExtendedSummary},
		{"parameters", f.Parameters != nil, f.Parameters},
		{"returns", f.Returns != nil, f.Returns},
		{"yields", f.Yields != nil, f.Yields},
		{"receives", f.Receives != nil, f.Receives},
		{"other_parameters", f.OtherParameters != nil, f.OtherParameters},
		{"raises", f.Raises != nil, f.Raises},
		{"warns", f.Warns != nil, f.Warns},
		{"warnings", f.Warnings != "", f.Warnings},
		{"see_also", f.SeeAlso != nil, f.SeeAlso},
		{"notes", f.Notes != "", f.Notes},
		{"references", f.References != nil, f.References},
		{"examples", f.Examples != "", f.Examples},
	}

	for _, field := range fields {
		if !field.present {
			continue
		}

		if err := add(field.key, field.value); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// YAML encodes the model with yaml.Marshal.
func (m *Model) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}
