package table2md

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a Table from a YAML sequence of mappings, e.g.
//
//	- constant: e
//	  value: 2.71
//	- constant: pi
//	  value: 3.14
//
// The header is the first mapping's keys in document order. Like
// [FromMaps], only header keys are read from later mappings: a missing key
// fails with a [*KeyLookupError] and extra keys are ignored. An empty
// document yields an empty table, rejected later by [Table.Validate].
func FromYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Table{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: YAML root is %s, want a sequence of mappings", ErrInvalidData, yamlKind(root.Kind))
	}
	items := make([][]KeyValue, len(root.Content))
	for i, node := range root.Content {
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: YAML sequence item %d is %s, want a mapping", ErrInvalidData, i, yamlKind(node.Kind))
		}
		pairs := make([]KeyValue, 0, len(node.Content)/2)
		for j := 0; j+1 < len(node.Content); j += 2 {
			var v any
			if err := node.Content[j+1].Decode(&v); err != nil {
				return nil, err
			}
			pairs = append(pairs, KeyValue{Key: node.Content[j].Value, Value: v})
		}
		items[i] = pairs
	}
	return fromPairs(items)
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "a document"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unknown node"
	}
}
