package configtree

import (
	"fmt"
	"math"
	"time"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

func parseYAML(origin string, src []byte) (Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", origin, err)
	}
	lits := literals{}
	val, err := yamlValue(&doc, "", lits)
	if err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", origin, err)
	}
	return newTree(origin, val, lits)
}

// yamlValue converts a YAML node into a cty value. Mappings become objects
// and sequences become tuples, so elements keep their own types. Numbers
// keep their source text in lits.
func yamlValue(node *yaml.Node, path string, lits literals) (cty.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		return yamlValue(node.Content[0], path, lits)
	case yaml.AliasNode:
		return yamlValue(node.Alias, path, lits)
	case yaml.MappingNode:
		return yamlMapping(node, path, lits)
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(node.Content))
		for i, elem := range node.Content {
			cv, err := yamlValue(elem, elemPath(path, i), lits)
			if err != nil {
				return cty.NilVal, fmt.Errorf("[%d]: %w", i, err)
			}
			elems = append(elems, cv)
		}
		return cty.TupleVal(elems), nil
	case yaml.ScalarNode:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return cty.NilVal, fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch node.ShortTag() {
		case "!!int", "!!float":
			lits.record(path, node.Value)
		}
		return scalarToCty(raw)
	default:
		return cty.NilVal, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

// yamlMapping applies merge keys ("<<") first so that explicit keys win.
func yamlMapping(node *yaml.Node, path string, lits literals) (cty.Value, error) {
	attrs := make(map[string]cty.Value, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.ShortTag() != "!!merge" {
			continue
		}
		merged, err := yamlValue(value, path, lits)
		if err != nil {
			return cty.NilVal, fmt.Errorf("<<: %w", err)
		}
		sources := []cty.Value{merged}
		if merged.Type().IsTupleType() {
			sources = merged.AsValueSlice()
		}
		for _, src := range sources {
			if !isObject(src) {
				return cty.NilVal, fmt.Errorf("<<: merge value is not a mapping")
			}
			for k, v := range src.AsValueMap() {
				if _, set := attrs[k]; !set {
					attrs[k] = v
				}
			}
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.ShortTag() == "!!merge" {
			continue
		}
		p := childPath(path, key.Value)
		lits.forget(p)
		cv, err := yamlValue(value, p, lits)
		if err != nil {
			return cty.NilVal, fmt.Errorf("%s: %w", key.Value, err)
		}
		attrs[key.Value] = cv
	}

	return cty.ObjectVal(attrs), nil
}

// scalarToCty converts a decoded YAML scalar into a cty value.
func scalarToCty(raw any) (cty.Value, error) {
	switch v := raw.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return cty.NilVal, fmt.Errorf("unsupported number %v", v)
		}
		return cty.NumberFloatVal(v), nil
	case time.Time:
		return cty.StringVal(v.Format(time.RFC3339)), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", raw)
	}
}
