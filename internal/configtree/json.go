package configtree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// parseJSON accepts JSON extended with comments and trailing commas.
func parseJSON(origin string, src []byte) (Tree, error) {
	stripped := jsonc.ToJSON(src)

	ty, err := ctyjson.ImpliedType(stripped)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", origin, err)
	}
	val, err := ctyjson.Unmarshal(stripped, ty)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", origin, err)
	}

	lits, err := jsonLiterals(stripped)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", origin, err)
	}
	return newTree(origin, val, lits)
}

// jsonLiterals records the source text of every number in src.
func jsonLiterals(src []byte) (literals, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	lits := literals{}
	collectJSON(raw, "", lits)
	return lits, nil
}

func collectJSON(raw any, path string, lits literals) {
	switch v := raw.(type) {
	case json.Number:
		lits.record(path, v.String())
	case map[string]any:
		for k, elem := range v {
			collectJSON(elem, childPath(path, k), lits)
		}
	case []any:
		for i, elem := range v {
			collectJSON(elem, elemPath(path, i), lits)
		}
	}
}
