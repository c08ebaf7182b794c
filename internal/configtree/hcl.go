package configtree

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// parseHCL decodes HCL native syntax. Attributes become object attributes,
// blocks become nested objects keyed by type and then by each label.
// Repeated keys are merged, the later definition winning for leaves.
func parseHCL(origin string, src []byte) (Tree, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, origin)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", origin, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse HCL file %s: unexpected body type %T", origin, file.Body)
	}

	d := &hclDecoder{src: src, evalCtx: evalContext(), literals: literals{}}
	val, diags := d.body(body, "")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", origin, diags)
	}
	return newTree(origin, val, d.literals)
}

type hclDecoder struct {
	src      []byte
	evalCtx  *hcl.EvalContext
	literals literals
}

func (d *hclDecoder) body(body *hclsyntax.Body, prefix string) (cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	out := cty.EmptyObjectVal

	for name, attr := range body.Attributes {
		v, attrDiags := attr.Expr.Value(d.evalCtx)
		diags = append(diags, attrDiags...)
		if attrDiags.HasErrors() {
			continue
		}
		p := childPath(prefix, name)
		d.literals.forget(p)
		d.collect(attr.Expr, p)
		out = merge(out, cty.ObjectVal(map[string]cty.Value{name: v}))
	}

	for _, block := range body.Blocks {
		p := childPath(prefix, block.Type)
		for _, label := range block.Labels {
			p = childPath(p, label)
		}
		v, blockDiags := d.body(block.Body, p)
		diags = append(diags, blockDiags...)
		if blockDiags.HasErrors() {
			continue
		}
		for i := len(block.Labels) - 1; i >= 0; i-- {
			v = cty.ObjectVal(map[string]cty.Value{block.Labels[i]: v})
		}
		out = merge(out, cty.ObjectVal(map[string]cty.Value{block.Type: v}))
	}

	return out, diags
}

// collect records the source text of number literals under path, walking
// into tuple and object constructors.
func (d *hclDecoder) collect(expr hclsyntax.Expression, path string) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if !e.Val.Type().Equals(cty.Number) {
			return
		}
		r := e.SrcRange
		if r.Start.Byte < r.End.Byte && r.End.Byte <= len(d.src) {
			d.literals.record(path, string(d.src[r.Start.Byte:r.End.Byte]))
		}
	case *hclsyntax.TupleConsExpr:
		for i, elem := range e.Exprs {
			d.collect(elem, elemPath(path, i))
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			key, diags := item.KeyExpr.Value(d.evalCtx)
			if diags.HasErrors() || !key.IsKnown() || key.IsNull() {
				continue
			}
			key, err := convert.Convert(key, cty.String)
			if err != nil {
				continue
			}
			d.collect(item.ValueExpr, childPath(path, key.AsString()))
		}
	}
}

// merge combines two values. Objects merge recursively; in any other case
// the override replaces the base.
func merge(base, override cty.Value) cty.Value {
	if !isObject(base) || !isObject(override) {
		return override
	}
	attrs := base.AsValueMap()
	if attrs == nil {
		attrs = make(map[string]cty.Value)
	}
	for k, v := range override.AsValueMap() {
		if existing, ok := attrs[k]; ok {
			attrs[k] = merge(existing, v)
			continue
		}
		attrs[k] = v
	}
	return cty.ObjectVal(attrs)
}

func isObject(v cty.Value) bool {
	return v != cty.NilVal && !v.IsNull() && v.IsKnown() && v.Type().IsObjectType()
}

// evalContext exposes the process environment as the "env" object, in the
// spirit of HOCON environment substitution, plus a few string functions.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"coalesce":  stdlib.CoalesceFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}
