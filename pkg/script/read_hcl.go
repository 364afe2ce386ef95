package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type hclScript struct {
	Ops []*hclOp `hcl:"op,block"`
}

type hclOp struct {
	Action    string         `hcl:"action,label"`
	Event     string         `hcl:"event"`
	Handler   string         `hcl:"handler"`
	Signature hcl.Expression `hcl:"signature,optional"`
}

func readHCL(data []byte, filename string) ([]rawOp, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var doc hclScript
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diags
	}

	raws := make([]rawOp, 0, len(doc.Ops))
	for _, op := range doc.Ops {
		sig, err := hclSignature(op.Signature)
		if err != nil {
			return nil, fmt.Errorf("op %q on %s: %w", op.Action, op.Event, err)
		}
		raws = append(raws, rawOp{
			action:    op.Action,
			event:     op.Event,
			handler:   op.Handler,
			signature: sig,
		})
	}
	return raws, nil
}

// hclSignature evaluates a signature expression; null or absent means none
func hclSignature(expr hcl.Expression) (*[]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("signature must be a static list")
	}

	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("signature must be a list of type names, got %s", ty.FriendlyName())
	}

	types := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, fmt.Errorf("signature entries must be strings")
		}
		types = append(types, elem.AsString())
	}
	return &types, nil
}
