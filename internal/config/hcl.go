package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclGraphFile is the top-level structure of an HCL graph file:
//
//	edge "A" "B" { cost = 1 }
//	heuristics = { A = 7, B = 6 }
//	search { start = "A" goal = "E" }
type hclGraphFile struct {
	Edges      []*hclEdge     `hcl:"edge,block"`
	Heuristics hcl.Expression `hcl:"heuristics,optional"`
	Search     *hclSearch     `hcl:"search,block"`
}

type hclEdge struct {
	From string  `hcl:"from,label"`
	To   string  `hcl:"to,label"`
	Cost float64 `hcl:"cost"`
}

type hclSearch struct {
	Start string `hcl:"start"`
	Goal  string `hcl:"goal"`
}

func decodeHCLGraph(path string) (*GraphFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeHCLBody(path, hclFile.Body)
}

func decodeHCLBody(path string, body hcl.Body) (*GraphFile, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	file := &GraphFile{
		Path:       path,
		Edges:      make([]EdgeDefinition, 0, len(parsed.Edges)),
		Heuristics: map[string]float64{},
	}
	for _, edge := range parsed.Edges {
		file.Edges = append(file.Edges, EdgeDefinition{From: edge.From, To: edge.To, Cost: edge.Cost})
	}
	if parsed.Search != nil {
		file.Start = parsed.Search.Start
		file.Goal = parsed.Search.Goal
	}

	if parsed.Heuristics != nil {
		value, diags := parsed.Heuristics.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate heuristics in %s: %w", path, diags)
		}
		heuristics, err := heuristicsFromCty(value)
		if err != nil {
			return nil, fmt.Errorf("invalid heuristics in %s: %w", path, err)
		}
		file.Heuristics = heuristics
	}
	return file, nil
}

// heuristicsFromCty accepts an object or map of numbers. A null value
// means the attribute was absent.
func heuristicsFromCty(value cty.Value) (map[string]float64, error) {
	heuristics := map[string]float64{}
	if value.IsNull() {
		return heuristics, nil
	}
	if !value.IsWhollyKnown() {
		return nil, errors.New("heuristics must be known values")
	}
	valueType := value.Type()
	if !valueType.IsObjectType() && !valueType.IsMapType() {
		return nil, fmt.Errorf("heuristics must be an object, got %s", valueType.FriendlyName())
	}

	for it := value.ElementIterator(); it.Next(); {
		key, element := it.Element()
		name := key.AsString()
		number, err := convert.Convert(element, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("heuristic %q: %w", name, err)
		}
		if number.IsNull() {
			return nil, fmt.Errorf("heuristic %q must not be null", name)
		}
		var estimate float64
		if err := gocty.FromCtyValue(number, &estimate); err != nil {
			return nil, fmt.Errorf("heuristic %q: %w", name, err)
		}
		heuristics[name] = estimate
	}
	return heuristics, nil
}
