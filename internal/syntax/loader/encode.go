package loader

import (
	"math"

	"github.com/tidwall/sjson"

	"github.com/dshills/aurum/internal/syntax"
)

// EncodeJSON writes a rule set in the flat JSON rule file schema.
func EncodeJSON(rs *syntax.RuleSet) ([]byte, error) {
	def := rs.Definition()
	doc := []byte("{}")
	var err error

	if def.Name != "" {
		if doc, err = sjson.SetBytes(doc, "name", def.Name); err != nil {
			return nil, err
		}
	}
	if len(def.Extensions) > 0 {
		if doc, err = sjson.SetBytes(doc, "extensions", def.Extensions); err != nil {
			return nil, err
		}
	}
	for _, c := range syntax.Priority {
		if p, ok := def.Patterns[c]; ok {
			if doc, err = sjson.SetBytes(doc, "s_"+c.String(), p); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range syntax.Classes() {
		col, ok := def.Colors[c]
		if !ok {
			continue
		}
		rgb := []int{channel(col.R), channel(col.G), channel(col.B)}
		if doc, err = sjson.SetBytes(doc, "c_"+c.String(), rgb); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
