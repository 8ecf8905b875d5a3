package schemagen

import "github.com/getmockd/fixture/pkg/schema"

// placeholderItem stands in for string values at the recursion bound and for
// untyped array elements.
const placeholderItem = "item"

// formatFallback holds fixed representatives per string format for positions
// where the recursion bound forbids drawing fresh values.
var formatFallback = map[string]string{
	"email":     "user@example.com",
	"uuid":      "00000000-0000-4000-8000-000000000000",
	"uri":       "https://example.com/item",
	"url":       "https://example.com/item",
	"hostname":  "host.example.com",
	"ipv4":      "192.0.2.1",
	"ipv6":      "2001:db8::1",
	"date-time": "2024-01-01T00:00:00Z",
	"date":      "2024-01-01",
	"time":      "00:00:00Z",
	"duration":  "PT1H0M",
}

// fallbackValue substitutes a terminal placeholder once the recursion bound
// is reached: empty containers, zero numbers, and representative strings.
func (g *Generator) fallbackValue(node schema.Node, kind schema.Kind) any {
	switch kind {
	case schema.KindObject, schema.KindRecord, schema.KindIntersection, schema.KindLazy:
		return map[string]any{}
	case schema.KindArray, schema.KindTuple, schema.KindSet:
		return []any{}
	case schema.KindInteger:
		return 0
	case schema.KindNumber:
		return 0.0
	case schema.KindBoolean:
		return false
	case schema.KindNull:
		return nil
	case schema.KindConst:
		v, _ := node.ConstValue()
		return v
	case schema.KindEnum:
		if values := node.EnumValues(); len(values) > 0 {
			return values[0]
		}
		return nil
	case schema.KindUnion, schema.KindDiscriminatedUnion:
		return nil
	case schema.KindString:
		if v, ok := formatFallback[node.Checks().Format]; ok {
			return v
		}
		return placeholderItem
	default:
		return placeholderItem
	}
}
