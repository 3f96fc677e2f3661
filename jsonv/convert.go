package jsonv

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// ToAny converts v into the generic form produced by encoding/json:
// nil, bool, float64, string, []any and map[string]any.
func ToAny(v *Value) any {
	switch v.kind {
	case Bool:
		return v.Bool()
	case Number:
		f, _ := strconv.ParseFloat(v.text, 64)
		return f
	case String:
		return v.text
	case Array:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = ToAny(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	}
	return nil
}

// FromAny converts a generic value back into a Value. Map keys are visited
// in sorted order before member normalization.
func FromAny(x any) (*Value, error) {
	switch x := x.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(x), nil
	case string:
		return NewString(x), nil
	case float64:
		return NewNumber(FormatFloat(x)), nil
	case float32:
		return NewNumber(FormatFloat(float64(x))), nil
	case int:
		return NewNumber(strconv.Itoa(x)), nil
	case int64:
		return NewNumber(strconv.FormatInt(x, 10)), nil
	case uint64:
		return NewNumber(strconv.FormatUint(x, 10)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil && !math.IsInf(f, 0) {
			return nil, fmt.Errorf("jsonv: number %q: %w", x, err)
		}
		return NewNumber(x.String()), nil
	case []any:
		items := make([]*Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return NewArray(items...), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			v, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			members = append(members, Field(k, v))
		}
		return NewObject(members...), nil
	}
	return nil, fmt.Errorf("jsonv: unsupported type %T", x)
}
