package jsonv

import (
	"cmp"
	"slices"
	"strconv"
)

// normalizeMembers applies object enumeration order: duplicates collapse
// onto the first occurrence with the last value, then array-index keys
// move to the front in ascending numeric order.
func normalizeMembers(in []Member) []Member {
	if len(in) == 0 {
		return nil
	}
	pos := make(map[string]int, len(in))
	out := make([]Member, 0, len(in))
	for _, m := range in {
		if i, ok := pos[m.Key]; ok {
			out[i].Value = m.Value
			continue
		}
		pos[m.Key] = len(out)
		out = append(out, m)
	}

	var index, named []Member
	for _, m := range out {
		if _, ok := arrayIndex(m.Key); ok {
			index = append(index, m)
		} else {
			named = append(named, m)
		}
	}
	if len(index) == 0 {
		return out
	}
	slices.SortFunc(index, func(a, b Member) int {
		ai, _ := arrayIndex(a.Key)
		bi, _ := arrayIndex(b.Key)
		return cmp.Compare(ai, bi)
	})
	return append(index, named...)
}

// arrayIndex reports whether key is a canonical array index: a decimal
// integer in [0, 2^32-2] without leading zeros.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || len(key) > 10 || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil || n > 1<<32-2 {
		return 0, false
	}
	return n, true
}
