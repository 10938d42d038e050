package ax

import "sort"

// Snapshot maps attribute names to the values read from one node at one
// point in time. Attributes whose query failed are absent.
type Snapshot map[string]Value

// Text returns the display form of the named attribute, or "" if absent.
func (s Snapshot) Text(name string) string {
	v, ok := s[name]
	if !ok {
		return ""
	}
	return Display(v)
}

// Keys returns the attribute names in display order: curated attributes
// first in their fixed order, then the rest alphabetically.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, iCurated := curatedIndex[keys[i]]
		cj, jCurated := curatedIndex[keys[j]]
		switch {
		case iCurated && jCurated:
			return ci < cj
		case iCurated != jCurated:
			return iCurated
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Strings returns the display form of every attribute.
func (s Snapshot) Strings() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = Display(v)
	}
	return out
}
