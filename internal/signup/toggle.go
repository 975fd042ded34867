package signup

import "slices"

// ToggleOptions constrains a multi-select toggle.
type ToggleOptions struct {
	// MaxSize caps the number of members. Zero means no cap.
	MaxSize int
	// Sentinel, when set, is a placeholder member that is mutually exclusive
	// with every other member and fills the set whenever it would be empty.
	Sentinel string
}

// ToggleSetMember removes id from set when present and inserts it otherwise.
// Insertions past MaxSize are ignored. The input slice is never modified.
func ToggleSetMember(set []string, id string, opts ToggleOptions) []string {
	if opts.Sentinel != "" && id == opts.Sentinel {
		return []string{opts.Sentinel}
	}

	out := make([]string, 0, len(set)+1)
	for _, m := range set {
		if opts.Sentinel != "" && m == opts.Sentinel {
			continue
		}
		out = append(out, m)
	}

	if i := slices.Index(out, id); i >= 0 {
		out = slices.Delete(out, i, i+1)
	} else if opts.MaxSize <= 0 || len(out) < opts.MaxSize {
		out = append(out, id)
	} else {
		// At capacity: keep the set as it was, sentinel included.
		return slices.Clone(set)
	}

	if opts.Sentinel != "" && len(out) == 0 {
		return []string{opts.Sentinel}
	}
	return out
}
