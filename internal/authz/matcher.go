package authz

import "strings"

const (
	segmentSeparator = "."
	wildcardSegment  = "*"
)

// MatchPermission reports whether requested is satisfied by any of the granted
// permission names. Names are dot-segmented. A grant whose last segment is "*"
// covers every name sharing its leading segments, so "edit.*" satisfies
// "edit.posts" and "edit.posts.drafts". Undotted names match exactly.
func MatchPermission(granted []string, requested string) bool {
	if len(granted) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(granted))
	for _, g := range granted {
		set[g] = struct{}{}
	}

	for _, candidate := range candidates(requested) {
		if _, ok := set[candidate]; ok {
			return true
		}
	}
	return false
}

// candidates expands "a.b.c" into "a.*", "a.b.*" and "a.b.c".
func candidates(requested string) []string {
	segments := strings.Split(requested, segmentSeparator)
	out := make([]string, 0, len(segments))
	for k := 1; k <= len(segments); k++ {
		prefix := strings.Join(segments[:k], segmentSeparator)
		if k < len(segments) {
			prefix += segmentSeparator + wildcardSegment
		}
		out = append(out, prefix)
	}
	return out
}
