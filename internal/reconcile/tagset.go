package reconcile

// TagAction names an operation over a user's tag set.
type TagAction string

const (
	TagAdd    TagAction = "add"
	TagRemove TagAction = "remove"
	TagSet    TagAction = "set"
)

// ApplyTags applies the tag-set algebra to current. Tags are a set: add is a
// deduplicating union, remove is set difference, set is unconditional
// replacement. Identifiers compare by exact string equality. An unrecognized
// action returns current unchanged; the upstream-observed behavior is
// permissive and is preserved deliberately.
func ApplyTags(current []string, action TagAction, ids []string) []string {
	switch action {
	case TagAdd:
		out := append([]string(nil), current...)
		for _, id := range ids {
			if !contains(out, id) {
				out = append(out, id)
			}
		}
		return out
	case TagRemove:
		out := make([]string, 0, len(current))
		for _, tag := range current {
			if !contains(ids, tag) {
				out = append(out, tag)
			}
		}
		return out
	case TagSet:
		return append([]string(nil), ids...)
	default:
		return current
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
