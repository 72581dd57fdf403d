package analytics

// subtract returns the elements of ids that are not in exclude, preserving
// the order of ids. Membership is hash-based, never positional: the inputs
// may differ in length and ordering.
func subtract(ids, exclude []string) []string {
	if len(ids) == 0 {
		return nil
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var out []string

	for _, id := range ids {
		if _, ok := excluded[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
