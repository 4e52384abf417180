package schedule

// Merge combines a previously accumulated performance list with newly
// extracted records, keeping one representative per identity. Later entries
// overwrite earlier ones with the same identity, so a manual edit supersedes
// an OCR-derived duplicate. Invalid records are skipped. When either input is
// empty the other is returned unchanged.
func Merge(accumulated, incoming []Performance) []Performance {
	if len(incoming) == 0 {
		return accumulated
	}
	if len(accumulated) == 0 {
		return incoming
	}

	index := make(map[string]int, len(accumulated)+len(incoming))
	out := make([]Performance, 0, len(accumulated)+len(incoming))
	for _, list := range [][]Performance{accumulated, incoming} {
		for _, p := range list {
			if !p.Valid() {
				continue
			}
			key := p.Identity()
			if at, ok := index[key]; ok {
				out[at] = p
				continue
			}
			index[key] = len(out)
			out = append(out, p)
		}
	}
	return out
}
