package matching

import "sort"

// FindMatchingStaff scores every candidate in the context and returns them
// ranked by score descending, ties broken by staff name for determinism.
//
// Unavailable candidates (hard conflicts and exclusions) are filtered out
// unless opts.IncludeUnavailable is set; either way their results carry the
// relevant warnings. Inactive staff are never scored. A positive opts.Limit
// truncates the ranked list.
func (s *Scorer) FindMatchingStaff(state *MatchContext, opts MatchOptions) []MatchResult {
	results := make([]MatchResult, 0, len(state.Staff))

	for _, staff := range state.Staff {
		if !staff.Active {
			continue
		}

		result := s.ScoreMatch(state, staff)

		if !result.IsAvailable && !opts.IncludeUnavailable {
			continue
		}

		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].StaffName < results[j].StaffName
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results
}
