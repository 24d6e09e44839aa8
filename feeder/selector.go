package feeder

import "paper-letter/models"

// FilterUnused returns the candidates whose arXiv ID is not in the used
// set, preserving input order.
func FilterUnused(candidates []models.CandidatePaper, used map[string]struct{}) []models.CandidatePaper {
	var unused []models.CandidatePaper
	for _, c := range candidates {
		if _, ok := used[c.ArxivID]; !ok {
			unused = append(unused, c)
		}
	}
	return unused
}

// SelectNewest returns the candidate with the maximum publication
// timestamp, or nil for an empty list. The feed is requested newest
// first, but the true maximum is computed rather than assumed so an
// upstream ordering change cannot break selection.
func SelectNewest(candidates []models.CandidatePaper) *models.CandidatePaper {
	if len(candidates) == 0 {
		return nil
	}
	newest := candidates[0]
	for _, c := range candidates[1:] {
		if c.PublishedAt.After(newest.PublishedAt) {
			newest = c
		}
	}
	return &newest
}
