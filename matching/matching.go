// Package matching ranks lawyers against a case. Rank is a pure
// function of its inputs so the find-lawyers flow can re-run it against
// a fresh candidate pool at any time.
package matching

import (
	"sort"

	"probonex-backend/models"
)

// Match pairs a lawyer with the number of violation tags shared with
// the case
type Match struct {
	Lawyer       *models.Profile `json:"lawyer"`
	OverlapCount int             `json:"overlap_count"`
}

// Rank filters and orders the candidate pool for a case.
//
// A candidate survives only if located in the case's exact state and
// congressional district (no proximity fallback) and shares at least
// one violation tag with the case. Results are ordered by overlap count
// descending, then successfully closed count descending, then profile
// ID ascending so equal candidates always come back in the same order.
//
// An empty result is a valid outcome, distinct from any error: it means
// no eligible lawyer exists for the case.
func Rank(c *models.Case, candidates []*models.Profile) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, lawyer := range candidates {
		if !eligible(c, lawyer) {
			continue
		}
		overlap := OverlapCount(c, lawyer)
		if overlap == 0 {
			continue
		}
		matches = append(matches, Match{Lawyer: lawyer, OverlapCount: overlap})
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.OverlapCount != b.OverlapCount {
			return a.OverlapCount > b.OverlapCount
		}
		if a.Lawyer.SuccessfullyClosedCount != b.Lawyer.SuccessfullyClosedCount {
			return a.Lawyer.SuccessfullyClosedCount > b.Lawyer.SuccessfullyClosedCount
		}
		return a.Lawyer.ID.String() < b.Lawyer.ID.String()
	})

	return matches
}

// OverlapCount returns the number of violation tags the case and the
// lawyer's specialties have in common, across both catalogs
func OverlapCount(c *models.Case, lawyer *models.Profile) int {
	return intersectCount(c.ConstitutionViolations, lawyer.SpecialtiesConstitution) +
		intersectCount(c.UDHRViolations, lawyer.SpecialtiesUDHR)
}

func eligible(c *models.Case, lawyer *models.Profile) bool {
	if lawyer.Role != models.RoleLawyer {
		return false
	}
	if lawyer.State != c.State {
		return false
	}
	return lawyer.CongressionalDistrict != nil && *lawyer.CongressionalDistrict == c.CongressionalDistrict
}

func intersectCount(caseTags, specialtyTags []string) int {
	if len(caseTags) == 0 || len(specialtyTags) == 0 {
		return 0
	}
	set := make(map[string]bool, len(caseTags))
	for _, t := range caseTags {
		set[t] = true
	}
	count := 0
	for _, t := range specialtyTags {
		if set[t] {
			count++
			set[t] = false // count duplicates once
		}
	}
	return count
}
