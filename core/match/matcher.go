// Package match implements fuzzy matching of BOQ rows against a master
// catalog. Scoring is a single greedy pass: exact matches short-circuit,
// everything else competes on a 0-100 similarity scale and the
// first-encountered item wins ties.
package match

import (
	"github.com/agext/levenshtein"

	"boq-cost/core/normalize"
	"boq-cost/core/types"
)

const (
	exactScore      = 100.0
	hyphenScore     = 95.0
	codeBoost       = 25.0
	namePenalty     = 15.0
	penaltyFloor    = 50.0
	penaltyMinRatio = 80.0
)

// Options tunes matcher behavior
type Options struct {
	// AllowNameOnly enables matching on name similarity alone when the
	// query carries no code. Disabled in the production path; enabling it
	// admits low-confidence free-text matches.
	AllowNameOnly bool
}

// Matcher scores catalog items against BOQ row queries
type Matcher struct {
	opts Options
}

// NewMatcher creates a matcher with the given options
func NewMatcher(opts Options) *Matcher {
	return &Matcher{opts: opts}
}

// nameRatio is the string-edit-distance similarity of two normalized
// strings, scaled to 0-100.
func nameRatio(a, b string) float64 {
	return levenshtein.Similarity(a, b, nil) * 100
}

// FindBestMatch returns the best-scoring catalog item for a query name and
// optional code, or nil when the name is empty or nothing scores above zero.
// Callers must gate on types.MatchThreshold before trusting the result.
func (m *Matcher) FindBestMatch(items []*types.MasterItem, queryName, queryCode string) *types.MatchResult {
	sname := normalize.Normalize(queryName)
	if sname == "" {
		return nil
	}
	scode := normalize.Normalize(queryCode)

	var best *types.MatchResult

	for _, item := range items {
		icode := normalize.Normalize(item.Code)
		iname := normalize.Normalize(item.Name)

		// Exact match on both code and name short-circuits the scan.
		if scode != "" && icode == scode && iname == sname {
			return &types.MatchResult{Item: item, Similarity: exactScore, Kind: types.MatchExact}
		}

		// A dash placeholder name with a reliable code is close enough.
		if sname == "-" && scode != "" && icode == scode {
			return &types.MatchResult{Item: item, Similarity: hyphenScore, Kind: types.MatchHyphenCode}
		}

		if scode != "" && icode == scode {
			ratio := nameRatio(sname, iname)
			score := ratio + codeBoost
			if score > exactScore {
				score = exactScore
			}
			if best == nil || score > best.Similarity {
				best = &types.MatchResult{Item: item, Similarity: score, Kind: types.MatchCodeBoosted}
			}
			continue
		}

		if scode != "" && icode != scode {
			ratio := nameRatio(sname, iname)
			if ratio >= penaltyMinRatio {
				score := ratio - namePenalty
				if score < penaltyFloor {
					score = penaltyFloor
				}
				if best == nil || score > best.Similarity {
					best = &types.MatchResult{Item: item, Similarity: score, Kind: types.MatchNamePenalized}
				}
			}
			continue
		}

		// Query has no code. Name-only scoring stays off unless opted in.
		if m.opts.AllowNameOnly {
			ratio := nameRatio(sname, iname)
			if ratio >= penaltyMinRatio {
				if best == nil || ratio > best.Similarity {
					best = &types.MatchResult{Item: item, Similarity: ratio, Kind: types.MatchNamePenalized}
				}
			}
		}
	}

	if best == nil || best.Similarity <= 0 {
		return nil
	}
	return best
}
