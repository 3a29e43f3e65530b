package dropdown

import (
	"github.com/sahilm/fuzzy"

	"droplist/internal/domain"
)

// filterOptions narrows options to those fuzzy-matching query, in match
// rank order, attaching a match span to each survivor for highlighting.
// An empty query returns all options in listed order with spans cleared.
func filterOptions(options []domain.Option, query string) []domain.Option {
	if query == "" {
		out := make([]domain.Option, len(options))
		for i, opt := range options {
			opt.Match = nil
			out[i] = opt
		}
		return out
	}

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	matches := fuzzy.Find(query, labels)

	out := make([]domain.Option, 0, len(matches))
	for _, match := range matches {
		start, length := contiguousRun(match.MatchedIndexes)
		out = append(out, options[match.Index].WithMatch(start, length))
	}
	return out
}

// contiguousRun reduces the matched byte indexes to the leading contiguous
// run, which is what gets highlighted. Fuzzy matches can be scattered
// across the label; highlighting only the head run keeps the emphasis
// readable.
func contiguousRun(indexes []int) (start, length int) {
	if len(indexes) == 0 {
		return 0, 0
	}
	start = indexes[0]
	length = 1
	for i := 1; i < len(indexes); i++ {
		if indexes[i] != indexes[i-1]+1 {
			break
		}
		length++
	}
	return start, length
}
