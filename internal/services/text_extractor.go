package services

import (
	"regexp"
	"sort"

	"budget-ledger/internal/models"
)

var researcherPattern = regexp.MustCompile(`_([가-힣]+)`)

type textExtractor struct {
	topicPattern *regexp.Regexp
	memoField    string
}

// NewTextExtractor builds an extractor for memos of the form "<prefix>(topic)_name".
func NewTextExtractor(researchPrefix, memoField string) TextExtractorInterface {
	return &textExtractor{
		topicPattern: regexp.MustCompile(regexp.QuoteMeta(researchPrefix) + `\(([^)]+)\)`),
		memoField:    memoField,
	}
}

// ResearcherName returns the first Hangul run following an underscore, or "".
func (e *textExtractor) ResearcherName(memo string) string {
	return firstGroup(researcherPattern, memo)
}

// ResearchTopic returns the raw text inside the parentheses after the research prefix, or "".
func (e *textExtractor) ResearchTopic(memo string) string {
	return firstGroup(e.topicPattern, memo)
}

// PairOf reports the (topic, researcher) pair of a row. Rows missing either part have no pair.
func (e *textExtractor) PairOf(row models.LedgerRow) (models.ResearchPair, bool) {
	memo := row.Get(e.memoField)
	pair := models.ResearchPair{
		Topic:      e.ResearchTopic(memo),
		Researcher: e.ResearcherName(memo),
	}
	if pair.Topic == "" || pair.Researcher == "" {
		return models.ResearchPair{}, false
	}
	return pair, true
}

// Pairs returns the distinct pairs present in the table, sorted by topic then researcher.
func (e *textExtractor) Pairs(table models.LedgerTable) []models.ResearchPair {
	seen := make(map[models.ResearchPair]struct{})
	pairs := make([]models.ResearchPair, 0)
	for _, row := range table.Rows {
		pair, ok := e.PairOf(row)
		if !ok {
			continue
		}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Less(pairs[j]) })
	return pairs
}

func firstGroup(re *regexp.Regexp, s string) string {
	if s == "" {
		return ""
	}
	match := re.FindStringSubmatch(s)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}
