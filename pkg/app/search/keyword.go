package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
)

// MaxResults is the number of tools a ranking returns at most.
const MaxResults = 5

const (
	nameScore     = 50
	topicScore    = 20
	tagScore      = 15
	tokenScore    = 5
	wordScore     = 3
	trendingScore = 2

	minTokenLength = 3
)

type ScoredCandidate struct {
	Tool  tool.Tool `json:"tool"`
	Score int       `json:"score"`
}

// Scorer ranks tools against free text with additive keyword heuristics.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	topics []Topic
}

func NewScorer(topics ...Topic) *Scorer {
	normalized := make([]Topic, 0, len(topics))
	for _, t := range topics {
		synonyms := make([]string, 0, len(t.Synonyms))
		for _, s := range t.Synonyms {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				synonyms = append(synonyms, s)
			}
		}
		if len(synonyms) == 0 {
			continue
		}
		normalized = append(normalized, Topic{Name: t.Name, Synonyms: synonyms})
	}
	return &Scorer{topics: normalized}
}

type token struct {
	text string
	word *regexp.Regexp
}

type preparedQuery struct {
	text   string
	tokens []token
	topics []bool
}

func (s *Scorer) prepare(query string) preparedQuery {
	q := strings.ToLower(strings.TrimSpace(query))
	pq := preparedQuery{
		text:   q,
		topics: make([]bool, len(s.topics)),
	}
	for _, field := range strings.Fields(q) {
		if utf8.RuneCountInString(field) < minTokenLength {
			continue
		}
		pq.tokens = append(pq.tokens, token{
			text: field,
			word: regexp.MustCompile(`\b` + regexp.QuoteMeta(field) + `\b`),
		})
	}
	for i, topic := range s.topics {
		pq.topics[i] = containsAny(q, topic.Synonyms)
	}
	return pq
}

// Score returns the relevance of t for query. It is never negative.
func (s *Scorer) Score(query string, t *tool.Tool) int {
	if t == nil {
		return 0
	}
	return s.score(s.prepare(query), t)
}

func (s *Scorer) score(q preparedQuery, t *tool.Tool) int {
	text := searchableText(t)
	score := 0

	if nameMatches(q.text, t.Name) {
		score += nameScore
	}

	for i, topic := range s.topics {
		if q.topics[i] && containsAny(text, topic.Synonyms) {
			score += topicScore
		}
	}

	for _, tag := range t.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" && strings.Contains(q.text, tag) {
			score += tagScore
		}
	}

	for _, tk := range q.tokens {
		if strings.Contains(text, tk.text) {
			score += tokenScore
		}
		if tk.word.MatchString(text) {
			score += wordScore
		}
	}

	if t.IsTrending {
		score += trendingScore
	}
	return score
}

// ScoreAll scores every candidate and keeps input order, zero scores included.
func (s *Scorer) ScoreAll(query string, candidates []tool.Tool) []ScoredCandidate {
	q := s.prepare(query)
	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, ScoredCandidate{
			Tool:  candidates[i],
			Score: s.score(q, &candidates[i]),
		})
	}
	return scored
}

// Rank returns at most MaxResults tools with a positive score, best first.
// Ties keep the order of candidates.
func (s *Scorer) Rank(query string, candidates []tool.Tool) []tool.Tool {
	scored := s.ScoreAll(query, candidates)

	positive := scored[:0]
	for _, c := range scored {
		if c.Score > 0 {
			positive = append(positive, c)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Score > positive[j].Score
	})
	if len(positive) > MaxResults {
		positive = positive[:MaxResults]
	}

	tools := make([]tool.Tool, 0, len(positive))
	for _, c := range positive {
		tools = append(tools, c.Tool)
	}
	return tools
}

func searchableText(t *tool.Tool) string {
	return strings.ToLower(t.Name + " " + t.Description + " " + strings.Join(t.Tags, " "))
}

func nameMatches(query, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if strings.Contains(query, name) {
		return true
	}
	return strings.Contains(query, strings.Fields(name)[0])
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
