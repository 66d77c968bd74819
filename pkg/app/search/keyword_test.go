package search

import (
	"fmt"
	"testing"

	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTool(name, description string, tags ...string) tool.Tool {
	return tool.Tool{Name: name, Description: description, Tags: tags}
}

func TestScore_FullNameInQuery(t *testing.T) {
	s := NewScorer()
	runway := newTool("Runway", "Generative video editing")

	score := s.Score("i want runway", &runway)

	assert.GreaterOrEqual(t, score, 50)
	// name + substring and whole-word hit for "runway"
	assert.Equal(t, 58, score)
}

func TestScore_FirstWordOfName(t *testing.T) {
	s := NewScorer()
	mj := newTool("Midjourney Bot", "Images from prompts")

	assert.Equal(t, 50+5+3, s.Score("midjourney please", &mj))
}

func TestScore_TagAndTopic(t *testing.T) {
	s := NewScorer(DefaultTopics()...)
	clipper := newTool("Clipper", "Cut and trim", "video")

	score := s.Score("video editing", &clipper)

	assert.GreaterOrEqual(t, score, 15)
	// topic 20 + tag 15 + "video" substring 5 + word 3
	assert.Equal(t, 43, score)
}

func TestScore_TopicSynonymsAreIndependent(t *testing.T) {
	s := NewScorer(Topic{Name: "video", Synonyms: []string{"video", "clip"}})
	vid := newTool("Vid", "video maker")

	// topic 20 + "make" as substring of "maker" only
	assert.Equal(t, 25, s.Score("make a clip", &vid))
}

func TestScore_TagsStack(t *testing.T) {
	s := NewScorer()
	rank := newTool("Rank Tool", "", "seo", "blog")

	assert.Equal(t, 15+15+8+8, s.Score("seo blog writer", &rank))
}

func TestScore_SubstringWithoutWholeWord(t *testing.T) {
	s := NewScorer()
	tr := newTool("Whisper", "transcribe audio")

	assert.Equal(t, 5, s.Score("scribe", &tr))
	assert.Equal(t, 8, s.Score("audio", &tr))
}

func TestScore_ShortTokensIgnored(t *testing.T) {
	s := NewScorer()
	tr := newTool("Zed", "an ai editor")

	assert.Equal(t, 0, s.Score("an ai", &tr))
}

func TestScore_EmptyNameAndTagsNeverMatch(t *testing.T) {
	s := NewScorer(DefaultTopics()...)
	blank := tool.Tool{Name: "", Tags: []string{"", "  "}}

	assert.Equal(t, 0, s.Score("anything goes", &blank))
	assert.Equal(t, 0, s.Score("anything goes", nil))
}

func TestScore_NilTags(t *testing.T) {
	s := NewScorer()
	tr := tool.Tool{Name: "Notion", Description: "notes", Tags: nil}

	assert.Equal(t, 50+8, s.Score("notion", &tr))
}

func TestScore_QueryIsNormalized(t *testing.T) {
	s := NewScorer()
	runway := newTool("Runway", "video")

	assert.Equal(t, s.Score("runway", &runway), s.Score("  RUNWAY  ", &runway))
}

func TestRank_EmptyQueryWithoutTrending(t *testing.T) {
	s := NewScorer(DefaultTopics()...)
	candidates := []tool.Tool{
		newTool("Runway", "video", "video"),
		newTool("Notion", "notes", "productivity"),
	}

	assert.Empty(t, s.Rank("", candidates))
	assert.Empty(t, s.Rank("   ", candidates))
}

func TestRank_TrendingOnlyCandidateIsIncluded(t *testing.T) {
	s := NewScorer(DefaultTopics()...)
	notion := newTool("Notion", "Workspace for docs", "docs")
	notion.IsTrending = true

	scored := s.ScoreAll("zzzznomatch", []tool.Tool{notion})
	require.Len(t, scored, 1)
	assert.Equal(t, 2, scored[0].Score)

	ranked := s.Rank("zzzznomatch", []tool.Tool{notion})
	require.Len(t, ranked, 1)
	assert.Equal(t, "Notion", ranked[0].Name)
}

func TestRank_StableTiesAndTruncation(t *testing.T) {
	s := NewScorer()
	var candidates []tool.Tool
	for i := 1; i <= 7; i++ {
		candidates = append(candidates, newTool(fmt.Sprintf("T%d", i), "a helper"))
	}

	ranked := s.Rank("helper", candidates)

	require.Len(t, ranked, MaxResults)
	for i, tl := range ranked {
		assert.Equal(t, fmt.Sprintf("T%d", i+1), tl.Name)
	}
}

func TestRank_OrdersByScore(t *testing.T) {
	s := NewScorer()
	candidates := []tool.Tool{
		newTool("Low", "an audio helper"),
		newTool("Other", "nothing relevant"),
		newTool("High", "audio", "audio"),
	}

	ranked := s.Rank("audio", candidates)

	require.Len(t, ranked, 2)
	assert.Equal(t, "High", ranked[0].Name)
	assert.Equal(t, "Low", ranked[1].Name)
}

func TestRank_Properties(t *testing.T) {
	s := NewScorer(DefaultTopics()...)
	candidates := []tool.Tool{
		newTool("Runway", "Generative video editing", "video", "editing"),
		newTool("Midjourney", "Create images from text prompts", "image", "art"),
		newTool("ChatGPT", "Conversational assistant for writing and code", "chat", "writing"),
		newTool("Copilot", "AI pair programmer", "code"),
		newTool("ElevenLabs", "Realistic voice and speech synthesis", "audio", "voice"),
		newTool("Gamma", "Presentations and slides in seconds", "slides"),
		newTool("Zapier", "Automate workflows between apps", "automation"),
		newTool("Notion AI", "Notes, docs and tasks", "productivity"),
	}
	candidates[3].IsTrending = true
	candidates[6].IsTrending = true

	queries := []string{
		"", "video editing", "i need to write a blog post", "make slides for a pitch",
		"generate images", "code review", "voice over for my video", "zzz", "automate my email workflow",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			scores := map[string]int{}
			positive := 0
			for _, c := range s.ScoreAll(q, candidates) {
				assert.GreaterOrEqual(t, c.Score, 0)
				scores[c.Tool.Name] = c.Score
				if c.Score > 0 {
					positive++
				}
			}

			ranked := s.Rank(q, candidates)

			assert.LessOrEqual(t, len(ranked), MaxResults)
			assert.LessOrEqual(t, len(ranked), positive)
			for i, tl := range ranked {
				assert.Greater(t, scores[tl.Name], 0)
				if i > 0 {
					assert.GreaterOrEqual(t, scores[ranked[i-1].Name], scores[tl.Name])
				}
			}
		})
	}
}

func TestRank_DoesNotMutateCandidates(t *testing.T) {
	s := NewScorer()
	candidates := []tool.Tool{newTool("A", "x"), newTool("B", "audio")}

	_ = s.Rank("audio", candidates)

	assert.Equal(t, "A", candidates[0].Name)
	assert.Equal(t, "B", candidates[1].Name)
}

func TestDefaultTopics_ReturnsFreshCopy(t *testing.T) {
	a := DefaultTopics()
	a[0].Synonyms[0] = "changed"

	assert.NotEqual(t, "changed", DefaultTopics()[0].Synonyms[0])
}
