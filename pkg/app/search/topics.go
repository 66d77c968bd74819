package search

// Topic groups synonyms so "make a clip" and "video editor" land together.
type Topic struct {
	Name     string
	Synonyms []string
}

// DefaultTopics returns a fresh copy of the built-in topic map.
func DefaultTopics() []Topic {
	return []Topic{
		{Name: "video", Synonyms: []string{"video", "clip", "movie", "film", "footage", "youtube", "animation", "reel"}},
		{Name: "image", Synonyms: []string{"image", "picture", "photo", "visual", "artwork", "illustration", "drawing", "graphic"}},
		{Name: "writing", Synonyms: []string{"write", "writing", "text", "content", "copywriting", "blog", "article", "essay", "story"}},
		{Name: "code", Synonyms: []string{"code", "coding", "program", "developer", "programming", "debug", "software"}},
		{Name: "audio", Synonyms: []string{"audio", "music", "sound", "voice", "speech", "podcast", "song"}},
		{Name: "chat", Synonyms: []string{"chat", "assistant", "chatbot", "conversation", "talk"}},
		{Name: "design", Synonyms: []string{"design", "logo", "interface", "mockup", "prototype", "layout"}},
		{Name: "productivity", Synonyms: []string{"productivity", "task", "organize", "schedule", "notes", "meeting", "calendar"}},
		{Name: "marketing", Synonyms: []string{"marketing", "seo", "advertising", "social media", "campaign", "email"}},
		{Name: "data", Synonyms: []string{"data", "analytics", "spreadsheet", "excel", "chart", "dashboard", "sql"}},
		{Name: "research", Synonyms: []string{"research", "search", "paper", "study", "academic", "summarize"}},
		{Name: "presentation", Synonyms: []string{"presentation", "slides", "deck", "pitch", "powerpoint"}},
		{Name: "automation", Synonyms: []string{"automate", "automation", "workflow", "agent", "integration", "zapier"}},
		{Name: "education", Synonyms: []string{"learn", "learning", "education", "teach", "course", "tutor", "study"}},
	}
}
