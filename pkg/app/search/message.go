package search

import (
	"fmt"
	"math/rand"
	"sync"
)

const NoResultsMessage = "I couldn't find a tool that matches that description perfectly. \n\n" +
	"Could you try rephrasing your request? (e.g., instead of 'make visual', try 'create images')"

var resultTemplates = []string{
	"I found %d tools that are perfect for this:",
	"Here are the top %d AI tools for your request:",
	"I've selected these %d tools to help you out:",
}

// MessageSelector picks the conversational line shown above search results.
type MessageSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMessageSelector(rnd *rand.Rand) *MessageSelector {
	return &MessageSelector{rnd: rnd}
}

func (m *MessageSelector) Select(count int) string {
	if count <= 0 {
		return NoResultsMessage
	}
	m.mu.Lock()
	idx := m.rnd.Intn(len(resultTemplates))
	m.mu.Unlock()
	return fmt.Sprintf(resultTemplates[idx], count)
}
