// Package conversation owns the in-memory chat history: the ordered turn list,
// the rollback primitive, and the context trimming policy applied before every
// outbound request.
package conversation

import "time"

// Role identifies the speaker of a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the three known speakers.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Turn is one message in the conversation. Turns are never mutated after
// creation; insertion order is conversation order.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is the single chat history for the process. The first turn is
// always the system turn and is never removed. The session loop is the sole
// owner; nothing here is safe for concurrent use.
type Conversation struct {
	Timestamp time.Time `json:"timestamp"`
	History   []Turn    `json:"history"`
}

// New creates a conversation stamped with the current time and seeded with the
// system turn. An empty systemPrompt falls back to DefaultSystemPrompt.
func New(systemPrompt string) *Conversation {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Conversation{
		Timestamp: time.Now(),
		History: []Turn{
			{Role: RoleSystem, Content: systemPrompt},
		},
	}
}

// Append adds a turn to the end of the history.
func (c *Conversation) Append(role Role, content string) {
	c.History = append(c.History, Turn{Role: role, Content: content})
}

// Pop removes and returns the most recently appended turn. It is the rollback
// primitive used after a failed exchange; popping an empty history is a no-op.
func (c *Conversation) Pop() (Turn, bool) {
	if len(c.History) == 0 {
		return Turn{}, false
	}
	last := c.History[len(c.History)-1]
	c.History = c.History[:len(c.History)-1]
	return last, true
}

// Len returns the number of turns, including the system turn.
func (c *Conversation) Len() int {
	return len(c.History)
}

// Turns returns the live turn slice in conversation order. Callers must treat
// it as read-only.
func (c *Conversation) Turns() []Turn {
	return c.History
}

// Trim reduces the history in place so the next request fits the context
// budget, measured in characters of content as a stand-in for tokens.
//
// The policy is two-phase. First, any non-system turn whose content alone
// exceeds the budget is dropped, wherever it sits in the history. Second, if
// more than three turns survive, everything from the first non-system turn up
// to (but excluding) the final two turns is dropped, leaving the system turn
// plus the two most recent turns. A drain range that would be empty or
// inverted performs no deletion.
func (c *Conversation) Trim(budget int) {
	if len(c.History) <= 2 {
		return
	}

	kept := c.History[:0]
	for _, t := range c.History {
		if t.Role == RoleSystem || len(t.Content) <= budget {
			kept = append(kept, t)
		}
	}
	c.History = kept

	if len(c.History) > 3 {
		first := 1
		for i, t := range c.History {
			if t.Role != RoleSystem {
				first = i
				break
			}
		}
		if first < len(c.History)-2 {
			c.History = append(c.History[:first], c.History[len(c.History)-2:]...)
		}
	}
}
