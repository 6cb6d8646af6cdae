package todo

import (
	"fmt"
	"strings"
)

// DefaultContent is used when an item is created or edited with no text.
const DefaultContent = "empty todo..."

func New(content string) *Item {
	return &Item{
		Content: normalize(content),
		Done:    false,
	}
}

// Item is a single todo entry. ID is assigned by the persistence layer
// on first save; Order is assigned by the owning list at creation and
// never changes afterwards.
type Item struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
	Done    bool   `json:"done"`
	Order   int    `json:"order"`
}

// Toggle flips the completion flag.
func (i *Item) Toggle() {
	i.Done = !i.Done
}

// SetContent replaces the item text, falling back to the default
// placeholder for blank input.
func (i *Item) SetContent(text string) {
	i.Content = normalize(text)
}

func (i *Item) Mark() string {
	if i.Done {
		return "✔"
	}
	return "●"
}

func (i *Item) Row() (string, string) {
	return i.Mark(), i.Content
}

func (i *Item) String() string {
	return fmt.Sprintf("%s %s", i.Mark(), i.Content)
}

func normalize(content string) string {
	if strings.TrimSpace(content) == "" {
		return DefaultContent
	}
	return content
}
