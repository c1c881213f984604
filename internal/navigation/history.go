package navigation

import "teletext/internal/domain"

// History is the list of visited pages with a browser-style cursor
type History struct {
	ids    []string
	cursor int
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push visits id. Entries after the cursor are discarded first. The index
// page resets history, and pushing the page under the cursor does nothing.
func (h *History) Push(id string) {
	if id == domain.IndexPageID {
		h.ids = []string{id}
		h.cursor = 0
		return
	}
	if h.Current() == id {
		return
	}
	h.ids = append(h.ids[:h.cursor+1:h.cursor+1], id)
	h.cursor = len(h.ids) - 1
}

// MoveTo places the cursor on index i
func (h *History) MoveTo(i int) bool {
	if i < 0 || i >= len(h.ids) {
		return false
	}
	h.cursor = i
	return true
}

// Current returns the id under the cursor
func (h *History) Current() string {
	if h.cursor < 0 {
		return ""
	}
	return h.ids[h.cursor]
}

// At returns the id at index i
func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.ids) {
		return "", false
	}
	return h.ids[i], true
}

// Index returns the cursor, -1 when empty
func (h *History) Index() int {
	return h.cursor
}

func (h *History) Len() int {
	return len(h.ids)
}

func (h *History) CanBack() bool {
	return h.cursor > 0
}

func (h *History) CanForward() bool {
	return h.cursor < len(h.ids)-1
}

// IDs returns a copy of every entry
func (h *History) IDs() []string {
	return append([]string(nil), h.ids...)
}

// Trail returns the entries up to and including the cursor
func (h *History) Trail() []string {
	return append([]string(nil), h.ids[:h.cursor+1]...)
}
