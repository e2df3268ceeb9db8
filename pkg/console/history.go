package console

// Entry is a recorded line with its 1-based position.
type Entry struct {
	Index int
	Line  string
}

// HistoryView is the read-only side of a History.
type HistoryView interface {
	Get(n int) (string, bool)
	All() []Entry
}

// History is the in-session log of submitted lines. Empty lines and
// repeats of the previous line are not recorded.
type History struct {
	lines []string
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Record(line string) {
	if line == "" {
		return
	}
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}
	h.lines = append(h.lines, line)
}

// Get returns the line at 1-based position n.
func (h *History) Get(n int) (string, bool) {
	if n < 1 || n > len(h.lines) {
		return "", false
	}
	return h.lines[n-1], true
}

func (h *History) All() []Entry {
	res := make([]Entry, len(h.lines))
	for i, line := range h.lines {
		res[i] = Entry{Index: i + 1, Line: line}
	}
	return res
}

func (h *History) Len() int {
	return len(h.lines)
}
