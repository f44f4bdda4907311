package dispatch

// NextCursorLabel prefixes the continuation hint appended to list output.
const NextCursorLabel = "Next cursor: "

// Result is the rendered outcome of one tool call.
type Result struct {
	Text       string `json:"text"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// String returns the text with the continuation hint, if any.
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	if r.NextCursor == "" {
		return r.Text
	}
	return r.Text + "\n\n" + NextCursorLabel + r.NextCursor
}
