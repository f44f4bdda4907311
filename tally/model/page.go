package model

// PageInfo carries the opaque cursors of a list response. A missing
// LastCursor signals the end of the list.
type PageInfo struct {
	FirstCursor *string `json:"firstCursor"`
	LastCursor  *string `json:"lastCursor"`
}

// Next returns the cursor for the following page and whether one exists.
func (p PageInfo) Next() (string, bool) {
	if p.LastCursor == nil || *p.LastCursor == "" {
		return "", false
	}
	return *p.LastCursor, true
}
