package field

// The clipboard bridge moves plain text in and out of the selection. The
// engine never touches a system clipboard; the host owns the OS transfer.

// CopySelection returns the selected text, or "" when nothing is selected.
func (f *Field) CopySelection() string {
	start, end, ok := f.selection()
	if !ok {
		return ""
	}
	return f.buf.Slice(start, end)
}

// Cut returns the selected text and deletes it from the buffer.
func (f *Field) Cut() string {
	start, end, ok := f.selection()
	if !ok {
		return ""
	}
	text := f.buf.Slice(start, end)
	f.replaceRange(start, end, "")
	return text
}

// Paste inserts text at the cursor, replacing any active selection.
func (f *Field) Paste(text string) {
	f.InsertText(text)
}
