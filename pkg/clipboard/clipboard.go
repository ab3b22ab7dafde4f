// Package clipboard provides the text clipboard capability passed to
// widgets during event dispatch.
package clipboard

// Clipboard reads and writes the text clipboard.
type Clipboard interface {
	// Read returns the current clipboard contents.
	Read() (string, bool)
	// Write replaces the clipboard contents.
	Write(contents string)
}

// Null is a clipboard that holds nothing. It backs headless runs and tests.
type Null struct{}

// Read always reports no contents.
func (Null) Read() (string, bool) {
	return "", false
}

// Write discards the contents.
func (Null) Write(string) {}

// Memory is an in-process clipboard used by tests and tooling.
type Memory struct {
	contents string
	has      bool
}

// Read returns the stored contents.
func (m *Memory) Read() (string, bool) {
	return m.contents, m.has
}

// Write stores the contents.
func (m *Memory) Write(contents string) {
	m.contents = contents
	m.has = true
}
