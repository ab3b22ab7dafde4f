package clipboard

import (
	"sync"

	sysclip "golang.design/x/clipboard"

	"github.com/glacier-ui/glacier/pkg/errors"
)

var (
	initOnce sync.Once
	initErr  error
)

// System is the operating-system clipboard.
type System struct{}

// NewSystem initializes access to the OS clipboard. It fails on platforms
// without a clipboard service (e.g. headless CI), in which case callers
// should fall back to Null.
func NewSystem() (*System, error) {
	initOnce.Do(func() {
		initErr = sysclip.Init()
	})
	if initErr != nil {
		return nil, &errors.Error{
			Op:   "clipboard.NewSystem",
			Kind: errors.KindClipboard,
			Err:  initErr,
		}
	}
	return &System{}, nil
}

// Read returns the OS clipboard text contents.
func (*System) Read() (string, bool) {
	data := sysclip.Read(sysclip.FmtText)
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// Write replaces the OS clipboard text contents.
func (*System) Write(contents string) {
	sysclip.Write(sysclip.FmtText, []byte(contents))
}
