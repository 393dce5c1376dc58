//go:build darwin || windows

package doctor

import "golang.design/x/hotkey/mainthread"

// runOnMain gives the hotkey backend the OS main thread it needs outside
// the webview event loop.
func runOnMain(fn func()) {
	mainthread.Init(fn)
}
