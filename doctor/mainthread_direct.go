//go:build !darwin && !windows

package doctor

func runOnMain(fn func()) {
	fn()
}
