package utils

import (
	"path/filepath"
	"runtime"
)

// ResolveFile joins fn onto the module root, so tests can name fixtures such as
// "keyframe/data/hello.json" regardless of the package they run in.
func ResolveFile(fn string) string {
	//nolint:dogsled
	_, here, _, _ := runtime.Caller(0)
	root, err := filepath.Abs(filepath.Join(filepath.Dir(here), ".."))
	if err != nil {
		panic(err)
	}
	return filepath.Join(root, fn)
}
