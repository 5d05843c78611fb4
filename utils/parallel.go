package utils

import "runtime"

// ParallelFactor caps how many goroutines a single call fans out to. Tests may lower it.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor < 1 {
		ParallelFactor = 1
	}
}

// Workers returns how many goroutines to use for n independent jobs.
func Workers(n int) int {
	if n < 1 {
		return 1
	}
	if n < ParallelFactor {
		return n
	}
	return ParallelFactor
}
