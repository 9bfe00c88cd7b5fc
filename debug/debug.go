// Package debug gates engine tracing on DEEP_DEBUG_* environment
// variables, read once at startup.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk   bool
	Search bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("DEEP_DEBUG_WALK")
	d.Search = boolEnv("DEEP_DEBUG_SEARCH")
	d.Eval = boolEnv("DEEP_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Search() bool {
	return d.Search
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
