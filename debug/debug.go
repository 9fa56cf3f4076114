package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Branch  bool
	Stack   bool
	Pick    bool
	Closure bool
	Oracle  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Branch = boolEnv("TABLEAUX_DEBUG_BRANCH")
	d.Stack = boolEnv("TABLEAUX_DEBUG_STACK")
	d.Pick = boolEnv("TABLEAUX_DEBUG_PICK")
	d.Closure = boolEnv("TABLEAUX_DEBUG_CLOSURE")
	d.Oracle = boolEnv("TABLEAUX_DEBUG_ORACLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Branch() bool {
	return d.Branch
}
func Stack() bool {
	return d.Stack
}
func Pick() bool {
	return d.Pick
}
func Closure() bool {
	return d.Closure
}
func Oracle() bool {
	return d.Oracle
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
