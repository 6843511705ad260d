// Package debug provides env-gated debug logging for the sbml packages.
//
// Set SBML_DEBUG_PARSE=1 or SBML_DEBUG_VALIDATE=1 to enable the
// corresponding log output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SBML_DEBUG_PARSE")
	d.Validate = boolEnv("SBML_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Validate() bool {
	return d.Validate
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
