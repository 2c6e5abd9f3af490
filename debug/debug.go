package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Gomap  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CCL_DEBUG_PARSE")
	d.Encode = boolEnv("CCL_DEBUG_ENCODE")
	d.Gomap = boolEnv("CCL_DEBUG_GOMAP")
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
func Encode() bool {
	return d.Encode
}
func Gomap() bool {
	return d.Gomap
}
