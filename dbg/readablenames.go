package dbg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers and geometry values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. Staring at a trace of a hull
// rebuild, "ProudPegasus" is a lot easier to track across lines than a
// tuple of float coordinates.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name identifies an object by its address. Use it for anything mutable,
// like a polygon being built up across several insertions.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}
	return label(fmt.Sprintf("%p", obj))
}

// Label identifies a geometry value by its rendering, so equal values share
// a name within a run.
func Label(v fmt.Stringer) string {
	return label(v.String())
}

func label(key string) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Dump renders a value with its name and full field contents for quick
// inspection.
func Dump(v fmt.Stringer) string {
	return fmt.Sprintf("%s: %s", Label(v), spew.Sdump(v))
}
