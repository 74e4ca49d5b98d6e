package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable stand-ins for pointer values. A shape has no identity beyond its
// address, which makes debug output full of 0xc000... noise, so this maps
// each distinct pointer to a lazily assigned two-word name instead. The memo
// is never cleaned up. That flagrantly leaks memory, which is fine for a
// debugging session and a reason nothing outside debug paths should call it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so make them nondeterministic as
	// a reminder that a name never means the same thing across two runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
