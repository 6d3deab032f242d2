package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary comparable values (usually points) into random
// readable names. It never forgets a name, but names are generated lazily, so
// it's not a problem unless you're actually using it. This is helpful for
// telling points apart in debug logs, where a wall of coordinates is hard to
// follow.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Label for an edge between two named things, colored so that rejected edges
// stand out in a terminal.
func EdgeLabel(start, end interface{}, crossing bool) string {
	label := Name(start) + "→" + Name(end)
	if crossing {
		return aurora.Red(label).String()
	}
	return aurora.Green(label).String()
}
