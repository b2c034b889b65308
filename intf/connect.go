package intf

import (
	"regexp"
	"strings"

	"github.com/canopyhdl/topstitch/core"
)

// Connect connects a and b function-by-function: for every function name
// present in a, if b maps the same name it is connected; otherwise, if
// allowMismatch is false, the call panics. The symmetric check then runs
// for every function present in b but not in a (spec §4.8: "After
// processing a, if any function exists in b but not a, same rule").
func Connect(d *core.ModuleDefinition, a, b *core.Interface, allowMismatch bool) {
	ConnectExcept(d, a, b, nil, allowMismatch)
}

// ConnectExcept is Connect, skipping every function named in except on
// both sides.
func ConnectExcept(d *core.ModuleDefinition, a, b *core.Interface, except []string, allowMismatch bool) {
	skip := make(map[string]bool, len(except))
	for _, fn := range except {
		skip[fn] = true
	}
	connected := make(map[string]bool)
	for _, fn := range a.Funcs() {
		if skip[fn] {
			continue
		}
		if !b.HasFunc(fn) {
			if allowMismatch {
				continue
			}
			abort(a.Name(), "Connect: function %q missing from interface %q", fn, b.Name())
		}
		d.Connect(a.Slice(fn), b.Slice(fn))
		connected[fn] = true
	}
	for _, fn := range b.Funcs() {
		if skip[fn] || connected[fn] {
			continue
		}
		if !a.HasFunc(fn) {
			if allowMismatch {
				continue
			}
			abort(b.Name(), "Connect: function %q missing from interface %q", fn, a.Name())
		}
	}
}

// Crossover wires a to b by bucketing each side's function names into an
// "A" bucket (functions matching patternA) and a "B" bucket (functions
// matching patternB), keyed by the underscore-joined regex capture
// groups, then connecting a's A-bucket to b's B-bucket and a's B-bucket to
// b's A-bucket, entry by matching key (spec §4.8). A function matching
// neither pattern is excluded. Panics if a bucketed entry of a has no
// same-key counterpart in b's opposite bucket; entries of b with no
// counterpart in a are left unconnected.
func Crossover(d *core.ModuleDefinition, a, b *core.Interface, patternA, patternB *regexp.Regexp) {
	aA, aB := bucket(a, patternA, patternB)
	bA, bB := bucket(b, patternA, patternB)
	wireBucket(d, a.Name(), b.Name(), aA, bB)
	wireBucket(d, a.Name(), b.Name(), aB, bA)
}

func bucket(iface *core.Interface, patternA, patternB *regexp.Regexp) (aBucket, bBucket map[string]core.PortSlice) {
	aBucket = map[string]core.PortSlice{}
	bBucket = map[string]core.PortSlice{}
	for _, fn := range iface.Funcs() {
		if m := patternA.FindStringSubmatch(fn); m != nil {
			aBucket[joinGroups(m)] = iface.Slice(fn)
			continue
		}
		if m := patternB.FindStringSubmatch(fn); m != nil {
			bBucket[joinGroups(m)] = iface.Slice(fn)
		}
	}
	return aBucket, bBucket
}

func joinGroups(m []string) string {
	if len(m) <= 1 {
		return ""
	}
	return strings.Join(m[1:], "_")
}

func wireBucket(d *core.ModuleDefinition, aName, bName string, from, to map[string]core.PortSlice) {
	for key, s := range from {
		t, ok := to[key]
		if !ok {
			abort(aName, "Crossover: no counterpart for key %q between %q and %q", key, aName, bName)
		}
		d.Connect(s, t)
	}
}
