// Package validate implements the top-down hierarchy walk of spec §4.10:
// starting at a root definition, every port of every definition and every
// instance reachable by each definition's Usage policy is checked for
// full-width coverage. A Drivable port (one that needs something to drive
// it) is checked via the resolve package's chunk election, which already
// raises multiply-driven/no-driver conflicts; a CanDrive-only port is
// instead checked by tracing its own outgoing connections and comparing
// the union of what it drives and its explicit Unused marks against its
// full width. Findings — including a panic raised deep inside the
// resolve package, such as a cyclic connection graph or a
// multiply-driven range — are caught per port and folded into one
// aggregated error per run rather than aborting the whole walk on the
// first one, so a single validation pass reports everything wrong with a
// design at once.
package validate
