package resolve

import (
	"sort"

	"github.com/canopyhdl/topstitch/core"
	"github.com/sirupsen/logrus"
)

// discardLogger is used whenever a caller passes a nil *logrus.Logger.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}()

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Resolve computes the resolved chunks for a single Drivable port p (a
// ModDef Output/InOut or ModInst Input/InOut). Panics with a *core.Diagnostic
// on any §4.5 rule violation. The returned chunks need not cover the full
// port width; gaps are reported by the validate package.
func Resolve(p core.Port, log *logrus.Logger) []Chunk {
	if log == nil {
		log = discardLogger
	}

	combined := p.Connections().Trace()
	for _, t := range ownTieoffs(p) {
		combined = append(combined, core.Connection{This: t.Slice, Other: core.TieoffItem{Value: t.Value, W: t.Slice.Width()}})
	}
	for _, u := range ownUnused(p) {
		combined = append(combined, core.Connection{This: u, Other: core.UnusedItem{W: u.Width()}})
	}

	groups := core.ConnectionList(combined).MakeNonOverlapping()

	chunks := make([]Chunk, 0, len(groups))
	for _, g := range groups {
		c := electChunk(p, g)
		log.WithFields(logrus.Fields{
			"port":  p.QualifiedName(),
			"msb":   c.Msb,
			"lsb":   c.Lsb,
			"kind":  c.Kind,
			"wire":  c.WireName,
		}).Debug("resolve: elected chunk")
		chunks = append(chunks, c)
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Msb > chunks[j].Msb })
	return mergeChunks(chunks)
}

func ownTieoffs(p core.Port) []core.TieoffMark {
	var out []core.TieoffMark
	for _, t := range p.OwnerDef().Tieoffs() {
		if t.Slice.Port == p {
			out = append(out, t)
		}
	}
	return out
}

func ownUnused(p core.Port) []core.PortSlice {
	var out []core.PortSlice
	for _, u := range p.OwnerDef().UnusedMarks() {
		if u.Port == p {
			out = append(out, u)
		}
	}
	return out
}
