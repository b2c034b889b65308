package validate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/resolve"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(logDiscard{})
	return l
}()

type logDiscard struct{}

func (logDiscard) Write(p []byte) (int, error) { return len(p), nil }

type config struct {
	log *logrus.Logger
}

// Option configures a Validate/MustValidate/TryValidate run.
type Option func(*config)

// WithLogger attaches a logrus logger for Debug-level traversal tracing.
// The default is silent.
func WithLogger(l *logrus.Logger) Option { return func(c *config) { c.log = l } }

// Validate walks root and every descendant definition reachable per each
// definition's Usage policy, checking full-width coverage on every port.
// It returns the aggregated findings as a single error (nil if none), and
// never panics itself.
func Validate(root *core.ModuleDefinition, opts ...Option) error {
	cfg := config{log: discardLogger}
	for _, o := range opts {
		o(&cfg)
	}
	v := &validator{visited: map[*core.ModuleDefinition]bool{}, log: cfg.log}
	v.walk(root)
	return v.errs.ErrorOrNil()
}

// MustValidate calls Validate and panics with a *core.Diagnostic wrapping
// the aggregated error if validation found anything.
func MustValidate(root *core.ModuleDefinition, opts ...Option) {
	if err := Validate(root, opts...); err != nil {
		panic(&core.Diagnostic{Qualified: root.Name(), Class: ErrInvalid, Detail: err.Error()})
	}
}

// TryValidate is MustValidate with the panic recovered into a plain error,
// for callers that would rather not handle panics at all.
func TryValidate(root *core.ModuleDefinition, opts ...Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*core.Diagnostic); ok {
				err = d
				return
			}
			panic(r)
		}
	}()
	MustValidate(root, opts...)
	return nil
}

type validator struct {
	visited map[*core.ModuleDefinition]bool
	log     *logrus.Logger
	errs    *multierror.Error
}

// walk visits d. Per spec §4.10, the full coverage procedure (steps 1-7)
// applies only to definitions whose usage is EmitDefinitionAndDescend —
// a definition imported or stubbed from elsewhere (EmitDefinitionAndStop,
// EmitStubAndStop, EmitNothingAndStop) is assumed correct and is neither
// checked nor descended into. Without this gate, every leaf cell with an
// externally-defined body (e.g. the pipeline package's delay element,
// which by design has no internal connections) would fail validation
// unconditionally.
func (v *validator) walk(d *core.ModuleDefinition) {
	if v.visited[d] {
		return
	}
	v.visited[d] = true
	if d.Usage() != core.EmitDefinitionAndDescend {
		return
	}
	v.log.WithField("def", d.Name()).Debug("validate: visiting definition")

	for _, pn := range d.GetPorts() {
		v.checkPort(d.GetPort(pn))
	}
	for _, in := range d.GetInstances() {
		inst := d.GetInstance(in)
		for _, pn := range inst.Def.GetPorts() {
			v.checkPort(d.InstancePort(in, pn))
		}
	}

	for _, in := range d.GetInstances() {
		v.walk(d.GetInstance(in).Def)
	}
}

func (v *validator) checkPort(p core.Port) {
	drivable, _, _, _ := core.Legality(p)
	if drivable {
		v.checkDrivable(p)
	} else {
		v.checkCanDrive(p)
	}
}

func (v *validator) checkDrivable(p core.Port) {
	chunks, err := v.safeResolve(p)
	if err != nil {
		v.errs = multierror.Append(v.errs, err)
		return
	}
	bm := newBitmap()
	for _, c := range chunks {
		bm.mark(c.Lsb, c.Width())
	}
	v.reportGaps(p, bm, ErrGap)
}

func (v *validator) checkCanDrive(p core.Port) {
	bm := newBitmap()
	trace, err := v.safeTrace(p)
	if err != nil {
		v.errs = multierror.Append(v.errs, err)
		return
	}
	for _, c := range trace {
		bm.mark(c.This.Lsb, c.This.Width())
	}
	for _, u := range p.OwnerDef().UnusedMarks() {
		if u.Port == p {
			bm.mark(u.Lsb, u.Width())
		}
	}
	v.reportGaps(p, bm, ErrUnconsumed)
}

func (v *validator) reportGaps(p core.Port, bm *bitmap, class error) {
	for _, g := range bm.gaps(p.Width()) {
		slice := core.PortSlice{Port: p, Msb: g[0], Lsb: g[1]}
		v.errs = multierror.Append(v.errs, fmt.Errorf("%w: %s", class, slice.QualifiedName()))
	}
}

// safeResolve calls resolve.Resolve, converting a *core.Diagnostic panic
// (multiply-driven, no-driver, cyclic trace, ...) into a plain error so
// one bad port never aborts the whole validation walk.
func (v *validator) safeResolve(p core.Port) (chunks []resolve.Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*core.Diagnostic); ok {
				err = d
				return
			}
			panic(r)
		}
	}()
	chunks = resolve.Resolve(p, v.log)
	return chunks, nil
}

func (v *validator) safeTrace(p core.Port) (trace core.ConnectionList, err error) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*core.Diagnostic); ok {
				err = d
				return
			}
			panic(r)
		}
	}()
	trace = p.Connections().Trace()
	return trace, nil
}
