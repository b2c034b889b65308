package emitvlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/canopyhdl/topstitch/core"
	"github.com/canopyhdl/topstitch/sv"
	"github.com/canopyhdl/topstitch/validate"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}()

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type config struct {
	log *logrus.Logger
}

// Option configures an Emit/MustEmit/EmitToFile run.
type Option func(*config)

// WithLogger attaches a logrus logger for Debug-level tracing shared with
// the underlying validate.Validate and resolve.Resolve calls. The default
// is silent.
func WithLogger(l *logrus.Logger) Option { return func(c *config) { c.log = l } }

// Emit validates root (spec §2: emit always validates first) and, if that
// succeeds, renders root and every definition it reaches to SystemVerilog
// text, one module per definition in first-encounter order, separated by
// blank lines. Returns ErrValidation (wrapping the validation findings) if
// validation fails; Emit never renders a design that does not validate.
func Emit(root *core.ModuleDefinition, opts ...Option) (string, error) {
	cfg := config{log: discardLogger}
	for _, o := range opts {
		o(&cfg)
	}

	if err := validate.Validate(root, validate.WithLogger(cfg.log)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var b strings.Builder
	for i, d := range collectOrder(root) {
		if d.Usage() == core.EmitNothingAndStop {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		m := buildModule(d, cfg.log)
		if err := sv.Write(&b, m); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// MustEmit is Emit, panicking (with a *core.Diagnostic) instead of
// returning an error.
func MustEmit(root *core.ModuleDefinition, opts ...Option) string {
	text, err := Emit(root, opts...)
	if err != nil {
		panic(&core.Diagnostic{Qualified: root.Name(), Class: ErrValidation, Detail: err.Error()})
	}
	return text
}

// EmitToFile is Emit, writing the result to path instead of returning it.
func EmitToFile(root *core.ModuleDefinition, path string, opts ...Option) error {
	text, err := Emit(root, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeString(f, text)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
