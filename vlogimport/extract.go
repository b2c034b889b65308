package vlogimport

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/canopyhdl/topstitch/core"
)

// PortSpec is one extracted port: its name, direction, and resolved bit
// width (ranges are evaluated against the parameter environment passed to
// ExtractPorts).
type PortSpec struct {
	Name  string
	Dir   core.Direction
	Width int
}

var (
	portHeaderRe = regexp.MustCompile(`(?m)^\s*(input|output|inout)\s+(?:wire\s+|reg\s+|logic\s+)?(?:\[\s*([^\]]+?)\s*:\s*([^\]]+?)\s*\]\s*)?(\w+)\s*[,;)]`)
	paramRe      = regexp.MustCompile(`(?m)parameter\s+(?:\w+\s+)?(\w+)\s*=\s*(-?\d+)`)
	moduleNameRe = regexp.MustCompile(`\bmodule\s+(\w+)`)
)

// ExtractPorts scans source for its module name, parameter defaults, and
// ANSI-style port declarations, evaluating each port's bit range against
// the resolved parameter environment (declared defaults, overridden by
// overrides). Only a narrow grammar subset is understood: a port
// declaration must start its own line, and a parameter default must be a
// decimal integer literal. Declarations outside that subset are skipped
// without an error; errors come from a missing module or port list, a
// parameter value that does not fit in 64 bits, or a recognised range
// that cannot be evaluated or is not positive.
func ExtractPorts(source string, overrides map[string]int64) (moduleName string, ports []PortSpec, params map[string]int64, err error) {
	m := moduleNameRe.FindStringSubmatch(source)
	if m == nil {
		return "", nil, nil, fmt.Errorf("%w: no module declaration found", ErrParse)
	}
	moduleName = m[1]

	params = map[string]int64{}
	for _, pm := range paramRe.FindAllStringSubmatch(source, -1) {
		v, convErr := strconv.ParseInt(pm[2], 10, 64)
		if convErr != nil {
			return "", nil, nil, fmt.Errorf("%w: parameter %s: %v", ErrParse, pm[1], convErr)
		}
		params[pm[1]] = v
	}

	env := make(map[string]int64, len(params)+len(overrides))
	for k, v := range params {
		env[k] = v
	}
	for k, v := range overrides {
		env[k] = v
	}

	for _, pm := range portHeaderRe.FindAllStringSubmatch(source, -1) {
		dirStr, msbExpr, lsbExpr, name := pm[1], pm[2], pm[3], pm[4]
		dir, dirErr := parseDirection(dirStr)
		if dirErr != nil {
			return "", nil, nil, dirErr
		}
		width := 1
		if msbExpr != "" {
			msb, evalErr := evalExpr(msbExpr, env)
			if evalErr != nil {
				return "", nil, nil, fmt.Errorf("%w: port %s msb: %v", ErrParse, name, evalErr)
			}
			lsb, evalErr2 := evalExpr(lsbExpr, env)
			if evalErr2 != nil {
				return "", nil, nil, fmt.Errorf("%w: port %s lsb: %v", ErrParse, name, evalErr2)
			}
			width = int(msb-lsb) + 1
		}
		if width < 1 {
			return "", nil, nil, fmt.Errorf("%w: port %s: non-positive width %d", ErrParse, name, width)
		}
		ports = append(ports, PortSpec{Name: name, Dir: dir, Width: width})
	}
	if len(ports) == 0 {
		return "", nil, nil, fmt.Errorf("%w: no ports found in module %s", ErrParse, moduleName)
	}
	return moduleName, ports, params, nil
}

func parseDirection(s string) (core.Direction, error) {
	switch s {
	case "input":
		return core.Input, nil
	case "output":
		return core.Output, nil
	case "inout":
		return core.InOut, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrParse, s)
}

// Import builds a ModuleDefinition from raw Verilog/SystemVerilog source,
// extracting its port list and parameter defaults and attaching a
// core.VerilogOrigin so it can later be re-parameterized
// (builder.Parameterize) or emitted as an already-defined library cell
// (core.EmitDefinitionAndStop).
func Import(source string) *core.ModuleDefinition {
	name, ports, params, err := ExtractPorts(source, nil)
	if err != nil {
		panic(err)
	}
	d := core.NewDef(name)
	for _, p := range ports {
		d.AddPort(p.Name, p.Dir, p.Width)
	}
	d.SetVerilogOrigin(&core.VerilogOrigin{ModuleName: name, Source: source, Params: params})
	d.SetUsage(core.EmitDefinitionAndStop)
	return d
}

// Reimport re-extracts a port list from origin's stored source text, with
// overrides taking precedence over the originally declared parameter
// defaults. Used by builder.Parameterize to recompute parameter-dependent
// widths without re-running a full Import.
func Reimport(origin *core.VerilogOrigin, overrides map[string]int64) ([]PortSpec, error) {
	_, ports, _, err := ExtractPorts(origin.Source, overrides)
	return ports, err
}
