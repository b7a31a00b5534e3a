// Package svg provides the reference SVG device backend for inkwell.
//
// Compilation resolves the scope brackets of an instruction log into an
// element tree; execution serializes that tree into a UTF-8 SVG document.
package svg

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/inkstack-labs/inkwell/pkg/device"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// DefaultIndent is the serializer indentation unit when none is configured.
const DefaultIndent = "  "

// Device implements the device.Device interface for SVG output.
// Compile keeps all per-document state on the call stack, so a single
// Device serves concurrent compiles without interleaving scope state.
type Device struct {
	cfg    device.Config
	logger *slog.Logger
}

// New creates an SVG device. A nil logger discards all log output.
func New(cfg device.Config, logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}
	return &Device{cfg: cfg, logger: logger}
}

// Compile resolves the log's scope brackets into an element tree and maps
// each element to its SVG form. The log is read, never mutated. Scope
// imbalance returns *ir.StructuralError; an animation register that is
// neither configured nor deferred returns *ir.UnresolvedReferenceError.
func (d *Device) Compile(ctx context.Context, log []ir.Instruction) (device.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ir.CheckBalance(log); err != nil {
		return nil, err
	}

	res := resolver{
		registers:       d.cfg.Registers,
		deferUnresolved: d.cfg.DeferUnresolved,
	}

	root := &node{}
	stack := []*node{root}
	for i, in := range log {
		top := stack[len(stack)-1]
		switch in.Kind {
		case ir.KindText:
			top.children = append(top.children, textNode(in.Text))
		case ir.KindRef:
			s, err := res.resolve(in.Name)
			if err != nil {
				return nil, fmt.Errorf("instruction %d: %w", i, err)
			}
			top.children = append(top.children, textNode(s))
		case ir.KindOpen:
			n, err := elementNode(in.Element, res)
			if err != nil {
				return nil, fmt.Errorf("instruction %d: %w", i, err)
			}
			top.children = append(top.children, n)
			stack = append(stack, n)
		case ir.KindClose:
			// CheckBalance already proved the pops stay in range.
			stack = stack[:len(stack)-in.Count]
		default:
			return nil, fmt.Errorf("instruction %d: unsupported kind %s", i, in.Kind)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.logger.Debug("compiled instruction log",
		"instructions", len(log),
		"top_level_nodes", len(root.children))

	return &Program{root: root, indent: d.cfg.Indent}, nil
}

func init() {
	device.Register("svg", func(cfg device.Config, logger *slog.Logger) device.Device {
		return New(cfg, logger)
	})
}
