package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/inkstack-labs/inkwell/internal/gallery"
	"github.com/inkstack-labs/inkwell/pkg/draw"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <document>",
		Short: "Print a document's instruction log",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	doc, err := gallery.Get(args[0])
	if err != nil {
		return err
	}

	g := draw.NewGenerator()
	doc.Build().Draw(g)
	log := g.Instructions()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Depth", "Kind", "Detail"})

	depth := 0
	for i, in := range log {
		if in.Kind == ir.KindClose {
			depth -= in.Count
		}
		t.AppendRow(table.Row{i, depth, in.Kind.String(), instructionDetail(in)})
		if in.Kind == ir.KindOpen {
			depth++
		}
	}
	t.Render()

	if err := ir.CheckBalance(log); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d instruction(s), scopes balanced\n", len(log))
	return nil
}

func instructionDetail(in ir.Instruction) string {
	switch in.Kind {
	case ir.KindText:
		return fmt.Sprintf("%q", in.Text)
	case ir.KindRef:
		return in.Name
	case ir.KindOpen:
		return strings.TrimPrefix(fmt.Sprintf("%T", in.Element), "ir.")
	case ir.KindClose:
		return fmt.Sprintf("%d", in.Count)
	default:
		return ""
	}
}
