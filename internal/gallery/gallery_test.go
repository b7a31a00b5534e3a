package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstack-labs/inkwell/pkg/device"
	"github.com/inkstack-labs/inkwell/pkg/devices/svg"
	"github.com/inkstack-labs/inkwell/pkg/draw"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

func TestGet(t *testing.T) {
	doc, err := Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "greeting", doc.Name)

	_, err = Get("nope")
	require.Error(t, err)
}

func TestAllSorted(t *testing.T) {
	docs := All()
	require.NotEmpty(t, docs)
	for i := 1; i < len(docs); i++ {
		assert.Less(t, docs[i-1].Name, docs[i].Name)
	}
	assert.Equal(t, len(docs), len(Names()))
}

// Every document must author a balanced log and do so deterministically.
func TestDocumentsBalancedAndDeterministic(t *testing.T) {
	for _, doc := range All() {
		t.Run(doc.Name, func(t *testing.T) {
			record := func() []ir.Instruction {
				g := draw.NewGenerator()
				doc.Build().Draw(g)
				return g.Instructions()
			}

			first := record()
			require.NotEmpty(t, first)
			require.NoError(t, ir.CheckBalance(first))
			assert.Equal(t, first, record())
		})
	}
}

// Every document must compile and execute on the reference backend.
func TestDocumentsRenderOnSVG(t *testing.T) {
	dev := svg.New(device.Config{DeferUnresolved: true}, nil)

	for _, doc := range All() {
		t.Run(doc.Name, func(t *testing.T) {
			out, err := device.Render(context.Background(), dev, doc.Build())
			require.NoError(t, err)
			assert.Contains(t, string(out), "<svg")
		})
	}
}
