package cfgfixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-verify/interval-domain/internal/cfgfixture"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

func Test_Load_01_DecodesBranchFixture(t *testing.T) {
	graph, ns, err := cfgfixture.Load("../../testdata/branch.json")
	require.NoError(t, err)

	assert.Equal(t, ir.NodeID(0), graph.Entry)
	assert.Len(t, graph.Nodes, 5)
	assert.Equal(t, "x", ns.Name(0))

	ty, ok := ns.TypeOf(0)
	require.True(t, ok)
	assert.Equal(t, ir.BitVector{Width: 32, Signed: true}, ty)
}

func Test_Load_02_DecodesGotoSuccessors(t *testing.T) {
	graph, _, err := cfgfixture.Load("../../testdata/branch.json")
	require.NoError(t, err)

	branch, ok := graph.Node(2).Instr.(ir.Goto)
	require.True(t, ok)
	assert.Equal(t, ir.NodeID(3), branch.TrueTarget)
	assert.Equal(t, ir.NodeID(4), branch.NextTarget)
}

func Test_Load_03_MissingFileIsAnError(t *testing.T) {
	_, _, err := cfgfixture.Load("../../testdata/does-not-exist.json")
	assert.Error(t, err)
}
