package engine_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-verify/interval-domain/internal/cfgfixture"
	"github.com/ai-verify/interval-domain/pkg/engine"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

func Test_Analyze_01_SplitsBoundsAcrossBranch(t *testing.T) {
	graph, ns, err := cfgfixture.Load("../../testdata/branch.json")
	require.NoError(t, err)

	result := engine.Analyze(graph, ns)

	x := ir.SymbolID(0)

	taken := result.States[3]
	require.NotNil(t, taken)
	require.False(t, taken.IsBottom())

	notTaken := result.States[4]
	require.NotNil(t, notTaken)
	require.False(t, notTaken.IsBottom())

	// node 3 (x<5 taken) should know x<=4; node 4 (fall-through) should
	// know x>=5. Checked indirectly through AiSimplify rather than
	// reaching into the environment's private maps from another package.
	xSym := ir.Symbol{ID: x, Ty: ir.BitVector{Width: 32, Signed: true}}

	lt5 := ir.Expr(ir.Lt{X: xSym, Y: intLit(5)})
	assert.False(t, taken.AiSimplify(&lt5, ns))
	assert.True(t, ir.IsTrueExpr(lt5))

	ge5 := ir.Expr(ir.Ge{X: xSym, Y: intLit(5)})
	assert.False(t, notTaken.AiSimplify(&ge5, ns))
	assert.True(t, ir.IsTrueExpr(ge5))
}

func intLit(n int64) ir.Expr {
	return ir.ConstantInt{Value: big.NewInt(n), Ty: ir.BitVector{Width: 32, Signed: true}}
}
