package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

func Test_Namespace_01_DeclareAssignsSequentialIDs(t *testing.T) {
	ns := ir.NewNamespace()

	x := ns.Declare("x", ir.BitVector{Width: 32, Signed: true})
	y := ns.Declare("y", ir.BitVector{Width: 32, Signed: true})

	assert.Equal(t, ir.SymbolID(0), x)
	assert.Equal(t, ir.SymbolID(1), y)
}

func Test_Namespace_02_NameAndTypeOf(t *testing.T) {
	ns := ir.NewNamespace()
	id := ns.Declare("count", ir.BitVector{Width: 64, Signed: false})

	assert.Equal(t, "count", ns.Name(id))

	ty, ok := ns.TypeOf(id)
	assert.True(t, ok)
	assert.Equal(t, ir.BitVector{Width: 64, Signed: false}, ty)
}

func Test_Namespace_03_UnknownSymbolFallsBackGracefully(t *testing.T) {
	ns := ir.NewNamespace()

	assert.Equal(t, "?", ns.Name(99))

	_, ok := ns.TypeOf(99)
	assert.False(t, ok)
}
