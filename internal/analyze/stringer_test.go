package analyze

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedType(pkg *types.Package, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func TestTypeStringer_TypeString(t *testing.T) {
	pkg := types.NewPackage("example.com/shop", "shop")
	other := types.NewPackage("example.com/money", "money")

	order := namedType(pkg, "Order", types.NewStruct(nil, nil))
	cents := namedType(other, "Cents", types.Typ[types.Int64])

	local := NewTypeStringer(pkg)
	global := NewTypeStringer(nil)

	tests := []struct {
		name   string
		typ    types.Type
		local  string
		global string
	}{
		{"basic", types.Typ[types.String], "string", "string"},
		{"local named", order, "Order", "shop.Order"},
		{"pointer", types.NewPointer(order), "*Order", "*shop.Order"},
		{"foreign named", cents, "money.Cents", "money.Cents"},
		{"map", types.NewMap(types.Typ[types.String], cents), "map[string]money.Cents", "map[string]money.Cents"},
		{"empty interface", types.NewSlice(types.NewInterfaceType(nil, nil)), "[]any", "[]any"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.local, local.TypeString(tt.typ))
			assert.Equal(t, tt.global, global.TypeString(tt.typ))
		})
	}
}

func TestTypeStringer_Variadic(t *testing.T) {
	s := NewTypeStringer(nil)

	assert.Equal(t, "...int", s.Variadic(types.NewSlice(types.Typ[types.Int])))
	assert.Equal(t, "string", s.Variadic(types.Typ[types.String]))
}

func TestTypeStringer_Nil(t *testing.T) {
	assert.Equal(t, "<nil>", NewTypeStringer(nil).TypeString(nil))
}

func TestIteratorElems_NotIterator(t *testing.T) {
	pkg := types.NewPackage("example.com/shop", "shop")

	_, ok := iteratorElems(types.Typ[types.Int])
	assert.False(t, ok)

	_, ok = iteratorElems(namedType(pkg, "Seq", types.NewSignatureType(nil, nil, nil, nil, nil, false)))
	assert.False(t, ok, "only iter.Seq and iter.Seq2 count")
}
