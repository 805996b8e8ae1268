package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "tuple", KindTuple.String())
}

func TestObjectOrderPreserved(t *testing.T) {
	o := NewObject()
	o.Set("b", Text("2"))
	o.Set("a", Text("1"))
	assert.Equal(t, []string{"b", "a"}, o.Keys())
}

func TestEqualNumberByValue(t *testing.T) {
	a := Number(big.NewRat(1, 2))
	b := Number(big.NewRat(2, 4))
	assert.True(t, Equal(a, b))
}

func TestEqualObjectIgnoresOrder(t *testing.T) {
	o1 := NewObject()
	o1.Set("a", NumberFromInt(1))
	o1.Set("b", NumberFromInt(2))
	o2 := NewObject()
	o2.Set("b", NumberFromInt(2))
	o2.Set("a", NumberFromInt(1))
	assert.True(t, Equal(FromObject(o1), FromObject(o2)))
}

func TestComparableKeyRejectsComposite(t *testing.T) {
	_, err := ComparableKey(FromObject(NewObject()))
	require.Error(t, err)
}

func TestFieldTupleKey(t *testing.T) {
	o := NewObject()
	o.Set("id", NumberFromInt(1))
	o.Set("code", Text("a"))
	k1, err := FieldTupleKey(o, []string{"id", "code"}, nil)
	require.NoError(t, err)
	k2, err := FieldTupleKey(o, []string{"code", "id"}, nil)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}
