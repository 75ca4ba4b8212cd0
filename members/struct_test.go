package members_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/members"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/store"
)

func fieldByName(t *testing.T, fields []node.Field, name string) node.Field {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no field %q", name)
	return node.Field{}
}

func TestOfStructProduct(t *testing.T) {
	n, err := members.OfStruct(reflect.TypeOf(store.Product{}))
	require.NoError(t, err)

	assert.Equal(t, node.KindClass, n.Kind())
	assert.Equal(t, "Product", n.Name())
	assert.Equal(t, reflect.TypeOf(store.Product{}), n.Type())

	fields := n.InstanceFields()
	require.Len(t, fields, 7)

	id := fieldByName(t, fields, "id")
	assert.Equal(t, node.KindConcrete, id.Type.Kind())
	assert.True(t, id.Required)

	desc := fieldByName(t, fields, "description")
	assert.False(t, desc.Required)

	price := fieldByName(t, fields, "price_cents")
	assert.True(t, price.ReadOnly)

	sku := fieldByName(t, fields, "sku")
	assert.Equal(t, []any{"unique"}, sku.Metadata.Values())
}

func TestOfStructPointerFieldIsOptional(t *testing.T) {
	n, err := members.OfStruct(reflect.TypeOf(store.Customer{}))
	require.NoError(t, err)

	addr := fieldByName(t, n.InstanceFields(), "address")
	assert.False(t, addr.Required)
	require.True(t, node.IsUnion(addr.Type))
	assert.True(t, node.UnionIncludesNone(addr.Type))
}

func TestOfStructMethods(t *testing.T) {
	n, err := members.OfStruct(reflect.TypeOf(store.Order{}),
		inspect.WithMembers(false, true, true, true, true))
	require.NoError(t, err)

	require.Len(t, n.Methods(), 1)
	m := n.Methods()[0]
	assert.Equal(t, node.KindFunction, m.Kind())
	assert.Equal(t, "Subtotal", m.Name())

	sig := m.Signature()
	require.NotNil(t, sig)
	assert.Empty(t, sig.SignatureParams())
	assert.Equal(t, reflect.TypeOf(int64(0)), sig.Return().Type())
}

func TestOfStructMethodsOffByDefault(t *testing.T) {
	n, err := members.OfStruct(reflect.TypeOf(store.Order{}))
	require.NoError(t, err)
	assert.Empty(t, n.Methods())
}

func TestOfStructEmbeddedBecomesBase(t *testing.T) {
	type header struct {
		ID int64 `json:"id"`
	}
	type event struct {
		header
		Kind string `json:"kind"`
	}

	n, err := members.OfStruct(reflect.TypeOf(event{}))
	require.NoError(t, err)

	require.Len(t, n.Bases(), 1)
	base := n.Bases()[0]
	assert.Equal(t, node.KindClass, base.Kind())
	assert.Equal(t, "header", base.Name())
	require.Len(t, n.InstanceFields(), 1)
	assert.Equal(t, "kind", n.InstanceFields()[0].Name)
}

func TestOfStructInheritedExcluded(t *testing.T) {
	type header struct {
		ID int64
	}
	type event struct {
		header
		Kind string
	}

	cfg := inspect.DefaultConfig()
	cfg.IncludeInherited = false

	n, err := members.OfStruct(reflect.TypeOf(event{}), inspect.WithConfig(cfg))
	require.NoError(t, err)
	assert.Empty(t, n.Bases())
}

func TestOfStructTagSkipsAndMetadataPlacement(t *testing.T) {
	type row struct {
		Secret string `typegraph:"-"`
		Key    string `json:"key" meta:"indexed"`
	}

	cfg := inspect.DefaultConfig()
	cfg.HoistFieldMetadata = false

	n, err := members.OfStruct(reflect.TypeOf(row{}), inspect.WithConfig(cfg))
	require.NoError(t, err)

	fields := n.InstanceFields()
	require.Len(t, fields, 1)
	key := fields[0]
	assert.True(t, key.Metadata.IsEmpty())
	assert.Equal(t, []any{"indexed"}, key.Type.Metadata().Values())
}

func TestOfStructUnexportedFields(t *testing.T) {
	type pair struct {
		Exported int
		hidden   string //nolint:unused
	}

	n, err := members.OfStruct(reflect.TypeOf(pair{}))
	require.NoError(t, err)
	assert.Len(t, n.InstanceFields(), 1)

	all, err := members.OfStruct(reflect.TypeOf(pair{}),
		inspect.WithMembers(true, true, false, true, true))
	require.NoError(t, err)
	assert.Len(t, all.InstanceFields(), 2)
}

func TestOfStructClassVarTag(t *testing.T) {
	type counter struct {
		Limit int `typegraph:"limit,classvar"`
		Seen  int `json:"seen"`
	}

	n, err := members.OfStruct(reflect.TypeOf(counter{}))
	require.NoError(t, err)

	require.Len(t, n.ClassFields(), 1)
	assert.Equal(t, "limit", n.ClassFields()[0].Name)
	require.Len(t, n.InstanceFields(), 1)
	assert.Equal(t, "seen", n.InstanceFields()[0].Name)
}

func TestOfStructRefTagOverridesAnnotation(t *testing.T) {
	type doc struct {
		Owner string `typegraph:"owner,ref=Account"`
	}

	n, err := members.OfStruct(reflect.TypeOf(doc{}),
		inspect.WithNamespaces(inspect.Namespace{"Account": reflect.TypeOf(int64(0))}, nil))
	require.NoError(t, err)

	owner := fieldByName(t, n.InstanceFields(), "owner")
	require.Equal(t, node.KindForwardRef, owner.Type.Kind())
	assert.Equal(t, node.RefResolved, owner.Type.RefState())
	assert.Equal(t, reflect.TypeOf(int64(0)), owner.Type.RefTarget().Type())
}

func TestOfStructRejectsNonStruct(t *testing.T) {
	_, err := members.OfStruct(reflect.TypeOf(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a struct")
}

func TestOfStructSourceLocation(t *testing.T) {
	n, err := members.OfStruct(reflect.TypeOf(store.Product{}),
		inspect.WithSourceLocations(true))
	require.NoError(t, err)

	src := n.Source()
	require.NotNil(t, src)
	assert.Equal(t, "Product", src.Name)
	assert.Contains(t, src.Module, "typegraph/store")
}

