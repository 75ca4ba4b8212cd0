package members_test

import (
	"reflect"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/members"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

var (
	intT = reflect.TypeOf(0)
	strT = reflect.TypeOf("")
)

func TestRecordBuilder(t *testing.T) {
	n, err := members.NewRecord("Movie").
		Field("title", strT).
		Field("year", intT, members.Optional()).
		Field("rating", intT, members.Default(0)).
		Closed(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, node.KindRecord, n.Kind())
	assert.Equal(t, "Movie", n.Name())
	assert.True(t, n.Total())
	assert.True(t, n.Closed())

	fields := n.Fields()
	require.Len(t, fields, 3)
	assert.True(t, fields[0].Required)
	assert.False(t, fields[1].Required)
	rating := fields[2]
	assert.False(t, rating.Required)
	assert.True(t, rating.HasDefault)
	assert.Equal(t, 0, rating.Default)
}

func TestRecordQualifiersOverrideTotality(t *testing.T) {
	n, err := members.NewRecord("Partial").
		Total(false).
		Field("always", typex.Required(strT)).
		Field("never", typex.NotRequired(strT)).
		Field("frozen", typex.ReadOnly(strT)).
		Field("plain", strT).
		Build()
	require.NoError(t, err)

	fields := n.Fields()
	assert.True(t, fields[0].Required)
	assert.False(t, fields[1].Required)
	assert.True(t, fields[2].ReadOnly)
	assert.False(t, fields[3].Required)
}

func TestRecordDuplicateFields(t *testing.T) {
	n, err := members.NewRecord("Dedup").
		Field("id", intT).
		Field("id", intT).
		Build()
	require.NoError(t, err)
	assert.Len(t, n.Fields(), 1)

	_, err = members.NewRecord("Conflict").
		Field("id", intT).
		Field("id", strT).
		Field("name", strT).
		Field("name", intT).
		Build()
	require.Error(t, err)

	var mismatch *members.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Conflict", mismatch.Record)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestRecordHoistsMetadata(t *testing.T) {
	n, err := members.NewRecord("Tagged").
		Field("id", typex.WithMeta(intT, "primary key")).
		Build()
	require.NoError(t, err)

	fld := n.Fields()[0]
	assert.Equal(t, []any{"primary key"}, fld.Metadata.Values())
}

func TestNamedRecordKeepsOrderAndRequiresAll(t *testing.T) {
	n, err := members.NewNamedRecord("Point").
		Field("x", intT).
		Field("y", intT).
		Build()
	require.NoError(t, err)

	assert.Equal(t, node.KindNamedRecord, n.Kind())
	fields := n.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "x", fields[0].Name)
	assert.Equal(t, "y", fields[1].Name)
	for _, f := range fields {
		assert.True(t, f.Required)
	}
}
