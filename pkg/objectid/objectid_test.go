package objectid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoCodec(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid hex", input: "507f1f77bcf86cd799439011", valid: true},
		{name: "uppercase hex", input: "507F1F77BCF86CD799439011", valid: true},
		{name: "too short", input: "507f1f77bcf86cd79943901", valid: false},
		{name: "not hex", input: "not-an-id", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Mongo.Valid(tt.input))
		})
	}

	oid, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	text, ok := Mongo.Text(oid)
	assert.True(t, ok)
	assert.Equal(t, "507f1f77bcf86cd799439011", text)

	text, ok = Mongo.Text(&oid)
	assert.True(t, ok)
	assert.Equal(t, "507f1f77bcf86cd799439011", text)

	_, ok = Mongo.Text("507f1f77bcf86cd799439011")
	assert.False(t, ok, "plain strings are not handles")

	var nilID *primitive.ObjectID
	_, ok = Mongo.Text(nilID)
	assert.False(t, ok)
}

func TestUUIDCodec(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")

	assert.True(t, UUID.Valid("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.False(t, UUID.Valid("507f1f77bcf86cd799439011"))

	text, ok := UUID.Text(id)
	assert.True(t, ok)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", text)

	text, ok = UUID.Text(primitive.Binary{Subtype: bsontype.BinaryUUID, Data: id[:]})
	assert.True(t, ok)
	assert.Equal(t, id.String(), text)

	_, ok = UUID.Text(primitive.Binary{Subtype: bsontype.BinaryGeneric, Data: id[:]})
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	c, err := ByName("objectid")
	require.NoError(t, err)
	assert.Equal(t, "ObjectId", c.Name())

	c, err = ByName(" UUID ")
	require.NoError(t, err)
	assert.Equal(t, "UUID", c.Name())

	c, err = ByName("")
	require.NoError(t, err)
	assert.Equal(t, Mongo, c)

	_, err = ByName("snowflake")
	assert.Error(t, err)
}
