// Package objectid isolates the two things input checks need from a storage
// engine's identifier type: a validity predicate for identifier text and a
// conversion from an identifier handle to its canonical text.
package objectid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MongoCodecName = "objectid"
	UUIDCodecName  = "uuid"
)

type Codec interface {
	// Name is the human name used in error messages, e.g. "ObjectId".
	Name() string
	// Valid reports whether s is syntactically a valid identifier.
	Valid(s string) bool
	// Text renders v as canonical identifier text. ok is false when v is not
	// an identifier handle of this codec.
	Text(v any) (text string, ok bool)
}

var (
	Mongo Codec = mongoCodec{}
	UUID  Codec = uuidCodec{}
)

// ByName resolves a codec from configuration.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MongoCodecName, "":
		return Mongo, nil
	case UUIDCodecName:
		return UUID, nil
	default:
		return nil, fmt.Errorf("unknown id codec %q, expected %q or %q", name, MongoCodecName, UUIDCodecName)
	}
}

type mongoCodec struct{}

func (mongoCodec) Name() string { return "ObjectId" }

func (mongoCodec) Valid(s string) bool {
	return primitive.IsValidObjectID(s)
}

func (mongoCodec) Text(v any) (string, bool) {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex(), true
	case *primitive.ObjectID:
		if id == nil {
			return "", false
		}
		return id.Hex(), true
	}
	return "", false
}

type uuidCodec struct{}

func (uuidCodec) Name() string { return "UUID" }

func (uuidCodec) Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func (uuidCodec) Text(v any) (string, bool) {
	switch id := v.(type) {
	case uuid.UUID:
		return id.String(), true
	case *uuid.UUID:
		if id == nil {
			return "", false
		}
		return id.String(), true
	case primitive.Binary:
		// BSON stores UUIDs as binary subtype 4.
		if id.Subtype != bsontype.BinaryUUID {
			return "", false
		}
		u, err := uuid.FromBytes(id.Data)
		if err != nil {
			return "", false
		}
		return u.String(), true
	}
	return "", false
}
