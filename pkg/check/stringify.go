package check

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

const idField = "_id"

// StringifyID returns a deep copy of doc in which every "_id" holding an
// identifier handle is replaced by its text. Anything that is not a document
// (string-keyed map or bson.D) is returned unchanged.
func (c *Checker) StringifyID(doc any) any {
	if isFalsy(doc) || !isDocument(doc) {
		return doc
	}
	return c.copyValue("", doc)
}

// StringifyIDs applies StringifyID to every document of docs. docs is returned
// unchanged when it is not a slice or when any element is not a document. The
// result has the same slice type as docs.
func (c *Checker) StringifyIDs(docs any) any {
	if isFalsy(docs) {
		return docs
	}
	rv := reflect.ValueOf(docs)
	if rv.Kind() != reflect.Slice {
		return docs
	}
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if el != nil && !isDocument(el) {
			return docs
		}
	}

	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if el == nil {
			continue
		}
		out.Index(i).Set(reflect.ValueOf(c.StringifyID(el)))
	}
	return out.Interface()
}

func isDocument(v any) bool {
	if _, ok := v.(bson.D); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func (c *Checker) copyValue(key string, v any) any {
	if key == idField {
		if text, ok := c.codec.Text(v); ok {
			return text
		}
	}

	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = c.copyValue(k, val)
		}
		return out
	case bson.M:
		out := make(bson.M, len(t))
		for k, val := range t {
			out[k] = c.copyValue(k, val)
		}
		return out
	case bson.D:
		out := make(bson.D, 0, len(t))
		for _, e := range t {
			out = append(out, bson.E{Key: e.Key, Value: c.copyValue(e.Key, e.Value)})
		}
		return out
	case bson.A:
		out := make(bson.A, len(t))
		for i, val := range t {
			out[i] = c.copyValue("", val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = c.copyValue("", val)
		}
		return out
	case []bson.M:
		out := make([]bson.M, len(t))
		for i, val := range t {
			out[i] = c.copyValue("", val).(bson.M)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i] = c.copyValue("", val).(map[string]any)
		}
		return out
	}
	return v
}
