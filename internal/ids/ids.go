// Package ids generates native record identifiers and normalizes the
// canonical "id" field exposed on every outbound record.
//
// Records created by this service always carry both identifiers. Rows imported
// from the legacy document shape may only have the native "_id", so list
// responses, the diagnostic endpoint and the repair job run them through the
// normalizer before use.
package ids

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document keys for the canonical and native identifiers.
const (
	CanonicalKey = "id"
	NativeKey    = "_id"
)

// Document is a loosely shaped record, as decoded from JSON or a raw row.
type Document = map[string]any

// Identifiable is implemented by typed records that carry both identifiers.
type Identifiable interface {
	NativeID() string
	CanonicalID() string
	SetCanonicalID(id string)
}

// NewObjectID returns a new 24-character hex object identifier.
func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidObjectID reports whether s is a 24-character hex identifier.
func IsValidObjectID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// GetObjectID returns the best available identifier for doc: an explicit "id"
// first, then the stringified "_id", otherwise "". It never panics.
func GetObjectID(doc Document) string {
	if doc == nil {
		return ""
	}
	if id := stringify(doc[CanonicalKey]); id != "" {
		return id
	}
	return stringify(doc[NativeKey])
}

// NormalizeIDs returns shallow copies of docs with a string "id" field set on
// every element. Input order and all other fields are preserved; the input
// documents are not modified.
func NormalizeIDs(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		copied := make(Document, len(doc)+1)
		for k, v := range doc {
			copied[k] = v
		}
		copied[CanonicalKey] = GetObjectID(doc)
		out = append(out, copied)
	}
	return out
}

// Ensure backfills the canonical id of r from its native id. It reports
// whether r was changed.
func Ensure(r Identifiable) bool {
	if r.CanonicalID() != "" {
		return false
	}
	native := r.NativeID()
	if native == "" {
		return false
	}
	r.SetCanonicalID(native)
	return true
}

// NormalizeRecords runs Ensure over every element of recs in place and returns recs.
func NormalizeRecords[T any, P interface {
	*T
	Identifiable
}](recs []T) []T {
	for i := range recs {
		Ensure(P(&recs[i]))
	}
	return recs
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case primitive.ObjectID:
		if t.IsZero() {
			return ""
		}
		return t.Hex()
	case *primitive.ObjectID:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Hex()
	case fmt.Stringer:
		return t.String()
	case int, int32, int64, uint, uint32, uint64:
		if fmt.Sprint(t) == "0" {
			return ""
		}
		return fmt.Sprint(t)
	case float64:
		if t == 0 {
			return ""
		}
		return fmt.Sprint(t)
	default:
		return ""
	}
}
