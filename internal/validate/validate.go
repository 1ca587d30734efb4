package validate

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories a listing may belong to. Pets carries extra rules
// (price 0 at creation, quantity 1 at order time).
var categories = map[string]bool{
	"Pets":          true,
	"Food":          true,
	"Accessories":   true,
	"Care Products": true,
}

// ObjectID checks identifier format only; existence is the store's problem.
func ObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	return id, err == nil
}

func Category(s string) bool { return categories[s] }

// Present reports whether a text field survives trimming.
func Present(s string) bool { return strings.TrimSpace(s) != "" }
