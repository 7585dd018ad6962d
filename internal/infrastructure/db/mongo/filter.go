package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// containsCI builds a case-insensitive substring match on one field. The
// term is quoted so user input can never act as a regex.
func containsCI(field, term string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}}
}

// searchAny builds the $or clauses for a case-insensitive substring match
// across several fields.
func searchAny(term string, fields ...string) []bson.M {
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, containsCI(f, term))
	}
	return or
}
