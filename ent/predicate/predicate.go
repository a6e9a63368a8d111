// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Movie is the predicate function for movie builders.
type Movie func(*sql.Selector)
