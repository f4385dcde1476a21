// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BehaviorEvent is the predicate function for behaviorevent builders.
type BehaviorEvent func(*sql.Selector)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// SavedSession is the predicate function for savedsession builders.
type SavedSession func(*sql.Selector)
