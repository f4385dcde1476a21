// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnpath/ent/savedsession"
)

// SavedSession is the model entity for the SavedSession schema.
type SavedSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Generated session ID, stable across devices
	SessionID string `json:"session_id,omitempty"`
	// Learner the session belongs to
	OwnerID string `json:"owner_id,omitempty"`
	// Display title, usually the source material title
	Title string `json:"title,omitempty"`
	// Updated on every save; drives last-write-wins sync
	LastModified time.Time `json:"last_modified,omitempty"`
	// Share of units completed, 0-100
	ProgressPercent float64 `json:"progress_percent,omitempty"`
	// Full SessionSnapshot as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SavedSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case savedsession.FieldData:
			values[i] = new([]byte)
		case savedsession.FieldProgressPercent:
			values[i] = new(sql.NullFloat64)
		case savedsession.FieldID:
			values[i] = new(sql.NullInt64)
		case savedsession.FieldSessionID, savedsession.FieldOwnerID, savedsession.FieldTitle:
			values[i] = new(sql.NullString)
		case savedsession.FieldLastModified:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SavedSession fields.
func (_m *SavedSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case savedsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case savedsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case savedsession.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case savedsession.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case savedsession.FieldLastModified:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified", values[i])
			} else if value.Valid {
				_m.LastModified = value.Time
			}
		case savedsession.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = value.Float64
			}
		case savedsession.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SavedSession.
// This includes values selected through modifiers, order, etc.
func (_m *SavedSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SavedSession.
// Note that you need to call SavedSession.Unwrap() before calling this method if this SavedSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SavedSession) Update() *SavedSessionUpdateOne {
	return NewSavedSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SavedSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SavedSession) Unwrap() *SavedSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SavedSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SavedSession) String() string {
	var builder strings.Builder
	builder.WriteString("SavedSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("last_modified=")
	builder.WriteString(_m.LastModified.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// SavedSessions is a parsable slice of SavedSession.
type SavedSessions []*SavedSession
