// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BehaviorEventsColumns holds the columns for the "behavior_events" table.
	BehaviorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString, Default: ""},
		{Name: "detail", Type: field.TypeString, Default: ""},
	}
	// BehaviorEventsTable holds the schema information for the "behavior_events" table.
	BehaviorEventsTable = &schema.Table{
		Name:       "behavior_events",
		Columns:    BehaviorEventsColumns,
		PrimaryKey: []*schema.Column{BehaviorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behaviorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[1]},
			},
			{
				Name:    "behaviorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[2]},
			},
			{
				Name:    "behaviorevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[3]},
			},
			{
				Name:    "behaviorevent_kind",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[4]},
			},
		},
	}
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[3]},
			},
			{
				Name:    "oraclerequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[5]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[9]},
			},
		},
	}
	// SavedSessionsColumns holds the columns for the "saved_sessions" table.
	SavedSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "last_modified", Type: field.TypeTime},
		{Name: "progress_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "data", Type: field.TypeJSON},
	}
	// SavedSessionsTable holds the schema information for the "saved_sessions" table.
	SavedSessionsTable = &schema.Table{
		Name:       "saved_sessions",
		Columns:    SavedSessionsColumns,
		PrimaryKey: []*schema.Column{SavedSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "savedsession_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SavedSessionsColumns[2]},
			},
			{
				Name:    "savedsession_owner_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{SavedSessionsColumns[2], SavedSessionsColumns[1]},
			},
			{
				Name:    "savedsession_last_modified",
				Unique:  false,
				Columns: []*schema.Column{SavedSessionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BehaviorEventsTable,
		OracleRequestEventsTable,
		SavedSessionsTable,
	}
)

func init() {
}
