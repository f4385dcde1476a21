// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learnpath/ent/behaviorevent"
	"github.com/abhisek/learnpath/ent/oraclerequestevent"
	"github.com/abhisek/learnpath/ent/savedsession"
	"github.com/abhisek/learnpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	behavioreventMixin := schema.BehaviorEvent{}.Mixin()
	behavioreventMixinFields0 := behavioreventMixin[0].Fields()
	_ = behavioreventMixinFields0
	behavioreventFields := schema.BehaviorEvent{}.Fields()
	_ = behavioreventFields
	// behavioreventDescTimestamp is the schema descriptor for timestamp field.
	behavioreventDescTimestamp := behavioreventMixinFields0[1].Descriptor()
	// behaviorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	behaviorevent.DefaultTimestamp = behavioreventDescTimestamp.Default.(func() time.Time)
	// behavioreventDescUnitID is the schema descriptor for unit_id field.
	behavioreventDescUnitID := behavioreventFields[2].Descriptor()
	// behaviorevent.DefaultUnitID holds the default value on creation for the unit_id field.
	behaviorevent.DefaultUnitID = behavioreventDescUnitID.Default.(string)
	// behavioreventDescDetail is the schema descriptor for detail field.
	behavioreventDescDetail := behavioreventFields[3].Descriptor()
	// behaviorevent.DefaultDetail holds the default value on creation for the detail field.
	behaviorevent.DefaultDetail = behavioreventDescDetail.Default.(string)
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[3].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[5].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[7].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	// oraclerequesteventDescRequestBody is the schema descriptor for request_body field.
	oraclerequesteventDescRequestBody := oraclerequesteventFields[8].Descriptor()
	// oraclerequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	oraclerequestevent.DefaultRequestBody = oraclerequesteventDescRequestBody.Default.(string)
	// oraclerequesteventDescResponseBody is the schema descriptor for response_body field.
	oraclerequesteventDescResponseBody := oraclerequesteventFields[9].Descriptor()
	// oraclerequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	oraclerequestevent.DefaultResponseBody = oraclerequesteventDescResponseBody.Default.(string)
	savedsessionFields := schema.SavedSession{}.Fields()
	_ = savedsessionFields
	// savedsessionDescLastModified is the schema descriptor for last_modified field.
	savedsessionDescLastModified := savedsessionFields[3].Descriptor()
	// savedsession.DefaultLastModified holds the default value on creation for the last_modified field.
	savedsession.DefaultLastModified = savedsessionDescLastModified.Default.(func() time.Time)
	// savedsessionDescProgressPercent is the schema descriptor for progress_percent field.
	savedsessionDescProgressPercent := savedsessionFields[4].Descriptor()
	// savedsession.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	savedsession.DefaultProgressPercent = savedsessionDescProgressPercent.Default.(float64)
}
