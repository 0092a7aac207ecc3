// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/casetalk/casetalk/ent/attemptrecord"
	"github.com/casetalk/casetalk/ent/casedoc"
	"github.com/casetalk/casetalk/ent/llmrequestevent"
	"github.com/casetalk/casetalk/ent/messageevent"
	"github.com/casetalk/casetalk/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptrecordFields := schema.AttemptRecord{}.Fields()
	_ = attemptrecordFields
	// attemptrecordDescTotalMessages is the schema descriptor for total_messages field.
	attemptrecordDescTotalMessages := attemptrecordFields[5].Descriptor()
	// attemptrecord.DefaultTotalMessages holds the default value on creation for the total_messages field.
	attemptrecord.DefaultTotalMessages = attemptrecordDescTotalMessages.Default.(int)
	// attemptrecordDescTotalTimeSeconds is the schema descriptor for total_time_seconds field.
	attemptrecordDescTotalTimeSeconds := attemptrecordFields[6].Descriptor()
	// attemptrecord.DefaultTotalTimeSeconds holds the default value on creation for the total_time_seconds field.
	attemptrecord.DefaultTotalTimeSeconds = attemptrecordDescTotalTimeSeconds.Default.(int)
	// attemptrecordDescIsPassing is the schema descriptor for is_passing field.
	attemptrecordDescIsPassing := attemptrecordFields[10].Descriptor()
	// attemptrecord.DefaultIsPassing holds the default value on creation for the is_passing field.
	attemptrecord.DefaultIsPassing = attemptrecordDescIsPassing.Default.(bool)
	// attemptrecordDescAbandoned is the schema descriptor for abandoned field.
	attemptrecordDescAbandoned := attemptrecordFields[11].Descriptor()
	// attemptrecord.DefaultAbandoned holds the default value on creation for the abandoned field.
	attemptrecord.DefaultAbandoned = attemptrecordDescAbandoned.Default.(bool)
	casedocFields := schema.CaseDoc{}.Fields()
	_ = casedocFields
	// casedocDescUpdatedAt is the schema descriptor for updated_at field.
	casedocDescUpdatedAt := casedocFields[5].Descriptor()
	// casedoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	casedoc.DefaultUpdatedAt = casedocDescUpdatedAt.Default.(func() time.Time)
	// casedoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	casedoc.UpdateDefaultUpdatedAt = casedocDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	messageeventMixin := schema.MessageEvent{}.Mixin()
	messageeventMixinFields0 := messageeventMixin[0].Fields()
	_ = messageeventMixinFields0
	messageeventFields := schema.MessageEvent{}.Fields()
	_ = messageeventFields
	// messageeventDescTimestamp is the schema descriptor for timestamp field.
	messageeventDescTimestamp := messageeventMixinFields0[1].Descriptor()
	// messageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	messageevent.DefaultTimestamp = messageeventDescTimestamp.Default.(func() time.Time)
	// messageeventDescAttemptID is the schema descriptor for attempt_id field.
	messageeventDescAttemptID := messageeventFields[1].Descriptor()
	// messageevent.DefaultAttemptID holds the default value on creation for the attempt_id field.
	messageevent.DefaultAttemptID = messageeventDescAttemptID.Default.(string)
	// messageeventDescNodeID is the schema descriptor for node_id field.
	messageeventDescNodeID := messageeventFields[4].Descriptor()
	// messageevent.DefaultNodeID holds the default value on creation for the node_id field.
	messageevent.DefaultNodeID = messageeventDescNodeID.Default.(string)
}
