package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels attached to requests for event logging.
const (
	PurposeAvatarReply   = "avatar-reply"
	PurposeBranchResolve = "branch-resolve"
	PurposeFactCheck     = "fact-check"
)

// WithPurpose attaches a purpose label to the context for event
// logging, e.g. "avatar-reply", "branch-resolve", "fact-check".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
