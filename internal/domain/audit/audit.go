// Package audit defines the mutation audit trail contract.
package audit

import "context"

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Recorder records audit entries for entity mutations.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// Record persists one audit entry. Changes may be nil (deletes).
	Record(ctx context.Context, entityType string, entityID int64, action Action, changes any) error
}
