package ay32

import (
	"context"
	"net/http"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// Invite task status values.
const (
	InviteTaskStatusPending = 0
	InviteTaskStatusRunning = 1
	InviteTaskStatusDone    = 2
)

// InviteTask is one queued invite job.
type InviteTask struct {
	ID        int64     `json:"id"`
	Account   string    `json:"account"`
	Status    int       `json:"status"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// InviteTaskPage is one page of invite tasks.
type InviteTaskPage struct {
	List       []InviteTask `json:"list"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// PrioritizeInviteTaskParams are the parameters for
// PrioritizeInviteTask. Higher priority runs sooner.
type PrioritizeInviteTaskParams struct {
	TaskID   int64 `json:"task_id" validate:"gt=0"`
	Priority int   `json:"priority" validate:"min=0,max=100"`
}

// PrioritizeInviteTask moves an invite task up or down the queue.
func (c *Client) PrioritizeInviteTask(ctx context.Context, params PrioritizeInviteTaskParams) error {
	if err := validate.Struct(params); err != nil {
		return wrapError(err)
	}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/inviteTask/priority", params, nil))
}

// QueryInviteTasksParams are the parameters for QueryInviteTasks.
type QueryInviteTasksParams struct {
	Account  string `json:"account,omitempty" validate:"omitempty,max=64"`
	Status   *int   `json:"status,omitempty" validate:"omitempty,oneof=0 1 2"`
	Page     int    `json:"page" validate:"min=1"`
	PageSize int    `json:"pageSize" validate:"min=1,max=100"`
}

// QueryInviteTasks returns one page of invite tasks, optionally
// filtered by account and status.
func (c *Client) QueryInviteTasks(ctx context.Context, params QueryInviteTasksParams) (*InviteTaskPage, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out InviteTaskPage
	if err := c.api.Do(ctx, http.MethodPost, "/api/inviteTask/query", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}
