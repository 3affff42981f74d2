package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// MaxTeammates is the upper bound on teammate contacts per access request.
const MaxTeammates = 10

// AccessRequestDraft is the public LLM access request form payload.
type AccessRequestDraft struct {
	RequesterContact string   `json:"requester_email_or_employee_id"`
	RequesterName    string   `json:"requester_name"`
	ModelID          string   `json:"requested_model_id"`
	Purpose          string   `json:"purpose"`
	Teammates        []string `json:"teammate_emails_or_employee_ids"`
}

type submitResponse struct {
	RequestID string `json:"request_id"`
}

// SubmitAccessRequest files an unauthenticated LLM access request and returns
// the gateway-assigned request id. Blank teammate contacts are stripped
// before transmission; more than MaxTeammates non-blank contacts is rejected
// without a network call.
func (c *Client) SubmitAccessRequest(ctx context.Context, draft AccessRequestDraft) (string, error) {
	if strings.TrimSpace(draft.RequesterContact) == "" {
		return "", fmt.Errorf("requester email or employee ID is required")
	}
	if strings.TrimSpace(draft.ModelID) == "" {
		return "", fmt.Errorf("requested model ID is required")
	}
	if strings.TrimSpace(draft.Purpose) == "" {
		return "", fmt.Errorf("purpose is required")
	}

	teammates := make([]string, 0, len(draft.Teammates))
	for _, contact := range draft.Teammates {
		if strings.TrimSpace(contact) != "" {
			teammates = append(teammates, contact)
		}
	}
	if len(teammates) > MaxTeammates {
		return "", fmt.Errorf("maximum %d teammates allowed, got %d", MaxTeammates, len(teammates))
	}
	draft.Teammates = teammates

	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/public/llm-request", draft, &resp); err != nil {
		return "", err
	}
	return resp.RequestID, nil
}
