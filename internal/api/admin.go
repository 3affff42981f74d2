package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// AccessRequest is a pending request record as stored by the gateway.
// The gateway emits Go-style exported keys for these fields.
type AccessRequest struct {
	ID               string    `json:"id"`
	RequesterContact string    `json:"RequesterEmailOrEmployeeID"`
	RequesterName    string    `json:"RequesterName"`
	ModelID          string    `json:"RequestedModelID"`
	Purpose          string    `json:"Purpose"`
	Teammates        []string  `json:"TeammateEmailsOrEmployeeIDs"`
	SubmittedAt      time.Time `json:"SubmissionDate"`
	Status           string    `json:"Status"`
}

type decisionRequest struct {
	RequesterContact string `json:"requester_contact_email_or_employee_id"`
}

// PendingRequests lists access requests awaiting an admin decision, in the
// order the gateway returns them.
func (c *Client) PendingRequests(ctx context.Context) ([]AccessRequest, error) {
	var requests []AccessRequest
	if err := c.doAuthenticated(ctx, http.MethodGet, "/admin/requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest grants the identified access request. The requester contact
// travels in the body so the gateway can notify the requester.
func (c *Client) ApproveRequest(ctx context.Context, requestID, requesterContact string) (*MessageResponse, error) {
	return c.decide(ctx, requestID, "approve", requesterContact)
}

// RejectRequest denies the identified access request.
func (c *Client) RejectRequest(ctx context.Context, requestID, requesterContact string) (*MessageResponse, error) {
	return c.decide(ctx, requestID, "reject", requesterContact)
}

func (c *Client) decide(ctx context.Context, requestID, verb, requesterContact string) (*MessageResponse, error) {
	path := "/admin/requests/" + url.PathEscape(requestID) + "/" + verb

	var resp MessageResponse
	err := c.doAuthenticated(ctx, http.MethodPost, path, decisionRequest{RequesterContact: requesterContact}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
