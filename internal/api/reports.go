package api

import (
	"context"
	"net/http"
	"time"
)

// UsageSummary is a principal's aggregated token usage and cost, with a
// sample of recent usage logs. All aggregation happens gateway-side.
type UsageSummary struct {
	TotalInputTokens  int64      `json:"total_input_tokens"`
	TotalOutputTokens int64      `json:"total_output_tokens"`
	TotalTokens       int64      `json:"total_tokens"`
	TotalCostUSD      float64    `json:"total_cost_usd"`
	RecentLogs        []UsageLog `json:"usage_logs_sample"`
}

// UsageLog is a single LLM call record.
type UsageLog struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"Timestamp"`
	ModelID          string    `json:"ModelID"`
	PromptTokens     int64     `json:"PromptTokens"`
	CompletionTokens int64     `json:"CompletionTokens"`
	CostUSD          float64   `json:"EstimatedCostUSD"`
	LatencyMs        int64     `json:"LatencyMs"`
}

// OverallUsage is the system-wide usage aggregate.
type OverallUsage struct {
	TotalCalls            int64   `json:"TotalCalls"`
	TotalInputTokens      int64   `json:"TotalInputTokens"`
	TotalOutputTokens     int64   `json:"TotalOutputTokens"`
	TotalEstimatedCostUSD float64 `json:"TotalEstimatedCostUSD"`
}

// BackchargeEntry is one principal's row in the internal billing report.
type BackchargeEntry struct {
	PrincipalID           string  `json:"CallingPrincipalID"`
	Username              string  `json:"username"`
	Email                 string  `json:"email"`
	Name                  string  `json:"name"`
	TotalTokens           int64   `json:"TotalTokens"`
	TotalEstimatedCostUSD float64 `json:"TotalEstimatedCostUSD"`
	TotalCalls            int64   `json:"TotalCalls"`
}

// MyUsage returns the calling user's own usage summary.
func (c *Client) MyUsage(ctx context.Context) (*UsageSummary, error) {
	var summary UsageSummary
	if err := c.doAuthenticated(ctx, http.MethodGet, "/auth/me/usage", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// OverallUsageReport returns the system-wide usage aggregate (admin only).
func (c *Client) OverallUsageReport(ctx context.Context) (*OverallUsage, error) {
	var usage OverallUsage
	if err := c.doAuthenticated(ctx, http.MethodGet, "/admin/reports/overall-usage", nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// BackchargeReport returns per-principal usage/cost rows (admin only), in
// the order the gateway returns them.
func (c *Client) BackchargeReport(ctx context.Context) ([]BackchargeEntry, error) {
	var entries []BackchargeEntry
	if err := c.doAuthenticated(ctx, http.MethodGet, "/admin/reports/backcharge", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
