// Package catalog defines the LLM model deployments requestable through the portal
package catalog

import (
	"sort"
)

// Model represents a requestable LLM deployment
type Model struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// defaultModels contains the deployments currently open for access requests.
// IDs must match the gateway's deployment names.
var defaultModels = []Model{
	{
		ID:          "gpt35turbo-dev",
		Description: "GPT-3.5 Turbo (development deployment)",
		Default:     true,
	},
	{
		ID:          "gpt-4o",
		Description: "GPT-4o (general availability)",
	},
	{
		ID:          "gpt-4o-mini",
		Description: "GPT-4o mini (general availability)",
	},
}

// Registry holds the requestable model definitions
type Registry struct {
	models map[string]*Model
}

// NewRegistry creates a registry with the default model catalog
func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]*Model),
	}
	for i := range defaultModels {
		r.models[defaultModels[i].ID] = &defaultModels[i]
	}
	return r
}

// Get returns a model by deployment ID
func (r *Registry) Get(id string) (*Model, bool) {
	m, ok := r.models[id]
	return m, ok
}

// Has reports whether the deployment ID is requestable
func (r *Registry) Has(id string) bool {
	_, ok := r.models[id]
	return ok
}

// All returns all requestable models
func (r *Registry) All() []*Model {
	result := make([]*Model, 0, len(r.models))
	for _, m := range r.models {
		result = append(result, m)
	}
	// Sort by ID for consistent ordering
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// IDs returns all requestable deployment IDs
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default returns the model preselected on the request form, falling back
// to the first model when none is marked default.
func (r *Registry) Default() *Model {
	for _, m := range r.All() {
		if m.Default {
			return m
		}
	}
	all := r.All()
	if len(all) == 0 {
		return nil
	}
	return all[0]
}
