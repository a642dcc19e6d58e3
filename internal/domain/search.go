package domain

import (
	"time"
)

// SourceKind identifies the content store a search result came from
type SourceKind string

const (
	SourceKindTour     SourceKind = "tour"
	SourceKindBlogPost SourceKind = "blogPost"
	SourceKindProject  SourceKind = "project"
)

// SourceKinds lists every searchable content type in registration order
var SourceKinds = []SourceKind{SourceKindTour, SourceKindBlogPost, SourceKindProject}

// SearchResult is one hit of the federated search.
// ID is only unique within SourceKind.
type SearchResult struct {
	ID         uint64     `json:"id"`
	Title      string     `json:"title"`
	Snippet    string     `json:"snippet"`
	ImageURL   *string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	SourceKind SourceKind `json:"sourceKind"`
	Category   *string    `json:"category,omitempty"`
}

// SourceStatus is the tag of a source outcome
type SourceStatus string

const (
	SourceStatusOK       SourceStatus = "ok"
	SourceStatusTimedOut SourceStatus = "timed_out"
	SourceStatusFailed   SourceStatus = "failed"
)

// SourceOutcome is what one source contributed to a search:
// Ok(results) | TimedOut | Failed(err)
type SourceOutcome struct {
	Kind     SourceKind
	Status   SourceStatus
	Results  []SearchResult
	Err      error
	Duration time.Duration
}

// Degraded reports whether the source contributed nothing because it failed
func (o SourceOutcome) Degraded() bool {
	return o.Status != SourceStatusOK
}

// RankedResultSet is the merged, ranked and truncated search output
type RankedResultSet struct {
	Results  []SearchResult
	Outcomes []SourceOutcome
}

// DegradedKinds returns the kinds of every degraded source, in registration order
func (s *RankedResultSet) DegradedKinds() []SourceKind {
	var kinds []SourceKind
	for _, o := range s.Outcomes {
		if o.Degraded() {
			kinds = append(kinds, o.Kind)
		}
	}
	return kinds
}
