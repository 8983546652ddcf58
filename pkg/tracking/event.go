package tracking

import "github.com/dmitrymomot/gatrack/pkg/validator"

// Event is a user interaction tracked independently of pageviews.
type Event struct {
	Category string
	Action   string
	Label    string
	Value    int

	// NonInteraction events do not affect the bounce rate.
	NonInteraction bool
}

// Validate requires a category and an action.
func (e Event) Validate() error {
	return validator.Apply(
		validator.RequiredString("category", e.Category),
		validator.RequiredString("action", e.Action),
	)
}

// SocialInteraction is a social network action such as a like or a share.
type SocialInteraction struct {
	Network string
	Action  string
	Target  string
}

// Validate requires a network and an action.
func (s SocialInteraction) Validate() error {
	return validator.Apply(
		validator.RequiredString("network", s.Network),
		validator.RequiredString("action", s.Action),
	)
}
