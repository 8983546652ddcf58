package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatrack/pkg/tracking"
	"github.com/dmitrymomot/gatrack/pkg/validator"
)

func invalidFields(t *testing.T, err error) []string {
	t.Helper()

	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs, "expected validation errors, got %v", err)
	return verrs.Fields()
}

func TestEventValidate(t *testing.T) {
	t.Parallel()

	err := tracking.Event{}.Validate()
	require.ErrorIs(t, err, tracking.ErrValidation)
	assert.Equal(t, []string{"category", "action"}, invalidFields(t, err))

	err = tracking.Event{Category: "video", Action: "  "}.Validate()
	assert.Equal(t, []string{"action"}, invalidFields(t, err))

	assert.NoError(t, tracking.Event{Category: "video", Action: "play", Value: 3}.Validate())
}

func TestSocialInteractionValidate(t *testing.T) {
	t.Parallel()

	err := tracking.SocialInteraction{Target: "/post/1"}.Validate()
	require.ErrorIs(t, err, tracking.ErrValidation)
	assert.Equal(t, []string{"network", "action"}, invalidFields(t, err))

	assert.NoError(t, tracking.SocialInteraction{Network: "mastodon", Action: "boost"}.Validate())
}

func TestCustomVariableValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cv     tracking.CustomVariable
		fields []string
	}{
		{
			name: "valid page scope",
			cv:   tracking.NewCustomVariable(1, "plan", "pro"),
		},
		{
			name: "valid visitor scope",
			cv:   tracking.CustomVariable{Index: 5, Name: "segment", Value: "b2b", Scope: tracking.ScopeVisitor},
		},
		{
			name:   "index too low",
			cv:     tracking.NewCustomVariable(0, "plan", "pro"),
			fields: []string{"index"},
		},
		{
			name:   "index too high",
			cv:     tracking.NewCustomVariable(6, "plan", "pro"),
			fields: []string{"index"},
		},
		{
			name:   "missing name and value",
			cv:     tracking.NewCustomVariable(2, "", ""),
			fields: []string{"name", "value"},
		},
		{
			name:   "unset scope",
			cv:     tracking.CustomVariable{Index: 1, Name: "a", Value: "b"},
			fields: []string{"scope"},
		},
		{
			name:   "unknown scope",
			cv:     tracking.CustomVariable{Index: 3, Name: "a", Value: "b", Scope: tracking.Scope(4)},
			fields: []string{"scope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cv.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tracking.ErrValidation)
			assert.Equal(t, tt.fields, invalidFields(t, err))
		})
	}

	assert.Equal(t, tracking.ScopePage, tracking.NewCustomVariable(1, "a", "b").Scope)
}
