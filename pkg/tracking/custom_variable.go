package tracking

import "github.com/dmitrymomot/gatrack/pkg/validator"

// MaxCustomVariables is the number of custom variable slots.
const MaxCustomVariables = 5

// Scope of a custom variable.
type Scope int

const (
	ScopeVisitor Scope = 1
	ScopeSession Scope = 2
	ScopePage    Scope = 3
)

// CustomVariable is a named value stored in one of the custom variable slots.
type CustomVariable struct {
	Index int
	Name  string
	Value string
	Scope Scope
}

// NewCustomVariable returns a page-scoped custom variable.
func NewCustomVariable(index int, name, value string) CustomVariable {
	return CustomVariable{
		Index: index,
		Name:  name,
		Value: value,
		Scope: ScopePage,
	}
}

// Validate checks the slot index, the scope and that name and value are set.
func (c CustomVariable) Validate() error {
	return validator.Apply(
		validator.RangeNum("index", c.Index, 1, MaxCustomVariables),
		validator.RequiredString("name", c.Name),
		validator.RequiredString("value", c.Value),
		validator.InList("scope", c.Scope, []Scope{ScopeVisitor, ScopeSession, ScopePage}),
	)
}
