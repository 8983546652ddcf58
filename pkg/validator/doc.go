// Package validator builds declarative validation rules and aggregates their
// failures into a single error.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply runs every rule and returns the failures as ValidationErrors,
// which implements error.
//
// # Usage
//
//	err := validator.Apply(
//		validator.RequiredString("category", e.Category),
//		validator.RangeNum("index", c.Index, 1, 5),
//		validator.RequiredSlice("items", items),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			// report field
//		}
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is. Each entry
// carries a translation key and values so messages can be localized.
package validator
