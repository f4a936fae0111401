// Package validator provides rule-based validation for request payloads.
//
// Each Rule pairs a check with the ValidationError it produces. Apply runs
// every rule and collects all failures, so a client sees every problem with
// its input at once rather than one per round trip.
//
//	err := validator.Apply(
//		validator.ValidEmail("email", req.Email),
//		validator.MinLenString("name", req.Name, 3),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Map() -> {"email": ["must be a valid email address"]}
//	}
package validator
