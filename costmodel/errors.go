package costmodel

import "errors"

// ErrNonFiniteCost indicates a Model implementation returned NaN, +Inf,
// -Inf, or a negative value where the algorithm requires a finite,
// non-negative cost. Per spec this is technically caller UB. When cost
// validation is enabled (apted.WithCostValidation), the engine checks
// every returned cost and surfaces this error instead of silently
// producing a wrong or NaN-poisoned distance; by default it does not
// check.
var ErrNonFiniteCost = errors.New("costmodel: cost must be finite and non-negative")
