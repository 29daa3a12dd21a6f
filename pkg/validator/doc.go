// Package validator turns number-format checks into declarative rules with
// translation-friendly error metadata.
//
// A Rule pairs a Check function with the ValidationError reported when it
// fails. Apply evaluates rules and aggregates failures into ValidationErrors,
// which implements error, so several field problems bubble up in one return.
//
// # Usage
//
//	amount := numformat.MustNew(17, 2)
//	qty := numformat.MustNew(10, 0, numformat.OnlyPositive())
//
//	err := validator.Apply(
//	    validator.NumberFormat("amount", form.Amount, amount),
//	    validator.OptionalNumberFormat("discount", form.Discount, amount),
//	    validator.NumberFormat("quantity", form.Quantity, qty),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("amount"), verrs.Fields(), TranslationKey ...
//	}
//
// NumberPrecision, NumberScale and NonNegativeNumber check one limit each and
// pass on malformed input, for forms that report every exceeded limit
// separately next to a NumberFormat rule.
//
// Translation keys: validation.number_format, validation.number_precision,
// validation.number_scale and validation.number_non_negative. Each carries the
// field, format, precision and scale values.
//
// Rules hold no shared state and are goroutine-safe.
package validator
