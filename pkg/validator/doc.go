// Package validator provides a declarative rule registry and the engine that
// evaluates it.
//
// Rules are registered against (target, property) pairs with one
// registration function per rule kind (Contains, IsEmail, IsLength, ...).
// Every function accepts the kind's parameters plus a shared set of options:
// Message overrides the violation text, Groups limits the rule to validation
// passes that request one of the groups, and Always makes it run in every
// pass.
//
// # Architecture
//
// Construction and reading are separate phases. A Builder collects
// descriptors; Build checks them, normalizes their parameters and returns an
// immutable *Registry that can be shared between goroutines without locking.
//
// Core building blocks:
//   - Descriptor        – one registered rule: kind, target, property, params, groups
//   - Registry          – target → ordered descriptors, with group selection
//   - Evaluate          – dispatches a descriptor to its predicate through a kind table
//   - Validator         – walks a target's rules against a Source
//   - Source            – property access without reflection (Map, Fields[T])
//   - ValidationErrors  – ordered violations that implement the error interface
//
// Group selection: without requested groups only ungrouped descriptors run;
// with groups, descriptors whose groups intersect the request run. Descriptors
// marked Always run in both cases. Lookup results keep registration order.
//
// The predicates themselves live in package predicate and the string
// rewrites behind the sanitizer kinds in package sanitizer.
//
// # Usage
//
//	reg, err := validator.NewBuilder().
//	    Target("User").
//	    Property("name", validator.Contains("foo")).
//	    Property("email",
//	        validator.IsEmail(predicate.EmailOptions{}),
//	        validator.IsLength(3, 254, validator.Groups("create")),
//	    ).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	v := validator.New(reg, validator.WithLogger(log))
//	if err := v.Validate("User", validator.Map{"name": "foobar"}, "create"); err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Sanitization
//
// Sanitizer kinds (Trim, ToLower, NormalizeEmail, ...) are registered like
// constraints and selected by the same group logic. Validator.Sanitize applies
// them to a MutableSource in registration order; Validate skips them.
//
// # Error Handling
//
// Registration functions never fail. Problems such as an uncompilable Matches
// pattern are recorded on the rule and reported by Build joined together and
// wrapped in ErrInvalidRule, ErrUnknownKind or ErrInvalidDescriptor.
// Violations are data: Validate returns ValidationErrors, which carry a
// translation key ("validation.<kind>") and values for localization. Any
// other error returned by Validate is a configuration problem.
package validator
