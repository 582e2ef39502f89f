// Package schema loads declarative rule definitions from JSON or YAML files
// and registers them on a validator.Builder.
//
// A schema lists targets, their properties and the rules of each property.
// Lists are used throughout so the file order becomes the registration
// order:
//
//	targets:
//	  - name: User
//	    properties:
//	      - name: email
//	        rules:
//	          - kind: trim
//	          - kind: is_email
//	            options: {allow_display_name: true}
//	            groups: [create]
//	      - name: name
//	        rules:
//	          - kind: is_length
//	            params: [2, 64]
//	            message: "%{field} is too short or too long"
//
// Each rule names a validator kind. Params are positional and follow the
// registration function of that kind, for example [min, max] for is_length
// or [pattern, modifiers] for matches. Kinds configured by an options struct
// (is_email, is_url, is_int and others) take an options map whose snake_case
// keys are decoded with github.com/go-viper/mapstructure/v2.
//
// Usage:
//
//	doc, err := schema.LoadFile(ctx, "rules.yaml")
//	if err != nil {
//		return err
//	}
//	reg, err := doc.Build()
//	if err != nil {
//		return err // every broken rule, with its User.email[1] path
//	}
//	v := validator.New(reg)
package schema
