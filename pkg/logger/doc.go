// Package logger builds *slog.Logger instances for the constraints tooling
// and provides attribute helpers that keep key names consistent between the
// validator, the schema loader and the command line.
//
// New creates a logger configured by Option functions:
//
//   - WithFormat / WithLevel choose the handler and minimum level.
//   - WithEnvironment applies development, staging or production defaults.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue add attributes read from the
//     record's context.Context.
//
// ParseLevel and ParseFormat convert configuration strings into the values
// the options accept.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "constraints"),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "validated",
//	    logger.Target("User"),
//	    logger.Violations(len(errs)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
