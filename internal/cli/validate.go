package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/constraints/pkg/logger"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

func newValidateCommand() *cobra.Command {
	var (
		target   string
		sanitize bool
	)

	cmd := &cobra.Command{
		Use:   "validate [DOC|-]",
		Short: "Validate a document against a schema target",
		Long: `Validate reads a JSON or YAML object and checks it against the rules the
schema registers for --target. The document is read from stdin when DOC is
omitted or "-".

With --sanitize the target's sanitizer rules rewrite string values first;
the sanitized document is included in JSON output. Sanitizers follow the
same group selection as constraints: with --groups set, ungrouped sanitizers
are skipped unless they are marked always.

Exit status is 0 for a valid document, 1 when violations were found and 2
for any other error.`,
		Example: `  # Validate a file for the create group
  constraints validate -s rules.yaml -t User -g create user.json

  # Sanitize and validate stdin, printing JSON
  cat user.yaml | constraints validate -s rules.yaml -t User --sanitize -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, target, path, sanitize)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "validation target (required)")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "apply sanitizer rules before validating")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runValidate(cmd *cobra.Command, target, path string, sanitize bool) error {
	ctx := cmd.Context()
	a := appFrom(ctx)

	reg, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}

	doc, err := readDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := []validator.Option{validator.WithLogger(a.log)}
	if a.cfg.Strict {
		opts = append(opts, validator.WithStrictTargets())
	}
	v := validator.New(reg, opts...)
	groups := a.cfg.ActiveGroups()

	if sanitize {
		if err := v.Sanitize(target, doc, groups...); err != nil {
			return err
		}
	}

	err = v.Validate(target, doc, groups...)
	if err != nil && !validator.IsValidationError(err) {
		return err
	}
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		verrs = validator.ValidationErrors{}
	}

	report := validationReport{
		Target:     target,
		Groups:     groups,
		Valid:      len(verrs) == 0,
		Violations: verrs,
	}
	if sanitize {
		report.Document = doc
	}
	if err := render(cmd.OutOrStdout(), a.cfg.Output, report); err != nil {
		return err
	}

	if !report.Valid {
		a.log.InfoContext(ctx, "document rejected",
			logger.Target(target),
			logger.Groups(groups),
			logger.Violations(len(verrs)),
		)
		return ErrViolations
	}
	return nil
}
