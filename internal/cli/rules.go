package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/constraints/pkg/validator"
)

func newRulesCommand() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules a schema registers",
		Long: `Rules prints the rules of every target in the schema, or of --target only,
in registration order. With --groups only the rules selected for those groups
are listed.`,
		Example: `  constraints rules -s rules.yaml
  constraints rules -s rules.yaml -t User -g create -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, target)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "only list rules of this target")
	return cmd
}

func runRules(cmd *cobra.Command, target string) error {
	ctx := cmd.Context()
	a := appFrom(ctx)

	reg, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}

	targets := reg.Targets()
	if target != "" {
		if !reg.Has(target) {
			return fmt.Errorf("%w: %q", validator.ErrUnknownTarget, target)
		}
		targets = []string{target}
	}

	groups := a.cfg.ActiveGroups()
	var list ruleList
	for _, t := range targets {
		for _, d := range reg.RulesFor(t, groups...) {
			list = append(list, newRuleView(d))
		}
	}
	return render(cmd.OutOrStdout(), a.cfg.Output, list)
}
