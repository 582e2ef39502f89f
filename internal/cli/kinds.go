package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/constraints/pkg/validator"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the rule kinds a schema can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list kindList
			for _, k := range validator.Kinds() {
				list = append(list, kindView{Kind: k, Sanitizer: k.IsSanitizer()})
			}
			return render(cmd.OutOrStdout(), appFrom(cmd.Context()).cfg.Output, list)
		},
	}
}
