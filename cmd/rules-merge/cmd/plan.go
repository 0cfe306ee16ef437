// file: cmd/rules-merge/cmd/plan.go
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"rules-merge/internal/merge"
)

func newPlanCmd() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan [flags] <file>...",
		Short: "Show how fragments would be grouped without writing output",
		Long: `The plan command resolves every fragment, reads its header and prints the
resulting sections in output order, together with the path each fragment
resolved to. Nothing is merged. Useful for finding out why a fragment ended up
in an unexpected section.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPlan,
	}
	planCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml")
	return planCmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	s, err := newSession(cmd, afero.NewOsFs())
	if err != nil {
		return err
	}
	defer s.close()

	candidates := merge.Candidates(args, s.cfg.Merge.SrcDir, s.cfg.Merge.BuildDir)
	sections, err := merge.NewMerger(s.fs, s.log, nil).Plan(candidates)
	if err != nil {
		return err
	}

	return merge.RenderPlan(cmd.OutOrStdout(), sections, s.cfg.Plan.Format)
}
