package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sajukit/internal/rules"
)

// auditCmd checks the symbol tables with the Datalog audit
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the symbol tables for structural violations",
	Long: `Renders the symbol tables as Datalog facts and evaluates the audit
rules over them: element/polarity totality, pairwise set disjointness,
triad membership, and ten-god coverage. Exits nonzero when any violation
is derived.`,
	RunE: runAudit,
}

func runAudit(cmd *cobra.Command, args []string) error {
	rep, err := rules.Audit()
	if err != nil {
		return fmt.Errorf("audit evaluation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if rep.Clean() {
		fmt.Fprintln(out, "audit clean: no violations derived")
		return nil
	}

	for _, v := range rep.Violations {
		fmt.Fprintln(out, v.String())
	}
	return fmt.Errorf("%d audit violation(s)", len(rep.Violations))
}
