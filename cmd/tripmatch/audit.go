package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

var auditCmd = &cobra.Command{
	Use:   "audit <archive.zip>",
	Short: "Match session endpoints against trip intervals",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	arch, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	groups := interval.Audit(arch.Sessions.Periods, arch.Trips.Periods)
	flat := export.AuditGroups(groups)

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	defer closeOut()

	if flagFormat == "xlsx" {
		err = export.WriteWorkbook(w, []export.Sheet{export.AuditSheet("audit", flat)})
	} else {
		err = export.WriteAuditCSV(w, flat)
	}
	if err != nil {
		return err
	}

	suspect := 0
	for _, g := range flat {
		if g.Suspect {
			suspect++
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d groups, %d suspect\n", len(flat), suspect)
	return nil
}
