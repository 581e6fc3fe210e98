package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

var fusionCmd = &cobra.Command{
	Use:   "fusion <archive.zip>",
	Short: "Join sessions and trips into the fusion table",
	Long: `fusion pairs every connectivity session with every trip interval it
overlaps and writes the pairs with both sides' columns, one row per
overlapping pair.`,
	Args: cobra.ExactArgs(1),
	RunE: runFusion,
}

func init() {
	rootCmd.AddCommand(fusionCmd)
}

func runFusion(cmd *cobra.Command, args []string) error {
	arch, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	pairs := interval.OverlapJoin(arch.Sessions.Periods, arch.Trips.Periods)
	rows := export.FusionRows(pairs)

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	defer closeOut()

	if flagFormat == "xlsx" {
		err = export.WriteWorkbook(w, []export.Sheet{export.FusionSheet("fusion", rows)})
	} else {
		err = export.WriteFusionCSV(w, rows)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d overlapping pairs\n", len(rows))
	return nil
}
