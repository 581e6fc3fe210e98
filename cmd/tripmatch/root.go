package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
)

var (
	flagTimezone string
	flagBirdeye  float64
	flagRepair   bool
	flagOut      string
	flagFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "tripmatch",
	Short: "Reconcile driver connectivity sessions against trips",
	Long: `tripmatch reads a driver data-subject-access zip archive and
reconciles the connectivity sessions against the trip records into one
consistent timeline, or audits the two sources against each other.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "timezone", "UTC", "timezone for output timestamps")
	rootCmd.PersistentFlags().Float64Var(&flagBirdeye, "birdeye-coefficient", 0, "birdeye distance coefficient (0 = default)")
	rootCmd.PersistentFlags().BoolVar(&flagRepair, "repair-timestamps", false, "repair null session ends and trip pickups/dropoffs from the next row")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout, required for xlsx)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "csv", "output format: csv or xlsx")
}

func ingestOptions() (ingest.Options, error) {
	opts := ingest.DefaultOptions()
	loc, err := time.LoadLocation(flagTimezone)
	if err != nil {
		return opts, fmt.Errorf("invalid timezone %q: %w", flagTimezone, err)
	}
	opts.Timezone = loc
	if flagBirdeye > 0 {
		opts.BirdeyeCoefficient = flagBirdeye
	}
	opts.RepairTimestamps = flagRepair
	return opts, nil
}

func loadArchive(path string) (*ingest.Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	opts, err := ingestOptions()
	if err != nil {
		return nil, err
	}
	return ingest.LoadArchiveReader(f, info.Size(), opts)
}

// output returns the destination writer and a close func.
func output() (*os.File, func() error, error) {
	if flagOut == "" {
		if flagFormat == "xlsx" {
			return nil, nil, fmt.Errorf("--out is required for xlsx output")
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
