package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
	"github.com/pdatalab/tripmatch-backend-go/internal/stats"
)

var (
	flagPriority   string
	flagP0Priority bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <archive.zip>",
	Short: "Reconcile sessions and trips into one timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().StringVar(&flagPriority, "priority", "", "comma-separated status labels, highest first (default P3,P2,P1,P0)")
	reconcileCmd.Flags().BoolVar(&flagP0Priority, "p0-priority", false, "let the sessions' offline intervals override every other status")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	arch, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	var prio []interval.Status
	if flagPriority != "" {
		for _, label := range strings.Split(flagPriority, ",") {
			status, err := interval.ParseStatus(strings.TrimSpace(label))
			if err != nil {
				return err
			}
			prio = append(prio, status)
		}
	}

	trips, _ := interval.BuildPartition(arch.Trips.Periods)
	sessions, _ := interval.BuildPartition(arch.Sessions.Periods)
	part := interval.Reconcile(trips, sessions, interval.ReconcileOptions{
		Priority:   prio,
		P0Priority: flagP0Priority,
	})
	rows := export.TimelineRows(part)

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	defer closeOut()

	if flagFormat == "xlsx" {
		err = export.WriteWorkbook(w, []export.Sheet{export.TimelineSheet("timeline", rows)})
	} else {
		err = export.WriteTimelineCSV(w, rows)
	}
	if err != nil {
		return err
	}

	totals := stats.TotalsByLabel(part)
	for _, label := range sortedKeys(totals) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %.2fh\n", label, totals[label])
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
