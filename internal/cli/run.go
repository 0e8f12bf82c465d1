package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticketwise/backend/internal/dataset"
	"github.com/ticketwise/backend/internal/models"
	"github.com/ticketwise/backend/internal/service"
)

var (
	runDatasetFile string
	runOutputFile  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assign one batch of tickets and write the results file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if runDatasetFile == "" {
			runDatasetFile = cfg.DatasetFile
		}
		if runOutputFile == "" {
			runOutputFile = cfg.OutputFile
		}

		assignCfg := cfg.Assignment()
		if err := assignCfg.Validate(); err != nil {
			return err
		}

		ds, warnings, err := dataset.Load(runDatasetFile)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			logger.Warn().Str("record", w).Msg("dataset validation")
		}
		logger.Info().
			Int("agents", len(ds.Agents)).
			Int("tickets", len(ds.Tickets)).
			Str("file", runDatasetFile).
			Msg("dataset loaded")

		engine := &service.Engine{Config: assignCfg, Logger: logger}
		started := time.Now().UTC()
		records, summary, err := engine.Run(ds.Agents, ds.Tickets)
		if err != nil {
			return err
		}

		out := dataset.Output{Assignments: records, Summary: summary}
		if err := dataset.WriteResults(runOutputFile, out); err != nil {
			return err
		}

		logger.Info().
			Interface("counts", summary.Counts).
			Dur("elapsed", time.Since(started)).
			Str("file", runOutputFile).
			Msg("assignment complete")
		printWorkload(cmd, ds.Agents, records)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runDatasetFile, "dataset", "i", "", "dataset JSON file (default from config)")
	runCmd.Flags().StringVarP(&runOutputFile, "output", "o", "", "results JSON file (default from config)")
}

// printWorkload reports how the batch was spread over the agent pool.
func printWorkload(cmd *cobra.Command, agents []models.Agent, records []models.AssignmentRecord) {
	newByAgent := map[string]int{}
	for _, rec := range records {
		if rec.AssignedAgentID != nil {
			newByAgent[*rec.AssignedAgentID]++
		}
	}
	cmd.Println("Agent workload:")
	for _, a := range agents {
		fresh := newByAgent[a.ID]
		cmd.Println(fmt.Sprintf("  %s (%s): %d new, %d total", a.Name, a.ID, fresh, a.CurrentLoad))
	}
}
