package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cryspack/optimise"
)

// optimiseFlags collects the annealing schedule options.
type optimiseFlags struct {
	steps       int
	innerSteps  int
	ktStart     float64
	ktFinish    float64
	ktRatio     float64
	maxStepSize float64
	convergence float64
	seed        int64
}

// builder resolves the flags into an annealer builder.
func (f *optimiseFlags) builder(cmd *cobra.Command) *optimise.Builder {
	b := optimise.NewBuilder().
		Steps(f.steps).
		InnerSteps(f.innerSteps).
		KtStart(f.ktStart).
		KtFinish(f.ktFinish).
		MaxStepSize(f.maxStepSize)

	if cmd.Flags().Changed("kt-ratio") {
		b = b.KtRatio(f.ktRatio)
	}
	if cmd.Flags().Changed("convergence") {
		b = b.Convergence(f.convergence)
	}
	if cmd.Flags().Changed("seed") {
		b = b.Seed(f.seed)
	}

	return b
}

// newOptimiseCommand builds the batch optimisation command: run many
// independent annealing replications and save the best structure.
func newOptimiseCommand(opts *Options) *cobra.Command {
	var (
		shapes       shapeFlags
		schedule     optimiseFlags
		group        string
		outfile      string
		replications int
		workers      int
		groupsFile   string
	)

	cmd := &cobra.Command{
		Use:   "optimise",
		Short: "Search for the best packing of a molecule under a wallpaper group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := opts.Logger

			wg, err := lookupGroup(group, groupsFile)
			if err != nil {
				return err
			}

			state, err := shapes.buildState(wg)
			if err != nil {
				return err
			}

			initial, err := state.Score()
			if err != nil {
				return err
			}
			logger.Info("optimisation starting",
				"group", wg.Name,
				"shape", shapes.shape,
				"force", shapes.force,
				"replications", replications,
				"initial_score", initial)

			best, err := optimise.RunBest(cmd.Context(), state, schedule.builder(cmd), replications, workers)
			if err != nil {
				return err
			}

			score, err := best.Score()
			if err != nil {
				return fmt.Errorf("cli: final state is corrupted: %w", err)
			}
			logger.Info("optimisation finished", "final_score", score)

			serialised, err := json.MarshalIndent(best, "", "  ")
			if err != nil {
				return err
			}
			if err = os.WriteFile(outfile+".json", serialised, 0o644); err != nil {
				return err
			}
			if err = os.WriteFile(outfile+".svg", []byte(best.AsSVG().String()), 0o644); err != nil {
				return err
			}
			logger.Info("best structure saved", "json", outfile+".json", "svg", outfile+".svg")

			return nil
		},
	}

	s := opts.Settings
	flags := cmd.Flags()
	shapes.register(flags)
	flags.StringVar(&group, "wallpaper", "p2", "The defining symmetry of the unit cell")
	flags.StringVar(&outfile, "outfile", s.Outfile, "Where to save the best packed structure (stem for .json and .svg)")
	flags.IntVar(&replications, "replications", s.Replications, "The number of independent starting configurations to optimise")
	flags.IntVar(&workers, "workers", s.Workers, "Worker pool size; 0 runs one worker per replication")
	flags.StringVar(&groupsFile, "groups-file", s.GroupsFile, "YAML file with additional wallpaper group definitions")
	flags.IntVar(&schedule.steps, "steps", s.Steps, "The number of Monte-Carlo steps to run")
	flags.IntVar(&schedule.innerSteps, "inner-steps", s.InnerSteps, "Steps between temperature and step size updates")
	flags.Float64Var(&schedule.ktStart, "kt-start", s.KtStart, "The initial annealing temperature")
	flags.Float64Var(&schedule.ktFinish, "kt-finish", s.KtFinish, "The final annealing temperature")
	flags.Float64Var(&schedule.ktRatio, "kt-ratio", 0, "Per-loop temperature reduction; overrides kt-finish")
	flags.Float64Var(&schedule.maxStepSize, "max-step-size", s.MaxStepSize, "The maximum size of a Monte-Carlo move")
	flags.Float64Var(&schedule.convergence, "convergence", 0, "Minimum per-loop score change before an early exit")
	flags.Int64Var(&schedule.seed, "seed", 0, "Fix the random stream for a reproducible ensemble")

	return cmd
}
