// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command risc16 grades and runs RISC-16 assembly programs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/risc16/config"
	"github.com/ezrec/risc16/emulator"
	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/harness"
)

var (
	// Global flags
	configPath   string
	exercisesDir string
	verbose      bool
	jsonOutput   bool

	// Loaded by the root command.
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "risc16",
	Short: "Grade RISC-16 assembly programs against exercises",
	Long: `risc16 assembles and runs RISC-16 programs.

An exercise is a text file of input register vectors, expected output
registers and report message templates. Grading runs the program once per
input vector and reports which runs produced the expected registers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("exercises") {
			cfg.Exercises = exercisesDir
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "risc16.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&exercisesDir, "exercises", "", "exercise directory (default: built-in exercises)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "write results as JSON")

	gradeCmd.Flags().StringVarP(&gradeExercise, "exercise", "e", "", "exercise to grade against")
	_ = gradeCmd.MarkFlagRequired("exercise")

	for _, cmd := range []*cobra.Command{gradeCmd, runCmd} {
		cmd.Flags().IntVar(&maxInstr, "max-instr", 0, "instruction budget of each run")
		cmd.Flags().StringVar(&arch, "arch", "", "instruction set architecture")
		cmd.Flags().BoolVar(&trace, "trace", false, "trace executed instructions")
	}
	runCmd.Flags().StringArrayVar(&registers, "reg", nil, "initial register, as rN=value")

	rootCmd.AddCommand(listCmd, gradeCmd, runCmd, listingCmd)
}

// newHarness creates a grading harness from the loaded configuration.
func newHarness() *harness.Harness {
	emu := emulator.NewEmulator()
	emu.Parallelism = cfg.Parallelism
	emu.Verbose = verbose

	return harness.New(exercise.NewLoader(cfg.Store()), emu, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
