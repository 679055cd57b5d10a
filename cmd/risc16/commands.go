package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/risc16/harness"
	"github.com/ezrec/risc16/value"
)

var (
	gradeExercise string
	maxInstr      int
	arch          string
	trace         bool
	registers     []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Args:  cobra.NoArgs,
	RunE:  listExercises,
}

var gradeCmd = &cobra.Command{
	Use:   "grade --exercise NAME FILE",
	Short: "Grade a program against an exercise",
	Long: `Runs FILE once for every input vector of the exercise, and reports
each run. Use '-' to read the program from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: gradeProgram,
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program once, and show its end state",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgram,
}

var listingCmd = &cobra.Command{
	Use:   "listing FILE",
	Short: "Show the assembled listing of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  listProgram,
}

// readSource reads a program file, or standard input for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("%v: %w", path, err)
	}
	return string(data), nil
}

// newRequest builds a request from the configuration and the command flags.
func newRequest(cmd *cobra.Command, source string) harness.Request {
	opts := cfg.Options()

	flags := cmd.Flags()
	if flags.Changed("max-instr") {
		opts.MaxInstructions = maxInstr
	}
	if flags.Changed("arch") {
		opts.Architecture = arch
	}
	if flags.Changed("trace") {
		opts.Trace = trace
	}

	return harness.NewRequest(source, opts)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// responseErr returns the failure of a response.
func responseErr(resp *harness.Response) error {
	if len(resp.Error) == 0 {
		return nil
	}
	return errors.New(resp.Error)
}

func listExercises(cmd *cobra.Command, args []string) error {
	names, err := newHarness().Exercises()
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), names)
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func gradeProgram(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	req := newRequest(cmd, source)
	req.Exercise = gradeExercise

	resp := newHarness().Grade(cmd.Context(), req)

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
		return responseErr(resp)
	}

	if err := responseErr(resp); err != nil {
		return err
	}

	passed := 0
	for n, entry := range resp.Results {
		verdict := "FAIL"
		if entry.Passed {
			verdict = "PASS"
			passed++
		}
		fmt.Fprintf(out, "%s %d: %s\n", verdict, n+1, entry.Message)
		if verbose {
			fmt.Fprint(out, entry.Buffer)
			regs := make([]string, len(entry.Registers))
			for r, reg := range entry.Registers {
				regs[r] = fmt.Sprintf("r%d=%s", r, reg.Hex())
			}
			fmt.Fprintf(out, "    %s\n", strings.Join(regs, " "))
		}
	}
	fmt.Fprintf(out, "%d/%d passed\n", passed, len(resp.Results))

	return nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	req := newRequest(cmd, source)
	for _, text := range registers {
		as, err := value.ParseAssignment(text)
		if err != nil {
			return err
		}
		req.Initial = append(req.Initial, as)
	}

	resp := newHarness().Grade(cmd.Context(), req)

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
		return responseErr(resp)
	}

	if err := responseErr(resp); err != nil {
		return err
	}

	fmt.Fprint(out, resp.Output)
	fmt.Fprint(out, resp.EndState)

	return nil
}

func listProgram(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	listing, err := newHarness().Engine.LoadProgram(source)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), listing)
	return nil
}
