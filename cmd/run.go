package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

var (
	runSets  []string
	runFiles []string
	runSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run <tool-id>",
	Short: "Run a tool once without the TUI",
	Long: `Runs a tool's form once with its defaults, overridden by --set and --file.
Piped stdin fills the tool's main text field. Files the tool produces are
written to the output directory.`,
	Example: `  toolbelt run uuid-generator --set count=3
  echo hello | toolbelt run base64-encoder
  toolbelt run image-resizer --file photo.png --set preset="Instagram Post"`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var ids []string
		for _, t := range registry.All() {
			if strings.HasPrefix(t.ID, toComplete) {
				ids = append(ids, t.ID+"\t"+t.Name)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runTool,
}

func init() {
	runCmd.Flags().StringArrayVar(&runSets, "set", nil, "field value as key=value (repeatable)")
	runCmd.Flags().StringArrayVar(&runFiles, "file", nil, "input file for the tool's file field (repeatable)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "also save text results under the tool's download name")
	rootCmd.AddCommand(runCmd)
}

// parseSets turns key=value pairs into form values.
func parseSets(pairs []string) (map[string]string, error) {
	vals := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", p)
		}
		vals[strings.TrimSpace(k)] = v
	}
	return vals, nil
}

// pipedInput reads stdin unless it is a terminal.
func pipedInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runTool(cmd *cobra.Command, args []string) error {
	t := registry.Get(args[0])
	if t == nil {
		return fmt.Errorf("unknown tool %q (see toolbelt list)", args[0])
	}
	vals, err := parseSets(runSets)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()
	d := s.deps()
	spec := t.Spec(d)

	if len(runFiles) > 0 {
		f, ok := spec.FileField()
		if !ok {
			return fmt.Errorf("%s does not take files", t.ID)
		}
		vals[f.Key] = strings.Join(runFiles, "\n")
	}
	if p, ok := spec.PrimaryField(); ok && vals[p.Key] == "" {
		text, err := pipedInput(cmd)
		if err != nil {
			return err
		}
		if text != "" {
			vals[p.Key] = text
		}
	}

	ctx := cmd.Context()
	res, err := runner.RunHeadless(ctx, spec, vals, s.logger)
	if err != nil {
		return errors.New(toolerr.Message(err, spec.Failure))
	}

	out := cmd.OutOrStdout()
	render := runner.RenderResult
	if spec.Render != nil {
		render = spec.Render
	}
	if body := render(res); body != "" {
		fmt.Fprintln(out, body)
	}

	artifacts := res.Artifacts
	if runSave {
		artifacts = spec.Downloads(res)
	}
	paths, err := d.Env.Saver.SaveAll(ctx, artifacts)
	if err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintln(out, "Saved", p)
	}
	return nil
}
