package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith"
	"github.com/forthwith/forthwith/internal/config"
	"github.com/forthwith/forthwith/internal/history"
)

func newReplCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive session",
		Long: `Start an interactive session.  Definitions persist for the session's
lifetime; the transcript is recorded in the history database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			return runREPL(cmd, cfg)
		},
	}
}

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	hist, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = hist.Close() }()

	// readline keeps its own line-recall file next to the history database;
	// an in-memory history database means no line recall across runs either
	var lineFile string
	if cfg.HistoryDB != "" {
		lineFile = cfg.HistoryDB + "_lines"
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     lineFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	vm := forthwith.New(vmOptions(cfg)...)

	fmt.Fprintln(out, "forthwith repl")
	fmt.Fprintln(out, "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			if line == ".reset" {
				vm = forthwith.New(vmOptions(cfg)...)
				fmt.Fprintln(out, "session reset")
				continue
			}
			handleDotCommand(out, vm, hist, line)
			continue
		}

		result := evalLine(vm, line)
		fmt.Fprintln(out, result)
		if err := hist.Record(line, result); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "history: %v\n", err)
		}
	}
	return nil
}

func evalLine(vm *forthwith.VM, line string) string {
	if err := vm.Eval(line); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("%v", vm.Stack())
}

func handleDotCommand(out io.Writer, vm *forthwith.VM, hist *history.Store, line string) {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".help":
		printREPLHelp(out)
	case ".stack":
		fmt.Fprintf(out, "%v\n", vm.Stack())
	case ".words":
		renderWords(out, vm.Words())
	case ".dump":
		vm.DumpTo(out)
	case ".history":
		n := 10
		if len(parts) > 1 {
			if parsed, err := strconv.Atoi(parts[1]); err == nil && parsed > 0 {
				n = parsed
			}
		}
		renderHistory(out, hist, n)
	default:
		fmt.Fprintf(out, "unknown command %q; try .help\n", parts[0])
	}
}

func renderWords(out io.Writer, words []forthwith.WordInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Kind", "Body", ""})
	for _, w := range words {
		note := ""
		if w.Shadowed {
			note = "shadowed"
		}
		t.AppendRow(table.Row{w.Index, w.Name, w.Kind, strings.Join(w.Body, " "), note})
	}
	t.Render()
}

func renderHistory(out io.Writer, hist *history.Store, n int) {
	entries, err := hist.Recent(n)
	if err != nil {
		fmt.Fprintf(out, "history: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no history)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"When", "Input", "Result"})
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		t.AppendRow(table.Row{e.At.Format("15:04:05"), e.Input, e.Result})
	}
	t.Render()
}

func printREPLHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  .help          Show this help")
	fmt.Fprintln(out, "  .stack         Show the operand stack, bottom to top")
	fmt.Fprintln(out, "  .words         List the dictionary")
	fmt.Fprintln(out, "  .dump          Dump the full session state")
	fmt.Fprintln(out, "  .history [n]   Show the last n evaluated lines (default 10)")
	fmt.Fprintln(out, "  .reset         Start a fresh session")
	fmt.Fprintln(out, "  .quit          Exit")
}
