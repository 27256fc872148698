package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith"
	"github.com/forthwith/forthwith/internal/config"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "forthwith [file...]",
		Short: "A minimal Forth-like interpreter",
		Long: `forthwith evaluates Forth-like programs: integers push onto an operand
stack, words like + - * / DUP DROP SWAP OVER manipulate it, and colon
definitions (: NAME ... ;) compile new words.

With file arguments, each file is evaluated in order through one session;
without arguments, standard input is evaluated.  The final stack is printed
top first, one value per line.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout != 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			vm := forthwith.New(vmOptions(cfg)...)
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if err := vm.EvalContext(ctx, string(data)); err != nil {
					return err
				}
			} else {
				for _, path := range args {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					if err := vm.EvalContext(ctx, string(data)); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				}
			}

			stack := vm.Stack()
			for i := len(stack) - 1; i >= 0; i-- {
				fmt.Fprintln(cmd.OutOrStdout(), stack[i])
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default forthwith.yaml)")
	cmd.PersistentFlags().Bool("trace", false, "enable trace logging")
	cmd.PersistentFlags().Int("step-limit", 0, "abort evaluation after this many steps (0 = unlimited)")
	cmd.PersistentFlags().String("history-db", "", "REPL history database path (default in-memory)")
	cmd.PersistentFlags().String("prompt", config.DefaultPrompt, "REPL prompt")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "specify a time limit")

	cmd.AddCommand(newReplCmd(&cfgFile))
	return cmd
}

func vmOptions(cfg *config.Config) []forthwith.VMOption {
	var opts []forthwith.VMOption
	if cfg.Trace {
		opts = append(opts, forthwith.WithLogf(log.Printf))
	}
	if cfg.StepLimit > 0 {
		opts = append(opts, forthwith.WithStepLimit(cfg.StepLimit))
	}
	return opts
}
