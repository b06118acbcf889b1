// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rnenv evaluates nested-radical shorthand expressions and
// prints their canonical form. With no arguments it reads expressions
// interactively, one per line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Andrea-Vigano/rnenv/config"
	"github.com/Andrea-Vigano/rnenv/parse"
	"github.com/Andrea-Vigano/rnenv/rn"
)

var (
	flagASCII    bool
	flagMaxDepth int
	flagDebug    bool

	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "rnenv [expression]",
		Short: "exact arithmetic over nested radicals",
		Long: `rnenv evaluates expressions such as "(2+3√5)/4", "sqrt(2)+1/2" or
"root(3, 1/2)" exactly, reducing every result to its unique canonical
form. Without arguments it starts an interactive session.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = buildLogger()
			if err != nil {
				return err
			}
			c := &config.Config{}
			c.SetASCII(flagASCII)
			c.SetMaxDepth(flagMaxDepth)
			rn.SetConfig(c)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return repl(cmd)
			}
			return evalOne(cmd, strings.Join(args, " "), false)
		},
	}
	root.PersistentFlags().BoolVar(&flagASCII, "ascii", false, "render roots as rtN(x) instead of √")
	root.PersistentFlags().IntVar(&flagMaxDepth, "max-depth", 0, "nesting depth limit (0 means the default)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	classCmd := &cobra.Command{
		Use:   "class [expression]",
		Short: "print the classification of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalOne(cmd, strings.Join(args, " "), true)
		},
	}
	root.AddCommand(classCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rnenv:", err)
		os.Exit(1)
	}
}

func buildLogger() (*zap.Logger, error) {
	if !flagDebug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

func evalOne(cmd *cobra.Command, src string, showClass bool) error {
	v, err := parse.Eval(src)
	if err != nil {
		return err
	}
	logger.Debug("evaluated",
		zap.String("input", src),
		zap.String("canonical", v.String()),
		zap.Stringer("class", v.Class()),
	)
	if showClass {
		fmt.Fprintln(cmd.OutOrStdout(), v.Class())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

// repl evaluates lines until EOF. Errors are reported and the loop
// continues, so one bad expression does not end the session.
func repl(cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "> ")
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line != "" {
			if err := evalOne(cmd, line, false); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return in.Err()
}
