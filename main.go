// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlkit/avl"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Height-balanced search tree workbench [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	var cmdRun = &cobra.Command{
		Use:   "run [script]",
		Short: "Replay an operation script against a fresh tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run reads one operation per line from the script file, or stdin when no file is given`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if noCheck, _ := cmd.Flags().GetBool("no-check"); noCheck {
				config.Tree.CheckAfterEachOp = false
			}

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening script: %v", err)
				}
				defer f.Close()
				in = f
			}

			ops, err := ParseScript(in)
			if err != nil {
				log.Fatalf("Error parsing script: %v", err)
			}

			session := NewSession(config, os.Stdout)
			err = session.Replay(ops)
			fmt.Printf("\n%s\n", session.Summary())
			fmt.Printf("Finished at %s\n", FormatDateTime(time.Now()))
			if err != nil {
				log.Fatalf("Error applying script: %v", err)
			}
		},
	}
	cmdRun.Flags().Bool("no-check", false, "skip invariant checks after each insert and delete")

	var cmdScenarios = &cobra.Command{
		Use:   "scenarios",
		Short: "Check every rotation case and the fixed tree properties",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Scenarios builds small trees that trigger each rebalancing case on insert and delete and checks the resulting shapes`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if failed := RunScenarios(os.Stdout, DefaultScenarios()); failed > 0 {
				os.Exit(1)
			}
		},
	}

	var cmdFill = &cobra.Command{
		Use:   "fill",
		Short: "Insert distinct random keys and report statistics",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Fill inserts pseudo-random keys, then validates the tree and prints its height and rotation counts`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fc := config.Fill
			flags := cmd.Flags()
			if flags.Changed("count") {
				fc.Count, _ = flags.GetInt("count")
			}
			if flags.Changed("seed") {
				fc.Seed, _ = flags.GetUint64("seed")
			}
			if flags.Changed("min") {
				fc.MinKey, _ = flags.GetInt("min")
			}
			if flags.Changed("max") {
				fc.MaxKey, _ = flags.GetInt("max")
			}
			if noProgress, _ := flags.GetBool("no-progress"); noProgress {
				fc.ShowProgress = false
			}

			tree := avl.New[int]()
			stats, err := Fill(tree, fc, os.Stderr)
			if err != nil {
				log.Fatalf("Error filling tree: %v", err)
			}
			if err := tree.Validate(); err != nil {
				log.Fatalf("Tree failed validation: %v", err)
			}

			st := tree.Stats()
			fmt.Printf("keys:       %d (requested %d)\n", stats.Inserted, stats.Requested)
			fmt.Printf("duplicates: %d, tree probes: %d\n", stats.Duplicates, stats.TreeProbes)
			fmt.Printf("height:     %d\n", tree.Height())
			fmt.Printf("rotations:  %d (LL=%d RR=%d LR=%d RL=%d)\n", st.Rotations,
				st.Insert[avl.LeftLeft], st.Insert[avl.RightRight], st.Insert[avl.LeftRight], st.Insert[avl.RightLeft])
			fmt.Printf("duration:   %s\n", stats.Duration)
		},
	}
	cmdFill.Flags().Int("count", 0, "number of distinct keys to insert")
	cmdFill.Flags().Uint64("seed", 0, "random seed")
	cmdFill.Flags().Int("min", 0, "smallest key that may be drawn")
	cmdFill.Flags().Int("max", 0, "largest key that may be drawn")
	cmdFill.Flags().Bool("no-progress", false, "hide the progress bar")

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt with a live view of the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Repl applies operations as you type them and redraws the tree after each one`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runRepl(NewSession(config, io.Discard), config); err != nil {
				log.Fatalf("Error running repl: %v", err)
			}
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show K...",
		Short: "Build a tree from the given keys and draw it",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree := avl.New[int]()
			for _, a := range args {
				k, err := strconv.Atoi(a)
				if err != nil {
					log.Fatalf("%v: %q", ErrBadKey, a)
				}
				tree.Insert(k)
			}
			fmt.Print(RenderTree(tree, NewTreeStyles()))
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show settings from ~/.avlkit.yaml",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Config prints the active settings and writes a default file when none exists`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := getConfigPath()
			if err != nil {
				log.Fatalf("Error locating config: %v", err)
			}
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlkit",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the scenarios when no subcommand is provided
			if failed := RunScenarios(os.Stdout, DefaultScenarios()); failed > 0 {
				os.Exit(1)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdScenarios, cmdFill, cmdRepl, cmdShow, cmdConfig, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
