//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/commander"
	"github.com/timburks/gomacs/pkg/config"
	"github.com/timburks/gomacs/pkg/editor"
	"github.com/timburks/gomacs/pkg/keymap"
	"github.com/timburks/gomacs/pkg/log"
	"github.com/timburks/gomacs/pkg/screen"
)

var (
	version  = "dev"
	cfgFile  string
	evalExpr string
	readOnly bool
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:     "gomacs [files...]",
	Short:   "A small Emacs-style text editor",
	Long:    `gomacs edits files in the terminal with Emacs key bindings and golisp scripting.`,
	Version: version,
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gomacs/config.yaml)")
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "",
		"evaluate lisp against the files, print the result and exit")
	rootCmd.Flags().BoolVarP(&readOnly, "read-only", "r", false,
		"open files read-only")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"write debug messages to the log")
}

func run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cleanup, err := log.Init(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info(log.CatConfig, "starting", "version", version, "config", v.ConfigFileUsed())

	e, err := newEditor(cfg)
	if err != nil {
		return err
	}
	commander.Install(e)
	for _, path := range args {
		if _, err := e.VisitFile(path, buffer.WithReadOnly(readOnly)); err != nil {
			return err
		}
	}
	if len(args) > 0 {
		e.SwitchBuffer(0)
	}
	if cfg.InitFile != "" {
		if _, err := commander.EvalFile(cfg.InitFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			e.SetMessage("Error in init file: %s", err)
		}
	}

	if cmd.Flags().Changed("eval") {
		result, err := commander.EvalString(evalExpr)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", evalExpr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	s, err := screen.NewScreen(screen.WithTabWidth(cfg.TabWidth))
	if err != nil {
		return err
	}
	defer s.Close()
	return commander.NewCommander(e, s, s).Run()
}

// newEditor creates an editor configured by cfg.
func newEditor(cfg config.Config) (*editor.Editor, error) {
	opts := []editor.Option{editor.WithMarkovSentences(cfg.MarkovSentences)}
	if len(cfg.WordDelimiters) > 0 {
		mode, err := buffer.NewMode(buffer.Fundamental.Name, cfg.WordDelimiters, nil)
		if err != nil {
			return nil, fmt.Errorf("word_delimiters: %w", err)
		}
		opts = append(opts, editor.WithFundamentalMode(mode))
	}
	if cfg.KeymapFile != "" {
		bindings, err := keymap.LoadFile(cfg.KeymapFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithKeymap(keymap.Merge(keymap.Default(), bindings)))
	}
	return editor.NewEditor(opts...), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
