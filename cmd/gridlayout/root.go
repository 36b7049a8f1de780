// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gioui.org/grid/gridfile"
	"gioui.org/grid/internal/log"
	"gioui.org/grid/layout"
)

// config is the configuration of the command, read from flags, the
// environment and an optional config file.
type config struct {
	Log log.Config
	// Border overrides the border width of grid files when
	// non-negative.
	Border int
}

// app is the state shared by the subcommands.
type app struct {
	v      *viper.Viper
	cfg    config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgFile string
	root := &cobra.Command{
		Use:           "gridlayout",
		Short:         "Inspect the layout of grid files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.readConfig(cfgFile); err != nil {
				return err
			}
			l, err := log.New(a.cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.String("log-level", "warn", "log level")
	flags.String("log-format", "console", "log format, console or json")
	flags.Int("border", -1, "border width overriding the grid file")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("border", flags.Lookup("border"))

	root.AddCommand(
		newBordersCmd(a),
		newMetricsCmd(a),
		newSizesCmd(a),
		newDrawCmd(a),
	)
	return root
}

// readConfig reads the config file, if any, and the GRIDLAYOUT_
// environment variables.
func (a *app) readConfig(file string) error {
	v := a.v
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gridlayout")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("GRIDLAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// load reads the grid file at path into a new Grid.
func (a *app) load(path string) (*layout.Grid, error) {
	f, err := gridfile.Load(path)
	if err != nil {
		return nil, err
	}
	if a.cfg.Border >= 0 {
		f.Border = a.cfg.Border
	}
	g := &layout.Grid{Logger: a.logger.With(zap.String("file", path))}
	if err := f.Apply(g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("Loaded grid",
		zap.String("file", path),
		zap.Int("rows", len(f.Rows)),
		zap.Int("border", g.BorderWidth),
	)
	return g, nil
}

// each loads the grid files in paths and runs fn on them concurrently.
// The outputs are written to w in the order of paths, each under a
// heading when there is more than one file.
func (a *app) each(w io.Writer, paths []string, fn func(w io.Writer, g *layout.Grid) error) error {
	outs := make([]bytes.Buffer, len(paths))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			g, err := a.load(path)
			if err != nil {
				return err
			}
			return fn(&outs[i], g)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if len(paths) > 1 {
			fmt.Fprintf(w, "== %s ==\n", paths[i])
		}
		if _, err := outs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
