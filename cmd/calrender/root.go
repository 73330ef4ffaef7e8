package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/internal/config"
)

// flagKeys binds command-line flags to configuration keys. Flags win over
// the environment, which wins over the file.
var flagKeys = map[string]string{
	"width":       "layout.viewport_width",
	"week-start":  "layout.week_start",
	"trailing":    "layout.trailing",
	"annotations": "annotations",
	"font":        "fonts.file",
	"shaping":     "fonts.shaping",
	"log-level":   "log.level",
}

type app struct {
	cfgFile string
	cfg     config.Config
	logs    io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "calrender",
		Short:         "Render month calendar grids",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	cmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default $CALGRID_CONFIG or "+config.DefaultConfigPath+")")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("font", "", "TTF/OTF font file")
	flags.String("annotations", "", "annotation file (.toml, .yaml, .json)")
	flags.String("week-start", "", "first weekday column")
	flags.String("trailing", "", "height policy after the last row: gap or padding")
	flags.Float64("width", 0, "viewport width in pixels")
	flags.Bool("shaping", false, "measure text with HarfBuzz shaping")

	cmd.AddCommand(newRenderCmd(a), newTapCmd(a), newInitConfigCmd())
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	v, err := config.NewViper(path)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	a.logs = closer
	calgrid.SetLogger(logger)
	logger.Debug("calrender: configuration loaded", "path", v.ConfigFileUsed(), "version", Version)
	return nil
}

func (a *app) close() error {
	calgrid.SetLogger(nil)
	if a.logs == nil {
		return nil
	}
	err := a.logs.Close()
	a.logs = nil
	return err
}

// bindFlags binds the flags the user actually set. Unset flags must not
// shadow file values with their zero defaults.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}
