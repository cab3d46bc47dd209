package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tidycols/grid"
	"github.com/npillmayer/tidycols/sheet/douceuradapter"
	"github.com/npillmayer/tidycols/tidy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X main.Version=…".
var Version = "0.1"

var cfgFile string

func tracer() tracing.Trace {
	return tracing.Select("tidy.process")
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tidycols [file]",
		Short:         "Rewrite tidy-span/tidy-offset grid functions into calc() expressions",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd)
		},
		RunE: run,
	}
	flags := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./tidycols.yaml)")
	flags.String("columns", "", "number of grid columns, or a var() reference")
	flags.String("gap", "", "gap between columns, e.g. 1.25rem")
	flags.String("edge", "", "outer edge on either side of the container, e.g. 32px")
	flags.String("base", "vw", "container base unit: vw or %")
	flags.String("max", "", "maximum container width, e.g. 75rem")
	flags.Bool("html", false, "input is an HTML document with embedded <style> elements")
	flags.StringP("output", "o", "", "output file (default is stdout)")
	flags.BoolP("verbose", "v", false, "trace processing steps")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	return cmd
}

// initializeConfig reads in config file and ENV variables if set, and binds
// command line flags to configuration keys.
func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("tidycols")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("TIDYCOLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return viper.BindPFlags(cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		for _, key := range []string{"tidy.css", "tidy.grid", "tidy.nesting", "tidy.calc", "tidy.sheet", "tidy.process"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	var opts grid.Options
	if err := viper.Unmarshal(&opts); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	p, err := tidy.New(opts)
	if err != nil {
		return err
	}
	tracer().Infof("grid: %s", p.Config())
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	var output string
	var warnings []tidy.Warning
	if viper.GetBool("html") {
		output, warnings, err = processHTML(p, input)
	} else {
		output, warnings, err = processCSS(p, input)
	}
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return writeOutput(cmd, viper.GetString("output"), output)
}

func processCSS(p *tidy.Processor, input string) (string, []tidy.Warning, error) {
	styles, err := douceuradapter.Parse(input)
	if err != nil {
		return "", nil, err
	}
	warnings, err := p.ProcessSheet(styles)
	if err != nil {
		return "", warnings, err
	}
	return styles.String(), warnings, nil
}

func processHTML(p *tidy.Processor, input string) (string, []tidy.Warning, error) {
	doc, err := douceuradapter.ParseHTML(input)
	if err != nil {
		return "", nil, err
	}
	var warnings []tidy.Warning
	err = douceuradapter.RewriteStyleElements(doc, func(styles *douceuradapter.CSSStyles) error {
		w, err := p.ProcessSheet(styles)
		warnings = append(warnings, w...)
		return err
	})
	if err != nil {
		return "", warnings, err
	}
	out, err := douceuradapter.RenderHTML(doc)
	return out, warnings, err
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}

func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
