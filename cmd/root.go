package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/spf13/cobra"
)

const levelTrace = slog.Level(-8)

var (
	configFiles []string
	level       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "kotlinmodelgen",
	Short:        "generate kotlin data classes from java model descriptors",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// parseLevel accepts slog level names plus trace.
func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return levelTrace, nil
	}
	var ll slog.Level
	err := (&ll).UnmarshalText([]byte(s))
	return ll, err
}

func setLogger(ll slog.Level) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     ll,
	}))
	slog.SetDefault(l)
	return l
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	ll, err := parseLevel(level)
	if err != nil {
		panic("invalid log level: " + level)
	}
	l := setLogger(ll)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		l.With("config", viper.ConfigFileUsed()).Info("using config file(s)")
	} else {
		l.With("error", err, "config", viper.ConfigFileUsed()).Debug("unable to use config file(s)")
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					l.With("error", err, "file", file).Warn("failed to merge config file")
				} else {
					l.With("file", file).Info("merged config file")
				}
			}
		}
	}
	// a log level from config applies unless --level was given
	if llstr := viper.GetString("common.log.level"); llstr != "" && !rootCmd.PersistentFlags().Changed("level") {
		cl, err := parseLevel(llstr)
		if err != nil {
			panic("invalid log level: " + llstr)
		}
		setLogger(cl)
	}
}
