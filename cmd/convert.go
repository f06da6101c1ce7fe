package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/kotlinmodelgen/internal/converter"
	"github.com/cmmoran/kotlinmodelgen/internal/target"
	"github.com/cmmoran/kotlinmodelgen/pkg/action/convert"
)

func init() {
	rootCmd.AddCommand(NewConvertCommand())
}

// conversionFlags are the options shared by convert and snapshot.
type conversionFlags struct {
	typeMappings map[string]string
}

func addConversionFlags(fs *pflag.FlagSet, cf *conversionFlags) {
	defaults := converter.NewOptions()
	fs.StringP("input-file", "i", "", "package descriptor to convert (.yaml, .yml or .json)")
	fs.StringP("output-directory", "o", defaults.OutDir, "output root; kotlin files are written under their package path")
	fs.StringP("output-file", "f", "", "output file name (default <Class>.<ext>; a .java name gets the target extension)")
	fs.StringP("target", "t", defaults.Target, fmt.Sprintf("output language (%s)", strings.Join(target.Available(), ", ")))
	fs.Bool("known-types", defaults.KnownTypes, "map well-known java types to kotlin types")
	fs.String("use-site-target", defaults.UseSiteTarget, "use-site target of property annotations (field, property, get, set, param; empty for none)")
	fs.StringToStringVarP(&cf.typeMappings, "type-mapping", "m", map[string]string{}, "extra type mappings, ex: java.net.URI=java.net.URL")
}

// typeMappingsKey holds a list of from=to entries, not a map
const typeMappingsKey = "type_mappings"

var conversionKeys = map[string]string{
	"in_file":         "input-file",
	"out_dir":         "output-directory",
	"out_file":        "output-file",
	"target":          "target",
	"known_types":     "known-types",
	"use_site_target": "use-site-target",
}

// conversionOptions layers flags over config files and environment.
func conversionOptions(fs *pflag.FlagSet, cf *conversionFlags) (*converter.Options, error) {
	for key, flag := range conversionKeys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}
	options := converter.NewOptions()
	if err := viper.Unmarshal(options); err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	configured, err := converter.ParseTypeMappings(viper.GetStringSlice(typeMappingsKey))
	if err != nil {
		return nil, fmt.Errorf("read configuration: %s: %w", typeMappingsKey, err)
	}
	options.TypeMappings = configured
	for from, to := range cf.typeMappings {
		if options.TypeMappings == nil {
			options.TypeMappings = make(map[string]string)
		}
		options.TypeMappings[from] = to
	}
	if err := options.Normalize(); err != nil {
		return nil, err
	}
	return options, nil
}

func NewConvertCommand() *cobra.Command {
	cf := &conversionFlags{}

	// convertCmd represents the kotlinmodelgen convert command
	var convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "convert a model class",
		Long:  "Convert the first class of a package descriptor into a kotlin data class (or another target)",
		RunE: func(c *cobra.Command, args []string) error {
			options, err := conversionOptions(c.Flags(), cf)
			if err != nil {
				return err
			}
			res, err := convert.Generate(options)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), res.File)
			return err
		},
	}
	addConversionFlags(convertCmd.Flags(), cf)

	return convertCmd
}
