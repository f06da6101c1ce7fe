package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cmmoran/kotlinmodelgen/pkg/action/snapshot"
)

const defaultManifest = "kotlinmodelgen.manifest.yaml"

func init() {
	rootCmd.AddCommand(NewSnapshotCommand(), NewDiffCommand(), NewListCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		cf           = &conversionFlags{}
		manifestPath string
		snapVersion  string
	)

	// snapshotCmd represents the kotlinmodelgen snapshot command
	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "convert into a versioned directory",
		Long:  "Convert a model class into <output-directory>/<version> and record it in the manifest",
		RunE: func(c *cobra.Command, args []string) error {
			options, err := conversionOptions(c.Flags(), cf)
			if err != nil {
				return err
			}
			file, err := snapshot.Generate(options, manifestPath, snapVersion)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), file)
			return err
		},
	}
	addConversionFlags(snapshotCmd.Flags(), cf)
	snapshotCmd.Flags().StringVar(&manifestPath, "manifest", defaultManifest, "manifest file tracking generations")
	snapshotCmd.Flags().StringVarP(&snapVersion, "snapshot-version", "V", "", "version label of this generation")
	_ = snapshotCmd.MarkFlagRequired("snapshot-version")

	return snapshotCmd
}

func NewDiffCommand() *cobra.Command {
	var manifestPath string

	// diffCmd represents the kotlinmodelgen diff command
	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current and previous generation",
		Long:  "Show how the files of the current manifest version differ from the previous version",
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			if diff == "" {
				diff = "no changes\n"
			}
			_, err = fmt.Fprint(c.OutOrStdout(), diff)
			return err
		},
	}
	diffCmd.Flags().StringVar(&manifestPath, "manifest", defaultManifest, "manifest file tracking generations")

	return diffCmd
}

func NewListCommand() *cobra.Command {
	var manifestPath string

	// listCmd represents the kotlinmodelgen list command
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded generations",
		Long:  "List the files recorded in the manifest, marking the current and previous versions",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "VERSION\tCLASS\tTARGET\tFILE")
			for _, g := range m.Generations {
				version := g.Version
				switch version {
				case m.CurrentVersion:
					version += " (current)"
				case m.PreviousVersion:
					version += " (previous)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", version, g.Class, g.Target, g.File)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&manifestPath, "manifest", defaultManifest, "manifest file tracking generations")

	return listCmd
}
