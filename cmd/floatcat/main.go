package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsatke/floatcat"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "floatcat"
)

var (
	file string

	rootCmd = &cobra.Command{
		Use:   AppName + " [numbers...]",
		Short: "classify float64 values by their shape",
		// negative literals look like flags to the parser, so they have
		// to go after a '--'
		Example: "  " + AppName + " 1.5 0.2 NaN\n" +
			"  " + AppName + " -- -100.0 -0.002\n" +
			"  " + AppName + " --file numbers.txt",
		Args: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return fmt.Errorf("requires numbers as arguments or --file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			i := floatcat.NewInspector(
				floatcat.WithOutput(cmd.OutOrStdout()),
				floatcat.WithErrOutput(cmd.ErrOrStderr()),
			)

			if file != "" {
				_, err := i.InspectFile(file)
				return err
			}

			_, err := i.InspectString(strings.Join(args, " "))
			return err
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "classify the numbers in the given file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err)
		os.Exit(1)
	}
}
