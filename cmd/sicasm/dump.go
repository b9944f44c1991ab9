package main

import (
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	sicasm "github.com/0mar1010/System-Programming-Project"
)

var dumpColor bool

var dumpCmd = &cobra.Command{
	Use:   "dump SOURCE",
	Short: "Assemble SOURCE and pretty-print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		optab, err := cfg.opTable()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		prog, err := sicasm.Assemble(f, optab, cfg.options())
		if err != nil {
			return err
		}

		printer := pp.New()
		printer.SetOutput(cmd.OutOrStdout())
		printer.SetColoringEnabled(dumpColor)
		_, err = printer.Println(prog)
		return err
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpColor, "color", false, "colorize output")
	rootCmd.AddCommand(dumpCmd)
}
