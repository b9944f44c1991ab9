package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sicasm "github.com/0mar1010/System-Programming-Project"
)

var asmCmd = &cobra.Command{
	Use:   "asm SOURCE",
	Short: "Assemble SOURCE into a listing and object program",
	Long: `Asm runs both passes over SOURCE. Pass 1 writes intermediate.txt,
symbol_table.txt and used_op_table.txt into the output directory; Pass 2
writes output.txt. Files written before a fatal error are left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		optab, err := cfg.opTable()
		if err != nil {
			return err
		}

		lines, err := readSource(args[0])
		if err != nil {
			return err
		}

		in, err := sicasm.Pass1(lines, optab, cfg.options())
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if err := cfg.writePass1(in); err != nil {
			return err
		}

		prog, err := sicasm.Pass2(in, cfg.options())
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if err := cfg.writePass2(prog); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lines, %d symbols, %d warnings\n",
			args[0], len(prog.Listing), prog.Symbols.Len(), len(prog.Warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
}
