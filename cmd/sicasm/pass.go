package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	sicasm "github.com/0mar1010/System-Programming-Project"
)

var pass1Cmd = &cobra.Command{
	Use:   "pass1 SOURCE",
	Short: "Run Pass 1 only and write its files",
	Args:  cobra.ExactArgs(1),
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

		return cfg.writePass1(in)
	},
}

var pass2Inputs struct {
	intermediate string
	symtab       string
}

var pass2Cmd = &cobra.Command{
	Use:   "pass2",
	Short: "Run Pass 2 over files written by pass1",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		optab, err := cfg.opTable()
		if err != nil {
			return err
		}

		intermediate := pass2Inputs.intermediate
		if intermediate == "" {
			intermediate = filepath.Join(cfg.outDir, intermediateFile)
		}
		symtab := pass2Inputs.symtab
		if symtab == "" {
			symtab = filepath.Join(cfg.outDir, symbolTableFile)
		}

		in, err := readPass1(optab, intermediate, symtab)
		if err != nil {
			return err
		}

		prog, err := sicasm.Pass2(in, cfg.options())
		if err != nil {
			return fmt.Errorf("%s: %w", intermediate, err)
		}

		return cfg.writePass2(prog)
	},
}

func init() {
	pass2Cmd.Flags().StringVar(&pass2Inputs.intermediate, "intermediate", "", "intermediate file (default: DIR/intermediate.txt)")
	pass2Cmd.Flags().StringVar(&pass2Inputs.symtab, "symtab", "", "symbol table file (default: DIR/symbol_table.txt)")

	rootCmd.AddCommand(pass1Cmd)
	rootCmd.AddCommand(pass2Cmd)
}
