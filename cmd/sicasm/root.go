package main

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sicasm "github.com/0mar1010/System-Programming-Project"
)

type config struct {
	optab    string
	outDir   string
	maxText  int
	exactHex bool
}

var cfg config

var rootCmd = &cobra.Command{
	Use:          "sicasm",
	Short:        "Two-pass assembler for the SIC machine",
	Long:         usage,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog's flags are set through cobra; mark the Go flag set parsed.
		return goflag.CommandLine.Parse(nil)
	},
}

func init() {
	addFlags(rootCmd.PersistentFlags(), &cfg)
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

func addFlags(fs *pflag.FlagSet, c *config) {
	fs.StringVar(&c.optab, "optab", "", "operation table file, MNEMONIC OPCODE per line (default: built-in SIC table)")
	fs.StringVarP(&c.outDir, "out-dir", "o", ".", "directory for intermediate and output files")
	fs.IntVar(&c.maxText, "max-text", 0, "max object code bytes per Text record, 0 for a single record")
	fs.BoolVar(&c.exactHex, "exact-hex-bytes", false, "size BYTE X'..' by its digits instead of one byte")
}

func (c *config) options() sicasm.Options {
	return sicasm.Options{
		MaxTextBytes:  c.maxText,
		ExactHexBytes: c.exactHex,
	}
}
