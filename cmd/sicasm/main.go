package main

import (
	goflag "flag"
	"os"

	"github.com/golang/glog"
)

var usage = `
SIC Assembler

Usage: sicasm asm PROGRAM.txt [-o DIR]

Assembles a SIC program in two passes. Pass 1 writes intermediate.txt,
symbol_table.txt and used_op_table.txt; Pass 2 writes output.txt, the
listing followed by the Header, Text and End records.
`

func main() {
	goflag.Set("logtostderr", "true")

	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
