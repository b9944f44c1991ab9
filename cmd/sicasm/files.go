package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	sicasm "github.com/0mar1010/System-Programming-Project"
)

const (
	intermediateFile = "intermediate.txt"
	symbolTableFile  = "symbol_table.txt"
	usedOpTableFile  = "used_op_table.txt"
	outputFile       = "output.txt"
)

func (c *config) opTable() (*sicasm.OpTable, error) {
	if c.optab == "" {
		return sicasm.DefaultOpTable(), nil
	}

	f, err := os.Open(c.optab)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := sicasm.LoadOpTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.optab, err)
	}
	return t, nil
}

func readSource(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sicasm.ReadSource(f)
}

// writeFile creates name in the output directory and hands it to write.
func (c *config) writeFile(name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(c.outDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(c.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %v: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %v: %w", path, err)
	}

	glog.V(1).Infof("wrote %s", path)
	return nil
}

func (c *config) writePass1(in *sicasm.Intermediate) error {
	if err := c.writeFile(intermediateFile, func(w io.Writer) error {
		return sicasm.WriteIntermediate(w, in.Lines)
	}); err != nil {
		return err
	}

	if err := c.writeFile(symbolTableFile, func(w io.Writer) error {
		_, err := in.Symbols.WriteTo(w)
		return err
	}); err != nil {
		return err
	}

	return c.writeFile(usedOpTableFile, func(w io.Writer) error {
		return sicasm.WriteUsedOps(w, in.Used)
	})
}

func (c *config) writePass2(p *sicasm.Program) error {
	if err := c.writeFile(usedOpTableFile, func(w io.Writer) error {
		return sicasm.WriteUsedOps(w, p.Used)
	}); err != nil {
		return err
	}

	return c.writeFile(outputFile, p.WriteOutput)
}

// readPass1 loads the artifacts written by writePass1.
func readPass1(optab *sicasm.OpTable, intermediatePath, symtabPath string) (*sicasm.Intermediate, error) {
	f, err := os.Open(intermediatePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := sicasm.ReadIntermediate(f, optab)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", intermediatePath, err)
	}

	g, err := os.Open(symtabPath)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	symbols, err := sicasm.ReadSymbolTable(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symtabPath, err)
	}

	return &sicasm.Intermediate{Lines: lines, Symbols: symbols}, nil
}
