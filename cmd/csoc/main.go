// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command csoc compresses a JSON document against a schema and reports on
// the resulting compressed object.
//
// Example usage:
//	$ csoc compress schema.yaml data.json -o out.co
//	$ csoc compress schema.yaml data.json --blocks
//	$ csoc bench schema.yaml data.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dsnet/cso/encode"
	"github.com/dsnet/cso/internal/bench"
	"github.com/dsnet/cso/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "csoc:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: csoc compress <schema.yaml> <data.json> [-o out.co] [--blocks]")
	fmt.Fprintln(os.Stderr, "       csoc bench <schema.yaml> <data.json>...")
}

func loadSchemaAndValue(schemaPath, dataPath string) (schema.Schema, encode.Value, error) {
	sf, err := os.Open(schemaPath)
	if err != nil {
		return schema.Schema{}, encode.Value{}, err
	}
	defer sf.Close()

	s, err := schema.Load(sf)
	if err != nil {
		return schema.Schema{}, encode.Value{}, fmt.Errorf("load schema: %w", err)
	}

	df, err := os.Open(dataPath)
	if err != nil {
		return schema.Schema{}, encode.Value{}, err
	}
	defer df.Close()

	dec := json.NewDecoder(df)
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return schema.Schema{}, encode.Value{}, fmt.Errorf("parse data: %w", err)
	}

	v, err := encode.FromJSON(*s, doc)
	if err != nil {
		return schema.Schema{}, encode.Value{}, fmt.Errorf("transcode: %w", err)
	}
	return *s, v, nil
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	out := fs.String("o", "", "write the compressed object's bytes to this file instead of stdout")
	blocks := fs.Bool("blocks", false, "print the block sequence instead of the packed bytes")
	// Flags may follow the file arguments, as in the usage line, so parsing
	// resumes after each positional argument.
	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		files = append(files, args[0])
		args = args[1:]
	}
	if len(files) != 2 {
		usage()
		return fmt.Errorf("compress requires a schema and a data file")
	}

	s, v, err := loadSchemaAndValue(files[0], files[1])
	if err != nil {
		return err
	}

	co, err := encode.Encode(s, v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := co.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if *blocks {
		for i, b := range co.Blocks() {
			fmt.Printf("%4d: %#v\n", i, b)
		}
		return nil
	}

	data := co.IntoBytes(s.MarkerWidth())
	if *out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(*out, data, 0644)
}

// benchReport is one data file's outcome, kept alongside its index so
// results can be printed in argument order even though the encodes that
// produced them ran concurrently.
type benchReport struct {
	path string
	line string
}

// runBench encodes every given data file against schema independently and
// concurrently — each goroutine owns its own schema/value/CO instances, so
// nothing is shared across them — and reports each one's compressed size
// alongside internal/bench's comparison codecs run over the same file's
// raw bytes.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		usage()
		return fmt.Errorf("bench requires a schema and at least one data file")
	}

	schemaPath := fs.Arg(0)
	dataPaths := fs.Args()[1:]
	reports := make([]benchReport, len(dataPaths))

	var g errgroup.Group
	for i, path := range dataPaths {
		i, path := i, path
		g.Go(func() error {
			s, v, err := loadSchemaAndValue(schemaPath, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			co, err := encode.Encode(s, v)
			if err != nil {
				return fmt.Errorf("%s: encode: %w", path, err)
			}
			data := co.IntoBytes(s.MarkerWidth())

			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			results := bench.Compare(raw)
			reports[i] = benchReport{path: path, line: bench.Format(len(data), results)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Printf("%s: %s\n", r.path, r.line)
	}
	return nil
}
