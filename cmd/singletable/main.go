/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/suparena/singletable"
	"github.com/suparena/singletable/registry"
	"github.com/suparena/singletable/schema"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	schemaFlag  = flag.String("schema", "", "Path to a schema file to validate")
	entityFlag  = flag.String("entity", "", "Entity name for key composition")
	indexFlag   = flag.String("index", "primary", "Index name for key composition")
	facetsFlag  = flag.String("facets", "", "Comma-separated facet=value pairs to compose a key from")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := singletable.GetVersionInfo()
		fmt.Printf("singletable version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *schemaFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := schema.Load(*schemaFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema error: %v\n", err)
		os.Exit(1)
	}

	reg := registry.New()
	if err := f.Apply(reg); err != nil {
		fmt.Fprintf(os.Stderr, "schema error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("schema OK: %d entities\n", len(f.Entities))

	if *entityFlag == "" {
		return
	}

	facets, err := parseFacets(*facetsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "facets error: %v\n", err)
		os.Exit(1)
	}

	ck, err := reg.ResolveKey(*entityFlag, *indexFlag, facets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %s\n", ck.PartitionAttr, ck.PartitionValue)
	fmt.Printf("%s = %s\n", ck.SortAttr, ck.SortValue)
}

func parseFacets(raw string) (map[string]string, error) {
	facets := make(map[string]string)
	if raw == "" {
		return facets, nil
	}
	pairs := strings.Split(raw, ",")
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed facet pair %q, expected name=value", pair)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("facet with empty name in pair %q", pair)
		}
		facets[name] = value
	}
	return facets, nil
}
