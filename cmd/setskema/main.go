package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	setskema "github.com/reoring/setskema"
	"github.com/reoring/setskema/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "lint":
		lintCmd(os.Args[2:])
	case "keys":
		keysCmd(os.Args[2:])
	case "search":
		searchCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "setskema CLI\n\nUsage:\n  setskema lint -f schema.json\n  setskema keys -f schema.json\n  setskema search -f schema.json -q query\n\nNotes:\n  - Schema documents may be JSON or YAML (.yaml/.yml).")
}

func loadSchema(path string) (*setskema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec.DecodeYAML(data)
	default:
		return codec.DecodeJSON(data)
	}
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "schema document to lint")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	s, err := loadSchema(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setskema: %v\n", err)
		os.Exit(1)
	}
	errs := setskema.ValidateSchema(s)
	if len(errs) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "ok: %s\n", file)
		return
	}
	codeCol := color.New(color.FgRed, color.Bold)
	pathCol := color.New(color.FgCyan)
	for _, e := range errs {
		fmt.Fprintf(os.Stdout, "%s %s %s\n", codeCol.Sprint(e.Code), pathCol.Sprint(e.Path), e.Message)
	}
	fmt.Fprintf(os.Stdout, "%d problem(s)\n", len(errs))
	os.Exit(1)
}

func keysCmd(args []string) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "schema document to list")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	s, err := loadSchema(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setskema: %v\n", err)
		os.Exit(1)
	}
	keyCol := color.New(color.FgCyan)
	for _, fl := range setskema.FlattenSettings(s) {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", keyCol.Sprint(fl.Definition.Key), fl.Definition.Type, fl.Path)
	}
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	var file, query string
	fs.StringVar(&file, "f", "", "schema document to search")
	fs.StringVar(&query, "q", "", "query text")
	_ = fs.Parse(args)
	if file == "" || query == "" {
		fs.Usage()
		os.Exit(2)
	}
	s, err := loadSchema(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setskema: %v\n", err)
		os.Exit(1)
	}
	res := setskema.SearchSchema(s, query)
	head := color.New(color.Bold)
	head.Fprintln(os.Stdout, "pages:")
	for _, k := range sortedKeys(res.PageKeys) {
		fmt.Fprintf(os.Stdout, "  %s\n", k)
	}
	head.Fprintln(os.Stdout, "settings:")
	for _, k := range sortedKeys(res.SettingKeys) {
		fmt.Fprintf(os.Stdout, "  %s\n", k)
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
