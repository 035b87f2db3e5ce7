// Program tinylang compiles a TinyLang source file into AArch64 assembly
// targeting a bare Linux _start entry.
//
// Usage: tinylang [options] <inputPath> [<outputPath>]
//
// The output path defaults to out.s (configurable); a given output path that
// does not end in .s is ignored with a warning. With --build the generated
// assembly is additionally assembled and linked with the configured
// toolchain.
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/pborman/getopt"

	"go.tinylang.dev/config"
	tinylang "go.tinylang.dev/pkg"
)

var outputPattern = regexp.MustCompile(`.*\.s$`)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		build      bool
		trace      bool
		help       bool
	)

	getopt.StringVarLong(&configPath, "config", 'c', "load configuration from FILE", "FILE")
	getopt.BoolVarLong(&build, "build", 'b', "assemble and link the output")
	getopt.BoolVarLong(&trace, "trace", 't', "log grammar productions while compiling")
	getopt.BoolVarLong(&help, "help", 'h', "display help")
	getopt.SetParameters("<inputPath> [<outputPath>]")
	getopt.Parse()

	if help {
		getopt.PrintUsage(os.Stdout)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	args := getopt.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "error: you need to input a file to compile")
		getopt.PrintUsage(os.Stderr)
		return 1
	}

	inputPath := args[0]

	outputPath := cfg.Output.DefaultPath
	if len(args) >= 2 {
		if outputPattern.MatchString(args[1]) {
			outputPath = args[1]
		} else {
			fmt.Fprintf(os.Stderr, "%s is not a valid file name, outputting to %s\n", args[1], outputPath)
		}
	}

	c := tinylang.NewCompiler(tinylang.DefaultTarget())
	c.SetToolchain(tinylang.Toolchain{
		Assembler: cfg.Toolchain.Assembler,
		Linker:    cfg.Toolchain.Linker,
	})

	if trace || cfg.Trace.Productions {
		c.SetTrace(log.New(os.Stdout, "", 0))
	}

	if err := c.Compile(inputPath, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if build {
		if err := c.Build(outputPath, cfg.Toolchain.Artifact); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}

	return config.Load()
}
