package tinylang

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

type Arch string
type OS string

const (
	AArch64 Arch = "aarch64"

	Linux OS = "linux"
)

// Target names the machine the generated assembly runs on. The code
// generator only speaks AArch64 Linux; the triple is returned by
// [Compiler.Target] and is the seam where further targets would attach. No
// diagnostic includes it.
type Target struct {
	Arch Arch
	OS   OS
}

func (t Target) String() string {
	return fmt.Sprintf("%s-%s", t.Arch, t.OS)
}

// DefaultTarget returns the only supported target, aarch64-linux.
func DefaultTarget() Target {
	return Target{
		Arch: AArch64,
		OS:   Linux,
	}
}

// Toolchain names the external programs used to turn the generated assembly
// into an executable.
type Toolchain struct {
	Assembler string
	Linker    string
}

// DefaultToolchain assumes a native AArch64 host; cross setups override the
// binaries through configuration.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Assembler: "as",
		Linker:    "ld",
	}
}

// Compiler drives the single compilation pass: lexer feeding the parser,
// parser emitting into the four-region emitter, emitter flushing on success.
type Compiler struct {
	target    Target
	toolchain Toolchain
	trace     *log.Logger
}

func NewCompiler(target Target) *Compiler {
	return &Compiler{
		target:    target,
		toolchain: DefaultToolchain(),
	}
}

// SetToolchain overrides the external assembler and linker.
func (c *Compiler) SetToolchain(tc Toolchain) {
	c.toolchain = tc
}

// SetTrace installs a production trace logger, passed through to the parser.
func (c *Compiler) SetTrace(l *log.Logger) {
	c.trace = l
}

// Target returns the compiler's target triple.
func (c *Compiler) Target() Target {
	return c.target
}

// Compile translates the source file at inputPath into AArch64 assembly at
// outputPath. On any compile error the output file is not written.
func (c *Compiler) Compile(inputPath, outputPath string) error {
	lexer, err := NewLexer(inputPath)
	if err != nil {
		return &Error{
			Kind:    ErrorIO,
			Message: fmt.Sprintf("unable to open file %s: %v", inputPath, err),
		}
	}

	emitter := NewEmitter(outputPath)

	parser := NewParser(lexer, emitter)
	parser.SetTrace(c.trace)

	if err := parser.Program(); err != nil {
		return err
	}

	return emitter.WriteFile()
}

// Build assembles and links the generated assembly file into the executable
// at outName. The assembly is piped into the assembler's stdin while the
// command runs.
func (c *Compiler) Build(asmPath, outName string) error {
	asm, err := os.ReadFile(asmPath)
	if err != nil {
		return &Error{
			Kind:    ErrorIO,
			Message: fmt.Sprintf("unable to open file %s: %v", asmPath, err),
		}
	}

	obj := outName + ".o"

	cmd := exec.Command(c.toolchain.Assembler, "-o", obj, "-")

	r, w := io.Pipe()
	cmd.Stdin = r

	errs := errgroup.Group{}
	errs.Go(func() error {
		if _, err := w.Write(asm); err != nil {
			return err
		}

		return w.Close()
	})

	errs.Go(func() error {
		if cmdOut, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %v: %s", c.toolchain.Assembler, err, cmdOut)
		}

		return nil
	})

	if err := errs.Wait(); err != nil {
		return err
	}

	if cmdOut, err := exec.Command(c.toolchain.Linker, "-o", outName, obj).CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %v: %s", c.toolchain.Linker, err, cmdOut)
	}

	return nil
}
