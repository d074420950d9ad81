package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OS is the production [Platform] implementation backed by the real
// process environment, filesystem, and terminal.
//
// Create instances with [NewOS]. The zero value is not usable — it has no
// streams attached.
type OS struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	reader *bufio.Reader
}

// NewOS returns an [OS] wired to os.Stdin/os.Stdout/os.Stderr.
func NewOS() *OS {
	return &OS{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		reader: bufio.NewReader(os.Stdin),
	}
}

func (o *OS) Getenv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (o *OS) TermWidth() (int, bool) {
	f, ok := o.Stdout.(*os.File)
	if !ok {
		return 0, false
	}

	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}

	return w, true
}

func (o *OS) SupportsANSI() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	f, ok := o.Stdout.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func (o *OS) Eprint(s string) {
	fmt.Fprint(o.Stderr, s)
}

func (o *OS) Eprintln(s string) {
	fmt.Fprintln(o.Stderr, s)
}

func (o *OS) Flush() {
	if f, ok := o.Stdout.(*os.File); ok {
		_ = f.Sync()
	}
}

func (o *OS) EFlush() {
	if f, ok := o.Stderr.(*os.File); ok {
		_ = f.Sync()
	}
}

func (o *OS) TermNewLine() string {
	return "\n"
}

func (o *OS) ReadPassword() (string, bool, error) {
	f, ok := o.Stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", false, nil
	}

	b, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", true, fmt.Errorf("reading password: %w", err)
	}

	return string(b), true, nil
}

func (o *OS) ReadLine() (string, bool) {
	line, err := o.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return line, true
}

func (o *OS) ReadFile(path string) (string, bool, error) {
	b, err := os.ReadFile(path) //nolint:gosec // Path is supplied by the CLI's own argv/config.
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}

	return string(b), true, nil
}

func (o *OS) Exit(code int) {
	os.Exit(code)
}
