package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/peterh/liner"

	vlad "github.com/VladYermakov/interpreter"
)

const (
	appName     = "vlad"
	historyFile = ".vlad_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("Vlad %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", vlad.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "watch":
		os.Exit(cmdWatch(os.Args[2:]))
	case "version":
		fmt.Println(vlad.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Vlad %s

Usage:
  %s run <file.vl>            Run a script or re-play a transcript.
  %s repl                     Start the REPL.
  %s watch <file.vl>          Re-run the file whenever it changes.
  %s version                  Print the version.

`, vlad.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.vl>\n", appName)
		return 2
	}
	return runFile(fs.Arg(0), os.Stdout, os.Stderr)
}

// runFile executes one file against a fresh session. Files containing
// transcript prompts re-play as transcripts; everything else runs as a
// bare unit sequence.
func runFile(file string, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	sess := vlad.NewSession()
	text := string(src)

	if strings.Contains(text, vlad.PromptPrefix) {
		fmt.Fprint(stdout, sess.RunTranscript(text))
		return 0
	}

	results, err := sess.RunProgram(text)
	if err != nil {
		fmt.Fprintln(stderr, vlad.WrapErrorWithSource(err, text).Error())
		return 1
	}
	code := 0
	for _, r := range results {
		fmt.Fprintln(stdout, r.Text)
		if r.Kind == vlad.ResultError {
			code = 1
		}
	}
	return code
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sess := vlad.NewSession()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		r, err := sess.Eval(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(vlad.WrapErrorWithSource(err, code).Error()))
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
			continue
		}
		if r.Kind == vlad.ResultSignature {
			fmt.Println(green(r.Text))
		} else {
			fmt.Println(blue(r.Text))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until the buffer parses, or fails
// with something other than an incomplete-input error.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := vlad.ParseUnitInteractive(src)
		if perr == nil {
			return src, true
		}
		if vlad.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// watch
// -----------------------------------------------------------------------------

func cmdWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s watch <file.vl>\n", appName)
		return 2
	}
	file := fs.Arg(0)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	defer watcher.Close()

	// watch the directory; editors replace files rather than write them
	// in place
	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot watch %s: %v\n", appName, dir, err)
		return 1
	}

	abs, _ := filepath.Abs(file)
	fmt.Printf("%s: watching %s\n", appName, file)
	runFile(file, os.Stdout, os.Stderr)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if evAbs != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("\n%s: %s changed\n", appName, file)
			runFile(file, os.Stdout, os.Stderr)
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "%s: watch error: %v\n", appName, err)
		}
	}
}
