// The immutable command is an interactive workbench for the collection
// library: create typed maps, mutate them (each mutation binds the new
// version over the old name), and inspect the results.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	immutable "github.com/open-source-contributions/immutable"
)

const (
	appName     = "immutable"
	historyFile = ".immutable_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("immutable %s workbench\nCtrl+C cancels input, Ctrl+D exits. Type help for commands.", immutable.Version)

const helpText = `Commands:
  new <name> <keyType> <valueType>   Create an empty map (types: int, float,
                                     string, bool, array, object, scalar,
                                     mixed, or a class name)
  put <name> <key> <value>           Bind key to value (rebinds <name>)
  get <name> <key>                   Look a key up
  del <name> <key>                   Remove a key (rebinds <name>)
  has <name> <key>                   Membership test
  keys <name>                        Show the key set
  values <name>                      Show the value sequence
  join <name> <separator>            Join the values as text
  size <name>                        Entry count
  show <name>                        Render the map
  ls                                 List bound names
  :quit                              Exit

Literals: null, true, false, 42, 3.14, "text", [1, "a", [2]]`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}
	switch os.Args[1] {
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(immutable.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`immutable %s

Usage:
  %s [repl]     Start the interactive workbench (default).
  %s version    Print the version.

%s
`, immutable.Version, appName, appName, helpText)
}

func cmdRepl() int {
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

	env := map[string]*immutable.Map{}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == ":quit" || code == ":q" {
			return 0
		}

		out, cerr := execute(env, code)
		if cerr != nil {
			fmt.Fprintln(os.Stderr, red(cerr.Error()))
		} else if out != "" {
			fmt.Println(blue(out))
		}
		ln.AppendHistory(code)
	}
}

func execute(env map[string]*immutable.Map, code string) (string, error) {
	toks, err := tokenize(code)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", nil
	}
	verb := toks[0].text
	args := toks[1:]

	switch verb {
	case "help":
		return helpText, nil

	case "ls":
		if len(env) == 0 {
			return "(nothing bound)", nil
		}
		names := make([]string, 0, len(env))
		for n := range env {
			names = append(names, n)
		}
		sort.Strings(names)
		var b strings.Builder
		for _, n := range names {
			m := env[n]
			fmt.Fprintf(&b, "%s: Map<%s, %s> size=%d\n", n, m.KeyType(), m.ValueType(), m.Size())
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case "new":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: new <name> <keyType> <valueType>")
		}
		m, err := immutable.Of(args[1].text, args[2].text)
		if err != nil {
			return "", err
		}
		env[args[0].text] = m
		return fmt.Sprintf("%s: Map<%s, %s>", args[0].text, m.KeyType(), m.ValueType()), nil

	case "put":
		m, name, rest, err := boundMap(env, args, 2, "put <name> <key> <value>")
		if err != nil {
			return "", err
		}
		k, rest, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		v, rest, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		if len(rest) != 0 {
			return "", fmt.Errorf("trailing input after value")
		}
		next, perr := m.Put(k, v)
		if perr != nil {
			return "", perr
		}
		env[name] = next
		return green(fmt.Sprintf("size=%d", next.Size())), nil

	case "get":
		m, _, rest, err := boundMap(env, args, 1, "get <name> <key>")
		if err != nil {
			return "", err
		}
		k, _, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		v, gerr := m.Get(k)
		if gerr != nil {
			return "", gerr
		}
		return immutable.FormatValue(v), nil

	case "del":
		m, name, rest, err := boundMap(env, args, 1, "del <name> <key>")
		if err != nil {
			return "", err
		}
		k, _, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		next, derr := m.Remove(k)
		if derr != nil {
			return "", derr
		}
		env[name] = next
		return green(fmt.Sprintf("size=%d", next.Size())), nil

	case "has":
		m, _, rest, err := boundMap(env, args, 1, "has <name> <key>")
		if err != nil {
			return "", err
		}
		k, _, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(m.Contains(k)), nil

	case "keys":
		m, _, _, err := boundMap(env, args, 0, "keys <name>")
		if err != nil {
			return "", err
		}
		return immutable.FormatValue(immutable.Obj(m.Keys())), nil

	case "values":
		m, _, _, err := boundMap(env, args, 0, "values <name>")
		if err != nil {
			return "", err
		}
		return immutable.FormatValue(immutable.Obj(m.Values())), nil

	case "join":
		m, _, rest, err := boundMap(env, args, 1, "join <name> <separator>")
		if err != nil {
			return "", err
		}
		sep, _, err := parseValue(rest)
		if err != nil {
			return "", err
		}
		if sep.Tag != immutable.VTStr {
			return "", fmt.Errorf("separator must be a quoted string")
		}
		return m.Join(sep.Data.(string)), nil

	case "size":
		m, _, _, err := boundMap(env, args, 0, "size <name>")
		if err != nil {
			return "", err
		}
		return strconv.Itoa(m.Size()), nil

	case "show":
		m, _, _, err := boundMap(env, args, 0, "show <name>")
		if err != nil {
			return "", err
		}
		return immutable.FormatValue(immutable.Obj(m)), nil

	default:
		return "", fmt.Errorf("unknown command %q (try help)", verb)
	}
}

// boundMap resolves args[0] to a bound map and checks that at least extra
// further tokens follow. It returns the remaining tokens after the name.
func boundMap(env map[string]*immutable.Map, args []token, extra int, use string) (*immutable.Map, string, []token, error) {
	if len(args) < 1+extra {
		return nil, "", nil, fmt.Errorf("usage: %s", use)
	}
	name := args[0].text
	m, ok := env[name]
	if !ok {
		return nil, "", nil, fmt.Errorf("no map named %q (see ls)", name)
	}
	return m, name, args[1:], nil
}
