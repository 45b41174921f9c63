package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/barter"
)

// commands maps the first argument to the command it runs. A command gets
// stdin, stdout and the arguments that follow its name, and parses them
// with the flag package.
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"accept-offer": cmdAcceptOffer,
	"balance":      cmdBalance,
	"cancel-offer": cmdCancelOffer,
	"create-item":  cmdCreateItem,
	"create-offer": cmdCreateOffer,
	"items":        cmdItems,
	"keyaddr":      cmdKeyaddr,
	"keygen":       cmdKeygen,
	"my-items":     cmdMyItems,
	"offers":       cmdOffers,
	"version":      cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the barter chain.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, barter.Version())
	return nil
}
