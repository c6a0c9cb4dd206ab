package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface runREPL drives. App implements it.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Trips(ctx context.Context) error
	NewTrip(ctx context.Context) error
	Open(ctx context.Context, ref string) error
	Show(ctx context.Context) error
	EditTrip(ctx context.Context) error
	RmTrip(ctx context.Context) error
	Export(ctx context.Context) error

	AddItem(ctx context.Context, day string) error
	AddMemo(ctx context.Context, day string) error
	EditItem(ctx context.Context, ref string) error
	RmItem(ctx context.Context, ref string) error

	Checklist(ctx context.Context) error
	AddCheck(ctx context.Context) error
	Check(ctx context.Context, ref string) error
	RmCheck(ctx context.Context, ref string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = `Available commands:
  trips                  list your trips
  newtrip                create a trip
  open <n|id>            open a trip
  show                   show the open trip day by day
  edittrip | rmtrip      edit or delete the open trip
  add <day>              add a place, stay or transport leg
  memo <day>             add a memo
  edit <item#> | rm <item#>
  checklist              show the packing list
  addcheck | check <n> | rmcheck <n>
  export                 download the itinerary as JSON
  logout | exit`
)

type command struct {
	needsLogin bool
	usage      string
	run        func(ctx context.Context, a execIface, arg string) error
}

var commands = map[string]command{
	"register": {run: func(ctx context.Context, a execIface, _ string) error { return a.Register(ctx) }},
	"login":    {run: func(ctx context.Context, a execIface, _ string) error { return a.Login(ctx) }},

	"logout":    {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.Logout(ctx) }},
	"trips":     {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.Trips(ctx) }},
	"newtrip":   {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.NewTrip(ctx) }},
	"open":      {needsLogin: true, usage: "open <n|id>", run: func(ctx context.Context, a execIface, arg string) error { return a.Open(ctx, arg) }},
	"show":      {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.Show(ctx) }},
	"edittrip":  {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.EditTrip(ctx) }},
	"rmtrip":    {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.RmTrip(ctx) }},
	"export":    {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.Export(ctx) }},
	"add":       {needsLogin: true, usage: "add <day>", run: func(ctx context.Context, a execIface, arg string) error { return a.AddItem(ctx, arg) }},
	"memo":      {needsLogin: true, usage: "memo <day>", run: func(ctx context.Context, a execIface, arg string) error { return a.AddMemo(ctx, arg) }},
	"edit":      {needsLogin: true, usage: "edit <item#>", run: func(ctx context.Context, a execIface, arg string) error { return a.EditItem(ctx, arg) }},
	"rm":        {needsLogin: true, usage: "rm <item#>", run: func(ctx context.Context, a execIface, arg string) error { return a.RmItem(ctx, arg) }},
	"checklist": {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.Checklist(ctx) }},
	"addcheck":  {needsLogin: true, run: func(ctx context.Context, a execIface, _ string) error { return a.AddCheck(ctx) }},
	"check":     {needsLogin: true, usage: "check <n>", run: func(ctx context.Context, a execIface, arg string) error { return a.Check(ctx, arg) }},
	"rmcheck":   {needsLogin: true, usage: "rmcheck <n>", run: func(ctx context.Context, a execIface, arg string) error { return a.RmCheck(ctx, arg) }},
}

// runREPL reads commands from in until EOF, "exit" or "quit". Command
// errors go to onErr and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, w io.Writer, onErr func(error)) {
	for {
		fmt.Fprintf(w, "triply %s> ", statusFn())

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := strings.ToLower(parts[0])

		switch name {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}
			continue
		}

		cmd, ok := commands[name]
		if !ok {
			fmt.Fprintln(w, "Unknown command:", parts[0])
			continue
		}
		if cmd.needsLogin && !a.isLoggedIn() {
			onErr(ErrNotLoggedIn)
			continue
		}

		arg := strings.Join(parts[1:], " ")
		if cmd.usage != "" && arg == "" {
			fmt.Fprintln(w, "Usage:", cmd.usage)
			continue
		}

		if err := cmd.run(ctx, a, arg); err != nil {
			onErr(err)
		}
	}
}
