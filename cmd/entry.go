package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"klang/interpreter"
	"klang/lexer"
	"klang/parser"
	"klang/repl"
)

type (
	CommandFunc func(args []string)

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var commands map[string]CommandInfo

func init() {
	commands = map[string]CommandInfo{
		"run": {
			Description: "Takes the filepath of a program, and executes it",
			Function:    Run,
			Flags: []FlagInfo{
				{
					Name:        "-f",
					Description: "program file path",
				},
			},
		},
		"repl": {
			Description: "Starts an interactive session",
			Function:    Repl,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

func Help(args []string) {
	title := color.New(color.FgMagenta, color.Bold)
	name := color.New(color.FgCyan, color.Bold)
	flag := color.New(color.FgYellow, color.Bold)

	if len(args) < 1 {
		// show the whole help catalog
		title.Println("\nSupported Commands:")
		fmt.Println()

		for cmdName, cmd := range commands {
			name.Printf("  %v\n", cmdName)
			fmt.Printf("    Description: %v\n", cmd.Description)

			if len(cmd.Flags) > 0 {
				fmt.Println("    Flags:")
				for _, f := range cmd.Flags {
					flag.Printf("      %v", f.Name)
					fmt.Printf(" - %v\n", f.Description)
				}
			}
			fmt.Println()
		}
		return
	}

	// print the help of the specified command
	cmdName := args[0]

	cmd, ok := commands[cmdName]
	if !ok {
		color.Red("ERROR: provided command, isn't supported")
		return
	}

	title.Print("\nCommand: ")
	name.Println(cmdName)
	fmt.Printf("Description: %v\n", cmd.Description)

	if len(cmd.Flags) > 0 {
		fmt.Println("Flags:")
		for _, f := range cmd.Flags {
			flag.Printf("  %v", f.Name)
			fmt.Printf(" - %v\n", f.Description)
		}
	} else {
		fmt.Println("(No flags available)")
	}
	fmt.Println()
}

func Run(args []string) {
	// getopt expects argv[0] to hold the command name
	opts, _, err := getopt.Getopts(append([]string{"run"}, args...), "f:")
	if err != nil {
		color.Red("ERROR: %v", err)
		os.Exit(1)
	}

	fileTarget := ""
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			fileTarget = opt.Value
		}
	}

	if len(fileTarget) <= 0 {
		color.Red("ERROR: provide the filepath flag -f to assign the path to it")
		os.Exit(1)
	}

	osPath, _ := os.Getwd()
	targetFile := filepath.Join(osPath, fileTarget)

	byteContent, err := os.ReadFile(targetFile)
	if err != nil {
		color.Red("ERROR: %v", err)
		os.Exit(1)
	}

	content := string(byteContent)

	l := lexer.NewLexer(targetFile, content)
	p := parser.NewParser(l, filepath.Base(targetFile))

	program, err := p.Parse()
	if err != nil {
		color.Red("ERROR: %v", err)
		os.Exit(1)
	}

	i := interpreter.NewInterpreter(nil, os.Stdout)
	if result := i.Eval(program); result != nil {
		color.Red("ERROR: %s", result.Inspect())
		os.Exit(1)
	}
}

func Repl(args []string) {
	repl.Start(os.Stdin, os.Stdout)
}

func Execute() {
	if len(os.Args) < 2 {
		color.Red("ERROR: at least provide a command name to kick off the cli")
		os.Exit(1)
	}

	name := os.Args[1]
	args := os.Args[2:]

	if _, ok := commands[name]; !ok {
		color.Red("ERROR: unknown command %v, check help for manual.", name)
		os.Exit(1)
	}

	commands[name].Function(args)
}
