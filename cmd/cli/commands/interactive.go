package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command: connect to the database
// once, then run multiple commands in a session.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (connect once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands without
reconnecting to the database. The session keeps running until you type
'exit' or 'quit'. Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Sibling commands, excluding the session plumbing
			rootCmd := cmd.Parent()
			siblings := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				switch subCmd.Name() {
				case "interactive", "completion", "help":
					continue
				}
				siblings[subCmd.Name()] = subCmd
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts := strings.Fields(line)
				name := parts[0]
				cmdArgs := parts[1:]

				if name == "exit" || name == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}
				if name == "help" {
					printSessionHelp(siblings)
					continue
				}

				target, exists := siblings[name]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", name)
					continue
				}

				// Reset flags from the previous invocation
				target.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Run the command's RunE directly so PersistentPreRunE
				// doesn't reconnect on every line
				if err := target.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}
				cmdArgs = target.Flags().Args()
				if target.Args != nil {
					if err := target.Args(target, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
						continue
					}
				}
				if err := target.RunE(target, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}
}

func printSessionHelp(siblings map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(siblings))
	for name := range siblings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("  %-30s %s\n", siblings[name].Use, siblings[name].Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}
