package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formallab/sequent"
)

var (
	templatesPath string
	verbose       bool
	latexOut      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sequent",
		Short: "Interactive sequent calculus proof assistant",
		Long: "sequent builds formal proofs step by step in propositional logic,\n" +
			"first-order logic, and dynamic logic with a box modality. You pick\n" +
			"the rule; it applies it.",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rule applications")

	proveCmd := &cobra.Command{
		Use:   "prove [sequent]",
		Short: "Start an interactive proof of the given sequent",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProve,
	}
	proveCmd.Flags().StringVar(&templatesPath, "templates", "", "YAML file with custom rule templates")
	proveCmd.Flags().StringVar(&latexOut, "latex", "", "write the finished derivation to this file as LaTeX")

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rule names",
		Run: func(cmd *cobra.Command, args []string) {
			printRules()
		},
	}

	rootCmd.AddCommand(proveCmd, rulesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runProve(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	input := sequent.DefaultSequent
	if len(args) == 1 {
		input = args[0]
	}

	session := sequent.NewSession(logger)
	if templatesPath != "" {
		if err := session.LoadTemplates(templatesPath); err != nil {
			return err
		}
	}
	if err := session.Start(input); err != nil {
		return err
	}

	fmt.Println("Proof started. Type 'help' for commands.")
	repl(session)

	if latexOut != "" {
		if err := os.WriteFile(latexOut, []byte(session.LaTeX()), 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", latexOut)
	}
	return nil
}

func repl(session *sequent.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	printGoals(session)
	for {
		if session.Closed() {
			fmt.Println("Proof closed. ∎")
			return
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "goals":
			printGoals(session)
		case "latex":
			fmt.Println(session.LaTeX())
		case "apply":
			if err := applyCommand(session, fields[1:]); err != nil {
				fmt.Println("error:", err)
				continue
			}
			printGoals(session)
		case "undo":
			if err := undoCommand(session, fields[1:]); err != nil {
				fmt.Println("error:", err)
				continue
			}
			printGoals(session)
		default:
			fmt.Printf("unknown command %q; type 'help'\n", fields[0])
		}
	}
}

// applyCommand handles: apply <goal#> <rule> <side> <index> [arg...]
func applyCommand(session *sequent.Session, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: apply <goal#> <rule> <side> <index> [arg]")
	}
	goal, err := goalByNumber(session, args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("bad formula index %q", args[3])
	}
	arg := strings.Join(args[4:], " ")
	return session.Apply(goal.ID, args[1], args[2], index, arg)
}

func undoCommand(session *sequent.Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: undo <goal#>")
	}
	goal, err := goalByNumber(session, args[0])
	if err != nil {
		return err
	}
	return session.Undo(goal.ID)
}

func goalByNumber(session *sequent.Session, raw string) (sequent.Goal, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return sequent.Goal{}, fmt.Errorf("bad goal number %q", raw)
	}
	goals := session.Goals()
	if n < 0 || n >= len(goals) {
		return sequent.Goal{}, fmt.Errorf("no goal %d; run 'goals'", n)
	}
	return goals[n], nil
}

func printGoals(session *sequent.Session) {
	for i, g := range session.Goals() {
		mark := " "
		if g.Closed {
			mark = "✔"
		}
		fmt.Printf("%s [%d] %s\n", mark, i, g.Sequent)
	}
}

func printHelp() {
	fmt.Print(`commands:
  goals                                     list open goals
  apply <goal#> <rule> <side> <index> [arg] apply a rule
  undo <goal#>                              undo the step that produced a goal
  latex                                     print the derivation as LaTeX
  quit                                      leave the proof

sides are lhs/rhs; indices count formulas on that side from 0.
Rules needing an argument: forallL/existsR (a term), WL/WR, cut and
whileInv (a formula). Run 'sequent rules' for all rule names.
`)
}

func printRules() {
	fmt.Print(`axioms:        id  falseL (⊥L)  trueR (⊤R)
propositional: andL andR orL orR impliesL impliesR notL notR iffL iffR
quantifiers:   forallL forallR existsL existsR
programs:      skipL skipR seqL seqR choiceR starUnfold ifR
               whileUnfold whileInv forR assignR testL testR
structural:    WL WR CL CR cut
`)
}
