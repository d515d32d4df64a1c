package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/batandwa-bbd/minivac"
)

func main() {
	log := logrus.New()
	if err := newRootCommand(log).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	var (
		exprs  []string
		given  []string
		tables bool
	)
	cmd := &cobra.Command{
		Use:   "minivac",
		Short: "Interactive calculator",
		Long: `minivac is an interactive calculator. Each input line is a plain
expression, a variable assignment ("mass = 9.81 * 2"), or a function
definition ("f(x) = x^2 - 1"). The variables ans and preans hold the
latest and previous results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := givenOptions(given)
			if err != nil {
				return err
			}
			eng := minivac.New(opts...)
			if len(exprs) > 0 {
				// One-shot mode shares a single session, so ans and
				// assignments carry across -e arguments.
				for _, src := range exprs {
					r, err := eng.Run(src)
					if err != nil {
						return err
					}
					fmt.Println(format(r))
				}
				return nil
			}
			repl(eng, log, tables)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&exprs, "eval", "e", nil, "evaluate an expression and exit (repeatable)")
	cmd.Flags().StringArrayVar(&given, "given", nil, `seed a variable as "name=value" (repeatable)`)
	cmd.Flags().BoolVar(&tables, "tables", false, "print the variable and function tables after every line")
	return cmd
}

func givenOptions(defs []string) ([]minivac.Option, error) {
	var opts []minivac.Option
	for _, d := range defs {
		name, val, ok := strings.Cut(d, "=")
		if !ok {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %v", strings.TrimSpace(name), err)
		}
		opts = append(opts, minivac.WithVariable(strings.TrimSpace(name), v))
	}
	return opts, nil
}

func repl(eng *minivac.Engine, log *logrus.Logger, tables bool) {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			fmt.Print("> ")
			continue
		case "exit", "quit":
			return
		}
		r, err := eng.Run(line)
		if err != nil {
			// Errors are shown in place of a result; the session goes on.
			fmt.Println(err)
		} else {
			fmt.Println(format(r))
		}
		if tables {
			printTables(eng)
		}
		fmt.Print("> ")
	}
	if err := sc.Err(); err != nil {
		log.WithError(err).Error("reading input")
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func printTables(eng *minivac.Engine) {
	for _, v := range eng.Variables() {
		fmt.Printf("%s = %s\n", v.Name, format(v.Value))
	}
	for _, f := range eng.Callables() {
		fmt.Printf("%s(x) = %s\n", f.Name, f.Body)
	}
}
