package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/quicklook/pkg/gallery"
	"github.com/go-drift/quicklook/pkg/truthy"
)

func newTruthyCommand(s *session) *cobra.Command {
	var all bool
	c := &cobra.Command{
		Use:   "truthy [value...]",
		Short: "Evaluate values for truthiness",
		Long: `Without arguments, replay the truthiness demonstrations: integers,
optionals and arrays used directly as conditions.

Each argument is parsed as a value and evaluated:
  42, -1, 0      integers
  nil            an absent optional
  [], [a,b]      sequences
Anything else is rejected as an unsupported type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, sample := range gallery.TruthySamples() {
					if all {
						fmt.Fprintf(out, "%-12s %t\n", sample.Name, truthy.Truthy(sample.Value))
						continue
					}
					if msg := sample.Message(); msg != "" {
						fmt.Fprintln(out, msg)
					}
				}
				return nil
			}

			var failed error
			for _, arg := range args {
				ok, err := truthy.IsTruthy(parseValue(arg))
				if err != nil {
					s.logger.Debug("truthiness rejected", zap.String("arg", arg), zap.Error(err))
					fmt.Fprintf(out, "%-12s error: %v\n", arg, err)
					failed = err
					continue
				}
				fmt.Fprintf(out, "%-12s %t\n", arg, ok)
			}
			return failed
		},
	}
	c.Flags().BoolVar(&all, "all", false, "print every demonstration value with its verdict")
	return c
}

// parseValue maps a command-line argument to the Go value it stands for.
func parseValue(arg string) any {
	switch {
	case arg == "nil":
		return (*string)(nil)
	case strings.HasPrefix(arg, "[") && strings.HasSuffix(arg, "]"):
		inner := strings.TrimSpace(arg[1 : len(arg)-1])
		if inner == "" {
			return []string{}
		}
		return strings.Split(inner, ",")
	}
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	return arg
}
