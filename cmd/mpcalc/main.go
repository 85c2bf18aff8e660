// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Command mpcalc evaluates arbitrary-precision integer expressions from
// the command line, a demonstration front end for package mpint.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gopherlibs/mpint"
	"github.com/gopherlibs/mpint/internal/config"
	"github.com/gopherlibs/mpint/mpalloc"
	"github.com/spf13/cobra"
)

func main() {
	var base int
	var useConfig bool
	var allocatorName string

	rootCmd := &cobra.Command{
		Use:   "mpcalc",
		Short: "mpcalc evaluates arbitrary-precision integer expressions",
	}

	evalCmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate a postfix expression of +, -, *, /, %, &, |, ^, ~",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(useConfig)
			if err != nil {
				return err
			}
			if base == 0 {
				base = cfg.Calc.DefaultBase
			}
			if allocatorName == "" {
				allocatorName = cfg.Calc.Allocator
			}

			if err := applyAllocator(allocatorName); err != nil {
				return err
			}

			result, err := evalPostfix(args, base)
			if err != nil {
				return err
			}
			text := result.Text(base)
			if cfg.Display.Uppercase {
				text = strings.ToUpper(text)
			}
			fmt.Println(text)
			return nil
		},
	}
	evalCmd.Flags().IntVarP(&base, "base", "b", 0, "Numeral base for input and output (2-36); 0 uses config default")
	evalCmd.Flags().BoolVar(&useConfig, "config", true, "Load mpcalc.toml from the user config directory")
	evalCmd.Flags().StringVar(&allocatorName, "allocator", "", "Limb allocator: gc or pooled; empty uses config default")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive postfix-expression REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(useConfig)
			if err != nil {
				return err
			}
			if base == 0 {
				base = cfg.Calc.DefaultBase
			}
			if allocatorName == "" {
				allocatorName = cfg.Calc.Allocator
			}
			if err := applyAllocator(allocatorName); err != nil {
				return err
			}
			return runRepl(base, cfg.Display.Uppercase)
		},
	}
	replCmd.Flags().IntVarP(&base, "base", "b", 0, "Numeral base for input and output (2-36); 0 uses config default")
	replCmd.Flags().BoolVar(&useConfig, "config", true, "Load mpcalc.toml from the user config directory")
	replCmd.Flags().StringVar(&allocatorName, "allocator", "", "Limb allocator: gc or pooled; empty uses config default")

	rootCmd.AddCommand(evalCmd, replCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveConfig(useConfig bool) (*config.Config, error) {
	if !useConfig {
		return config.Default(), nil
	}
	return config.Load()
}

func applyAllocator(name string) error {
	switch name {
	case "", "gc":
		mpalloc.SetDefault(mpalloc.GC{})
	case "pooled":
		mpalloc.SetDefault(mpalloc.NewPooled())
	default:
		return fmt.Errorf("unknown allocator %q: use gc or pooled", name)
	}
	return nil
}

// evalPostfix evaluates a reverse-Polish sequence of numerals and the
// operators +, -, *, /, %, &, |, ^ (binary) and ~ (unary), each its own
// argument, against a stack of *mpint.Int.
func evalPostfix(tokens []string, base int) (*mpint.Int, error) {
	var stack []*mpint.Int

	pop := func() (*mpint.Int, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("stack underflow")
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/", "%", "&", "|", "^":
			b, err := pop()
			if err != nil {
				return nil, err
			}
			a, err := pop()
			if err != nil {
				return nil, err
			}
			r, err := applyBinary(tok, a, b)
			if err != nil {
				return nil, err
			}
			stack = append(stack, r)
		case "~":
			a, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, new(mpint.Int).Not(a))
		default:
			n, ok := new(mpint.Int).SetString(tok, base)
			if !ok {
				return nil, fmt.Errorf("invalid numeral %q in base %d", tok, base)
			}
			stack = append(stack, n)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("expression left %d values on the stack, want 1", len(stack))
	}
	return stack[0], nil
}

func applyBinary(op string, a, b *mpint.Int) (*mpint.Int, error) {
	r := new(mpint.Int)
	switch op {
	case "+":
		return r.Add(a, b), nil
	case "-":
		return r.Sub(a, b), nil
	case "*":
		return r.Mul(a, b), nil
	case "/":
		return r.Quo(a, b)
	case "%":
		return r.Mod(a, b)
	case "&":
		return r.And(a, b), nil
	case "|":
		return r.Or(a, b), nil
	case "^":
		return r.Xor(a, b), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

func runRepl(base int, uppercase bool) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("mpcalc REPL — postfix notation, blank line or Ctrl-D to quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		result, err := evalPostfix(strings.Fields(line), base)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		text := result.Text(base)
		if uppercase {
			text = strings.ToUpper(text)
		}
		fmt.Println(text)
	}
	return scanner.Err()
}
