package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/queuesim/pkg/datastructs/stack"
)

const badInput = "BAD INPUT"

func newToBeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tobe",
		Short: "Push words from stdin onto a stack, popping on '-'",
		Example: "  echo 'to be or not to - be - - that - - - is' | queuesim tobe\n" +
			"  to be not that or be",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return toBe(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// toBe reads whitespace separated words from r. A "-" pops the stack and
// writes the popped word to w; anything else is pushed. Popping an empty
// stack writes "BAD INPUT" and stops.
func toBe(r io.Reader, w io.Writer) error {
	s := stack.New[string]()
	var popped []string

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word := sc.Text()
		if word != "-" {
			s.Push(word)
			continue
		}
		item, err := s.Pop()
		if errors.Is(err, stack.ErrUnderflow) {
			popped = append(popped, badInput)
			break
		}
		popped = append(popped, item)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	_, err := io.WriteString(w, strings.Join(popped, " ")+"\n")
	return errors.Wrap(err, "write output")
}
