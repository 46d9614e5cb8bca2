// Package prompt implements the line-based questions the CLI asks on a
// terminal: the dimension-mismatch confirmation and the interactive flow.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/sparsemat/sparse"
)

// MismatchQuestion is asked when Add/Sub operands have different shapes.
const MismatchQuestion = "Matrices' dimensions don't match. Do you wish to continue?(y/n): "

const yesNoRetry = "Please choose a valid answer (y/n): "

// Prompter reads answers line by line from in and writes questions to out.
// It is not safe for concurrent use.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	warn *color.Color
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		warn: color.New(color.FgYellow, color.Bold),
	}
}

// Ask prints question and returns the next input line, trimmed.
// It returns io.EOF once input is exhausted and nothing was typed.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Choose asks question and keeps asking retry until the answer is one of
// valid. Answers are compared case-insensitively and returned lowercased.
func (p *Prompter) Choose(question, retry string, valid ...string) (string, error) {
	ans, err := p.Ask(question)
	for {
		if err != nil {
			return "", err
		}
		ans = strings.ToLower(ans)
		if slices.Contains(valid, ans) {
			return ans, nil
		}
		ans, err = p.Ask(retry)
	}
}

// YesNo asks a y/n question until it gets one of the two answers.
func (p *Prompter) YesNo(question string) (bool, error) {
	ans, err := p.Choose(p.warn.Sprint(question), yesNoRetry, "y", "n")
	if err != nil {
		return false, err
	}

	return ans == "y", nil
}

// Confirmer returns a sparse.Confirmer asking MismatchQuestion.
// Closed input counts as "n".
func (p *Prompter) Confirmer() sparse.Confirmer {
	return func(a, b *sparse.Matrix) bool {
		fmt.Fprintf(p.out, "%s vs %s\n", a, b)
		ok, err := p.YesNo(MismatchQuestion)
		if err != nil {
			return false
		}
		if !ok {
			fmt.Fprintln(p.out, "Operation cancelled!")
		}
		return ok
	}
}
