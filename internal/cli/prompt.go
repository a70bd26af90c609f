package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInvalidChoice = errors.New("invalid choice")

// prompter reads line-oriented answers.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints prompt and returns the trimmed answer. A final line without a
// newline is accepted; an empty input at EOF is returned as io.EOF.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// yesNo asks a 1/0 question. Non-numeric answers yield errInvalidChoice.
func (p *prompter) yesNo(prompt string) (bool, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return false, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return false, errInvalidChoice
	}
	return n != 0, nil
}
