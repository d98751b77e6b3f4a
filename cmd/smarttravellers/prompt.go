package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers to interactive questions, one line each
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints label and returns the trimmed answer. io.EOF is returned only when
// the input ends before any text was read.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// valueOr returns value when set, otherwise asks for it
func (p *prompter) valueOr(value, label string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	return p.ask(label)
}
