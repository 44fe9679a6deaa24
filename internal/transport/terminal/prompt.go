package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads player input one line at a time.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	columns int
}

func NewPrompter(in io.Reader, out io.Writer, columns int) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		columns: columns,
	}
}

// ReadPlayerName asks player n for a name until a non-blank one is given.
func (p *Prompter) ReadPlayerName(n int) (string, error) {
	for {
		fmt.Fprintf(p.out, "Player %d, please enter your name: ", n)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
}

// ReadPlayers asks for both names, with a blank line in between.
func (p *Prompter) ReadPlayers() ([2]string, error) {
	var names [2]string
	for i := range names {
		name, err := p.ReadPlayerName(i + 1)
		if err != nil {
			return names, err
		}
		names[i] = name
		fmt.Fprintln(p.out)
	}
	return names, nil
}

// RequestColumn keeps asking until the answer is a column number on the
// board. Whether the column still has room is up to the board.
func (p *Prompter) RequestColumn(playerName string) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s, in which column do you want to play? ", playerName)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			fmt.Fprint(p.out, "Please enter a column number.\n\n")
		case !isDigits(input):
			fmt.Fprintf(p.out, "%s is not a nonnegative integer.\n\n", input)
		default:
			column, err := strconv.Atoi(input)
			if err != nil || column >= p.columns {
				fmt.Fprintf(p.out, "%s is not between 0 and %d.\n\n", input, p.columns-1)
				continue
			}
			return column, nil
		}
	}
}

// readLine returns io.EOF only when nothing was read before the end of input.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
