package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализация IO поверх потоков процесса
type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	in     io.Reader
}

// NewStdio IO на os.Stdin / os.Stdout
func NewStdio() IO {
	return NewStream(os.Stdin, os.Stdout)
}

// NewStream IO на произвольных потоках. Пароль читается без эха, только
// если in является терминалом.
func NewStream(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: in, out: out, reader: bufio.NewReader(in)}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)

	f, ok := s.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		// не терминал (pipe, тесты): читаем строку как есть
		pw, err := s.reader.ReadString('\n')
		if err != nil && (err != io.EOF || pw == "") {
			return "", err
		}
		return strings.TrimRight(pw, "\r\n"), nil
	}

	pwBytes, err := term.ReadPassword(int(f.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
