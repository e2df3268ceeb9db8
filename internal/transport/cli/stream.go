package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StreamSource reads newline-terminated lines from a plain stream, for
// piped input and scripts.
type StreamSource struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

// NewStreamSource reads from in and writes prompts to out. A nil out
// suppresses prompts.
func NewStreamSource(in io.Reader, out io.Writer) *StreamSource {
	return &StreamSource{
		in:  in,
		r:   bufio.NewReader(in),
		out: out,
	}
}

func (s *StreamSource) ReadLine(prompt string) (string, error) {
	if s.out != nil && prompt != "" {
		fmt.Fprint(s.out, prompt)
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		// last line without a terminator
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (s *StreamSource) Close() error {
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
