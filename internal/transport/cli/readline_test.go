package cli

import (
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipedReadline drives a readline instance from a pipe as if it were a terminal.
func newPipedReadline(t *testing.T, cfg SourceConfig) (*ReadlineSource, *io.PipeWriter) {
	t.Helper()

	pr, pw := io.Pipe()

	conf := newReadlineConfig(cfg)
	conf.Stdin = pr
	conf.Stdout = io.Discard
	conf.Stderr = io.Discard
	conf.FuncIsTerminal = func() bool { return true }
	conf.FuncMakeRaw = func() error { return nil }
	conf.FuncExitRaw = func() error { return nil }
	conf.FuncGetWidth = func() int { return 80 }
	conf.FuncOnWidthChanged = func(func()) {}

	rl, err := readline.NewEx(conf)
	require.NoError(t, err)

	src := &ReadlineSource{rl: rl}
	t.Cleanup(func() {
		pw.Close()
		src.Close()
	})
	return src, pw
}

func TestReadlineSource_Interrupt(t *testing.T) {
	src, pw := newPipedReadline(t, SourceConfig{HistoryLimit: -1})

	go func() {
		for _, chunk := range []string{"\x03", "abc\x03", "help\n"} {
			if _, err := pw.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}()

	// Ctrl+C over an empty line ends input
	line, err := src.ReadLine("lex> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)

	// Ctrl+C over typed text drops the text
	line, err = src.ReadLine("lex> ")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = src.ReadLine("lex> ")
	require.NoError(t, err)
	assert.Equal(t, "help", line)
}

func TestNewCompleter(t *testing.T) {
	names := []string{"ask", "greet", "list"}

	tests := []struct {
		name     string
		helpName string
		line     string
		want     []string
	}{
		{name: "command name", helpName: "ask", line: "gr", want: []string{"eet "}},
		{name: "names after help", helpName: "ask", line: "ask g", want: []string{"reet "}},
		{name: "nothing after other commands", helpName: "ask", line: "list g", want: nil},
		{name: "no help command", helpName: "", line: "ask g", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := newCompleter(names, tt.helpName)

			got, _ := completer.Do([]rune(tt.line), len([]rune(tt.line)))

			var gotStr []string
			for _, r := range got {
				gotStr = append(gotStr, string(r))
			}
			assert.Equal(t, tt.want, gotStr)
		})
	}
}
