package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/lex/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartRunsUntilEOF(t *testing.T) {
	var out bytes.Buffer
	c := console.New(console.WithOutput(&out), console.WithBanner(""), console.WithPrompt(""))

	var got []string
	c.Register("say", true, func(ctx context.Context, args string) {
		got = append(got, args)
	})

	s := NewSession(c, NewStreamSource(strings.NewReader("say one\nsay two\nnope\n"), nil))
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Shutdown(context.Background()))

	assert.Equal(t, []string{"one", "two"}, got)
	assert.Equal(t, "Command 'nope' not recognized\n", out.String())
	assert.Len(t, c.History().All(), 3)
}
