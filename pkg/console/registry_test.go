package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	var called []string
	first := func(ctx context.Context, args string) { called = append(called, "first:"+args) }
	second := func(ctx context.Context, args string) { called = append(called, "second:"+args) }

	require.True(t, r.Register("greet", true, first))
	assert.False(t, r.Register("greet", false, second))
	assert.Equal(t, []string{"greet"}, r.Names())

	var out bytes.Buffer
	d := NewDispatcher(r, &out, nil)

	// the first record stays, argsRequired included
	assert.Equal(t, UsageShown, d.Execute(context.Background(), "greet"))
	assert.Equal(t, Invoked, d.Execute(context.Background(), "greet Ada"))

	assert.Equal(t, []string{"first:Ada"}, called)
	assert.Equal(t, "Usage: greet\n", out.String())
}

func TestRegistry_Usage(t *testing.T) {
	tests := []struct {
		name     string
		register bool
		setUsage string
		want     string
	}{
		{
			name:     "unset usage is empty",
			register: true,
			want:     "",
		},
		{
			name:     "usage set after registration",
			register: true,
			setUsage: "greet <name>",
			want:     "greet <name>",
		},
		{
			name:     "unknown command ignores set",
			register: false,
			setUsage: "greet <name>",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if tt.register {
				r.Register("greet", true, func(ctx context.Context, args string) {})
			}
			if tt.setUsage != "" {
				r.SetUsage("greet", tt.setUsage)
			}

			assert.Equal(t, tt.want, r.Usage("greet"))
			assert.Equal(t, tt.register, r.Exists("greet"))
		})
	}
}

func TestRegistry_NamesKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context, args string) {}

	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(name, false, noop)
	}
	r.Register("alpha", false, noop)

	names := r.Names()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)

	names[0] = "changed"
	assert.Equal(t, "zeta", r.Names()[0])
}
