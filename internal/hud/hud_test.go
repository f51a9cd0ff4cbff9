package hud

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slalter/dreamscape/internal/commands"
)

func TestSubmitForwardsNaturalLanguage(t *testing.T) {
	h := New(commands.NewRegistry())
	var sent []string
	h.OnSubmit = func(text string) { sent = append(sent, text) }

	h.Submit("make a glowing forest")
	h.Submit("  padded  ")

	assert.Equal(t, []string{"make a glowing forest", "padded"}, sent)
}

func TestSubmitRunsSlashCommands(t *testing.T) {
	reg := commands.NewRegistry()
	ran := false
	reg.Register("grid", flag.NewFlagSet("grid", flag.ContinueOnError), func() error {
		ran = true
		return nil
	})
	h := New(reg)
	var sent []string
	h.OnSubmit = func(text string) { sent = append(sent, text) }

	h.Submit("/grid")

	assert.True(t, ran)
	assert.Empty(t, sent, "commands never reach the backend")
}

func TestUnknownCommandLandsInFeedAsError(t *testing.T) {
	h := New(commands.NewRegistry())
	h.Submit("/bogus")
	// The echoed input line plus the error line.
	assert.Equal(t, 2, h.FeedLen())
}

func TestFeedIsBounded(t *testing.T) {
	h := New(commands.NewRegistry())
	for i := 0; i < maxFeedLines+50; i++ {
		h.Narrate("line")
	}
	assert.Equal(t, maxFeedLines, h.FeedLen())
}

func TestStatusAndErrors(t *testing.T) {
	h := New(commands.NewRegistry())
	h.SetStatus("Imagining your world...")
	h.SetStatus("Ready")
	assert.Equal(t, "Ready", h.status, "status replaces, never appends")

	h.Error("backend exploded")
	assert.Equal(t, 1, h.FeedLen())
	assert.True(t, h.feed[0].isErr)
}
