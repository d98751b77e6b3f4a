package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

func TestDietKeyword(t *testing.T) {
	tests := map[string]string{
		"1":       "veg",
		"2":       "non veg",
		" 3 ":     "vegan",
		"4":       "jain",
		"Vegan":   "vegan",
		"non veg": "non veg",
		"":        "",
		"9":       "",
		"keto":    "",
	}

	for choice, want := range tests {
		assert.Equal(t, want, dietKeyword(choice), "choice %q", choice)
	}
}

func TestBudgetTier(t *testing.T) {
	tests := map[string]int{
		"1":     1,
		"4":     4,
		" 2 ":   2,
		"":      0,
		"0":     0,
		"5":     0,
		"cheap": 0,
	}

	for choice, want := range tests {
		assert.Equal(t, want, budgetTier(choice), "choice %q", choice)
	}
}

func TestResolveModeAndTransit(t *testing.T) {
	assert.Equal(t, "walking", resolveMode("1"))
	assert.Equal(t, "driving", resolveMode("Driving"))
	assert.Equal(t, "transit", resolveMode(""))
	assert.Equal(t, "transit", resolveMode("teleport"))

	assert.Equal(t, "subway", resolveTransit("2"))
	assert.Equal(t, "subway", resolveTransit("metro"))
	assert.Equal(t, "train", resolveTransit("train"))
	assert.Equal(t, "bus", resolveTransit("ferry"))
	assert.Empty(t, resolveTransit(""))
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("  Jaipur \nlast line"), &out)

	answer, err := p.ask("Enter city: ")
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", answer)
	assert.Equal(t, "Enter city: ", out.String())

	answer, err = p.ask("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "last line", answer)

	_, err = p.ask("Done: ")
	assert.ErrorIs(t, err, io.EOF)

	value, err := p.valueOr("Goa", "unused: ")
	require.NoError(t, err)
	assert.Equal(t, "Goa", value)
}

func TestProgressPrinter(t *testing.T) {
	var out bytes.Buffer
	handler := progressPrinter(&out)
	ctx := context.Background()

	require.NoError(t, handler(ctx, interfaces.Event{
		Type:    interfaces.EventPageFetched,
		Payload: map[string]interface{}{"type": "bar", "page": 2, "results": 20},
	}))
	require.NoError(t, handler(ctx, interfaces.Event{
		Type:    interfaces.EventPageCapReached,
		Payload: map[string]interface{}{"type": "bar", "max_pages": 5},
	}))
	require.NoError(t, handler(ctx, interfaces.Event{
		Type:    interfaces.EventHotelEnriched,
		Payload: map[string]interface{}{"hotel": "Rambagh Palace", "rooms": 3},
	}))
	require.NoError(t, handler(ctx, interfaces.Event{Type: interfaces.EventPageFetched, Payload: "ignored"}))

	assert.Equal(t,
		"  fetched bar page 2 (20 results)\n  stopped bar after 5 pages\n  found 3 room prices for Rambagh Palace\n",
		out.String())
}
