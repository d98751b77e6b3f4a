package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

var progressEvents = []interfaces.EventType{
	interfaces.EventPageFetched,
	interfaces.EventPageCapReached,
	interfaces.EventHotelEnriched,
}

// subscribeProgress prints pipeline progress to w and returns a function that detaches it
func subscribeProgress(eventService interfaces.EventService, w io.Writer) func() {
	handler := progressPrinter(w)

	for _, eventType := range progressEvents {
		_ = eventService.Subscribe(eventType, handler)
	}

	return func() {
		for _, eventType := range progressEvents {
			_ = eventService.Unsubscribe(eventType, handler)
		}
	}
}

func progressPrinter(w io.Writer) interfaces.EventHandler {
	return func(ctx context.Context, event interfaces.Event) error {
		data, ok := event.Payload.(map[string]interface{})
		if !ok {
			return nil
		}

		switch event.Type {
		case interfaces.EventPageFetched:
			fmt.Fprintf(w, "  fetched %v page %v (%v results)\n", data["type"], data["page"], data["results"])
		case interfaces.EventPageCapReached:
			fmt.Fprintf(w, "  stopped %v after %v pages\n", data["type"], data["max_pages"])
		case interfaces.EventHotelEnriched:
			fmt.Fprintf(w, "  found %v room prices for %v\n", data["rooms"], data["hotel"])
		}
		return nil
	}
}
