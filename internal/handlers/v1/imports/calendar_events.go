package imports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// CalendarEvent is one import span in calendar feed format.
type CalendarEvent struct {
	Title string `json:"title" doc:"Event title"`
	Start string `json:"start" doc:"First covered date"`
	End   string `json:"end" doc:"Last covered date"`
	Color string `json:"color" doc:"Display color"`
}

type CalendarEventsOutput struct {
	Body []CalendarEvent
}

type calendarEventLister interface {
	CalendarEvents(ctx context.Context) ([]service.CalendarEvent, error)
}

// CalendarEventsHandler handles GET /v1/calendar/events.
type CalendarEventsHandler struct {
	ImportService calendarEventLister
}

func NewCalendarEventsHandler(svc calendarEventLister) *CalendarEventsHandler {
	return &CalendarEventsHandler{ImportService: svc}
}

func (h *CalendarEventsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-calendar-events",
		Method:      http.MethodGet,
		Path:        "/v1/calendar/events",
		Summary:     "Import calendar",
		Description: "Date spans covered by each import, for a calendar view.",
		Tags:        []string{"Imports"},
	}, h.handle)
}

func (h *CalendarEventsHandler) handle(ctx context.Context, _ *struct{}) (*CalendarEventsOutput, error) {
	events, err := h.ImportService.CalendarEvents(ctx)
	if err != nil {
		return nil, shared.ServiceError("failed to list calendar events", err)
	}

	out := &CalendarEventsOutput{Body: make([]CalendarEvent, len(events))}
	for i, ev := range events {
		out.Body[i] = CalendarEvent{
			Title: ev.Title,
			Start: ev.Start.Format(shared.DateLayout),
			End:   ev.End.Format(shared.DateLayout),
			Color: ev.Color,
		}
	}
	return out, nil
}
