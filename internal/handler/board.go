package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/sumire/projects/internal/view"
)

// BoardHandler serves the board page and its live update stream.
type BoardHandler struct {
	board     *view.Board
	hub       *view.Hub
	keepAlive time.Duration
}

// NewBoardHandler creates a new BoardHandler. keepAlive is the interval of
// comment frames sent on idle event streams.
func NewBoardHandler(board *view.Board, hub *view.Hub, keepAlive time.Duration) *BoardHandler {
	return &BoardHandler{board: board, hub: hub, keepAlive: keepAlive}
}

// Page renders the full board.
func (h *BoardHandler) Page(c echo.Context) error {
	templ.Handler(h.board.Page()).ServeHTTP(c.Response(), c.Request())
	return nil
}

// Events streams re-rendered list fragments as Server-Sent Events until the
// client disconnects or the server shuts down.
func (h *BoardHandler) Events(c echo.Context) error {
	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// the page may have been rendered before changes that were published
	// ahead of this subscription
	current, err := h.board.Fragments(c.Request().Context())
	if err != nil {
		return fmt.Errorf("render board fragments: %w", err)
	}
	for _, e := range current {
		if err := writeEvent(w, e); err != nil {
			return fmt.Errorf("write event %s: %w", e.Name, err)
		}
	}
	w.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, e); err != nil {
				return fmt.Errorf("write event %s: %w", e.Name, err)
			}
			w.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return fmt.Errorf("write keep-alive: %w", err)
			}
			w.Flush()
		}
	}
}

// lineBreaks folds every SSE line terminator into \n.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func writeEvent(w io.Writer, e view.Event) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(e.Name)
	b.WriteByte('\n')
	for _, line := range strings.Split(lineBreaks.Replace(e.Data), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
