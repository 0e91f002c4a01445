package handlers

import (
	"net/http"

	"github.com/BokGosha/schedule-coursework/internal/ics"
	"github.com/BokGosha/schedule-coursework/internal/session"
)

// ExportICS serves the aggregated event set as an iCalendar feed.
func ExportICS(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := sess.Current()
		if !ok {
			var err error
			snap, err = sess.Refresh(r.Context())
			if err != nil {
				writeEngineError(w, err)
				return
			}
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
		w.Write([]byte(ics.Export(snap.Events)))
	}
}
