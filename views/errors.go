package views

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPage renders a failed page request for the browser
func ErrorPage(code int, message, requestID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		ew.printf(`<title>%d %s</title>`, code, templ.EscapeString(http.StatusText(code)))
		ew.printf(`<style>%s</style></head><body>`, styles)
		ew.printf(`<header><h1><a href="/">Gallery Archive</a></h1></header><main>`)
		ew.printf(`<h2>%d %s</h2>`, code, templ.EscapeString(http.StatusText(code)))
		ew.printf(`<p class="error">%s</p>`, templ.EscapeString(message))
		if requestID != "" {
			ew.printf(`<p class="request-id">Request ID: <code>%s</code></p>`, templ.EscapeString(requestID))
		}
		ew.printf(`<p><a href="/">Back to the gallery</a></p></main></body></html>`)
		return ew.err
	})
}
