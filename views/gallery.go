package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"gallery-archive/models"

	"github.com/a-h/templ"
)

// GalleryPage is everything the HTML gallery needs to render one page
type GalleryPage struct {
	Items     []models.GalleryItem
	Query     models.GalleryQuery
	Usernames []string
	HasNext   bool
}

// Gallery renders the archive browser
func Gallery(page GalleryPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		ew.printf(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		ew.printf(`<title>%s</title>`, templ.EscapeString(title(page.Query)))
		ew.printf(`<style>%s</style></head><body>`, styles)
		ew.printf(`<header><h1><a href="/">Gallery Archive</a></h1></header><main>`)

		searchForm(ew, page)

		if len(page.Items) == 0 {
			ew.printf(`<p class="empty">No submissions found.</p>`)
		} else {
			ew.printf(`<ul class="grid">`)
			for _, item := range page.Items {
				galleryItem(ew, item)
			}
			ew.printf(`</ul>`)
		}

		pagination(ew, page)

		ew.printf(`</main></body></html>`)
		return ew.err
	})
}

func title(q models.GalleryQuery) string {
	switch {
	case q.Username != "" && q.GalleryType == models.GalleryTypeFavorites:
		return "Favorites of " + q.Username
	case q.Username != "":
		return "Gallery of " + q.Username
	default:
		return "Gallery Archive"
	}
}

func searchForm(ew *errWriter, page GalleryPage) {
	q := page.Query

	ew.printf(`<form class="search" method="get" action="/">`)
	ew.printf(`<input type="search" name="search" placeholder="Search" value="%s">`, templ.EscapeString(q.SearchTerm))

	ew.printf(`<input type="text" name="username" list="usernames" placeholder="Artist" value="%s">`, templ.EscapeString(q.Username))
	ew.printf(`<datalist id="usernames">`)
	for _, name := range page.Usernames {
		ew.printf(`<option value="%s">`, templ.EscapeString(name))
	}
	ew.printf(`</datalist>`)

	ew.printf(`<select name="gallery_type">`)
	option(ew, string(models.GalleryTypeSubmissions), "Submissions", string(q.GalleryType))
	option(ew, string(models.GalleryTypeFavorites), "Favorites", string(q.GalleryType))
	ew.printf(`</select>`)

	ew.printf(`<select name="sort">`)
	for _, field := range models.SortFields {
		option(ew, field, field, q.SortField)
	}
	ew.printf(`</select>`)

	ew.printf(`<select name="order">`)
	option(ew, "desc", "Descending", q.SortOrder)
	option(ew, "asc", "Ascending", q.SortOrder)
	ew.printf(`</select>`)

	ew.printf(`<input type="hidden" name="limit" value="%d">`, q.Limit)
	ew.printf(`<button type="submit">Go</button></form>`)
}

func option(ew *errWriter, value, label, selected string) {
	attr := ""
	if value == selected {
		attr = " selected"
	}
	ew.printf(`<option value="%s"%s>%s</option>`, templ.EscapeString(value), attr, templ.EscapeString(label))
}

func galleryItem(ew *errWriter, item models.GalleryItem) {
	ew.printf(`<li class="item">`)
	ew.printf(`<a class="title" href="/api/submissions/%s">%s</a>`,
		templ.EscapeString(url.PathEscape(item.ID)), templ.EscapeString(item.Title))
	ew.printf(`<span class="artist"><a href="%s">%s</a></span>`,
		templ.EscapeString(pageURL(models.GalleryQuery{Username: item.Username})), templ.EscapeString(item.Username))
	if item.DateUploaded != "" {
		ew.printf(`<time>%s</time>`, templ.EscapeString(item.DateUploaded))
	}
	if item.ContentURL != "" {
		ew.printf(`<a class="source" href="%s" rel="noreferrer">%s</a>`,
			templ.EscapeString(string(templ.URL(item.ContentURL))), templ.EscapeString(item.ContentName))
	}
	if !item.IsContentSaved {
		ew.printf(`<span class="badge">not saved</span>`)
	}
	ew.printf(`</li>`)
}

func pagination(ew *errWriter, page GalleryPage) {
	q := page.Query
	if q.Offset == 0 && !page.HasNext {
		return
	}

	ew.printf(`<nav class="pages">`)
	if q.Offset > 0 {
		prev := q
		prev.Offset = max(q.Offset-q.Limit, 0)
		ew.printf(`<a rel="prev" href="%s">Previous</a>`, templ.EscapeString(pageURL(prev)))
	}
	if page.HasNext {
		next := q
		next.Offset = q.Offset + q.Limit
		ew.printf(`<a rel="next" href="%s">Next</a>`, templ.EscapeString(pageURL(next)))
	}
	ew.printf(`</nav>`)
}

// pageURL builds the gallery link for q, leaving out default values
func pageURL(q models.GalleryQuery) string {
	v := url.Values{}
	if q.Username != "" {
		v.Set("username", q.Username)
	}
	if q.SearchTerm != "" {
		v.Set("search", q.SearchTerm)
	}
	if q.GalleryType != "" {
		v.Set("gallery_type", string(q.GalleryType))
	}
	if q.SortField != "" {
		v.Set("sort", q.SortField)
	}
	if q.SortOrder != "" {
		v.Set("order", q.SortOrder)
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

const styles = `body{font-family:system-ui,sans-serif;margin:0;background:#f6f6f4;color:#222}
header{padding:1rem 2rem;background:#2d3142}header a{color:#fff;text-decoration:none}
main{padding:1rem 2rem}.search{display:flex;gap:.5rem;flex-wrap:wrap;margin-bottom:1rem}
.grid{list-style:none;padding:0;display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:1rem}
.item{background:#fff;border-radius:6px;padding:.75rem;display:flex;flex-direction:column;gap:.25rem}
.title{font-weight:600}.badge{font-size:.75rem;color:#a33}.pages{display:flex;gap:1rem;margin-top:1rem}`
