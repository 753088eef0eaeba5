package ui

import (
	"html/template"
	"strings"
)

const (
	// DefaultErrorMessage is shown by ShowError when no message is given.
	DefaultErrorMessage = "Có lỗi xảy ra"
	// DefaultEmptyMessage is shown by ShowEmpty when no message is given.
	DefaultEmptyMessage = "Không có dữ liệu"
)

var stateTmpl = template.Must(template.New("loading").Parse(
	`<div class="text-center py-5"><div class="spinner-border" role="status">` +
		`<span class="visually-hidden">Đang tải...</span></div></div>`))

func init() {
	template.Must(stateTmpl.New("error").Parse(
		`<div class="alert alert-danger" role="alert"><i class="bi bi-exclamation-triangle"></i> {{.}}</div>`))
	template.Must(stateTmpl.New("empty").Parse(
		`<div class="alert alert-info" role="alert"><i class="bi bi-info-circle"></i> {{.}}</div>`))
}

// fill replaces the container's contents with a state fragment. A missing container is not
// an error; the call does nothing and reports false.
func fill(doc *Document, containerID, name, msg string) bool {
	if doc == nil || !doc.Has(containerID) {
		return false
	}
	var b strings.Builder
	if err := stateTmpl.ExecuteTemplate(&b, name, msg); err != nil {
		return false
	}
	return doc.SetInnerHTML(containerID, b.String()) == nil
}

// ShowLoading puts a spinner in the container.
func ShowLoading(doc *Document, containerID string) bool {
	return fill(doc, containerID, "loading", "")
}

// ShowError puts an error alert in the container. An empty msg shows DefaultErrorMessage.
func ShowError(doc *Document, containerID, msg string) bool {
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return fill(doc, containerID, "error", msg)
}

// ShowEmpty puts an informational "nothing here" alert in the container.
func ShowEmpty(doc *Document, containerID, msg string) bool {
	if msg == "" {
		msg = DefaultEmptyMessage
	}
	return fill(doc, containerID, "empty", msg)
}
