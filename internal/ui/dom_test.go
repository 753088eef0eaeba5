package ui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AppendAndQuery(t *testing.T) {
	doc := NewDocument("Bài viết")
	require.NoError(t, doc.Append("", Node{Tag: "main", ID: "content", Class: "container"}))
	require.NoError(t, doc.Append("content", Node{Tag: "section", ID: "a", Inner: "<p>one</p>"}))
	require.NoError(t, doc.Append("content", Node{Tag: "section", ID: "b", Attrs: map[string]string{"data-x": "1"}}))

	assert.True(t, doc.Has("content"))
	assert.False(t, doc.Has("missing"))
	assert.False(t, doc.Has(""))
	assert.Equal(t, []string{"a", "b"}, doc.ChildIDs("content"))

	inner, err := doc.InnerHTML("a")
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>", inner)

	v, ok := doc.Attr("b", "data-x")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	cls, _ := doc.Attr("content", "class")
	assert.Equal(t, "container", cls)

	out := doc.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Bài viết</title>")
	assert.Contains(t, out, `<main id="content" class="container"><section id="a"><p>one</p></section><section id="b" data-x="1"></section></main>`)
}

func TestDocument_AppendErrors(t *testing.T) {
	doc := NewDocument("t")
	require.NoError(t, doc.Append("", Node{Tag: "div", ID: "x"}))

	err := doc.Append("nope", Node{Tag: "div"})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = doc.Append("", Node{Tag: "div", ID: "x"})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	assert.Error(t, doc.Append("", Node{}))
}

func TestDocument_SetInnerHTMLReplacesChildren(t *testing.T) {
	doc := NewDocument("t")
	require.NoError(t, doc.Append("", Node{Tag: "div", ID: "box", Inner: "<span id=\"old\">old</span>"}))
	assert.True(t, doc.Has("old"))

	require.NoError(t, doc.SetInnerHTML("box", `<em id="new">new</em>`))
	assert.False(t, doc.Has("old"))
	assert.True(t, doc.Has("new"), "ids inside parsed markup are addressable")

	require.NoError(t, doc.SetInnerHTML("box", ""))
	inner, err := doc.InnerHTML("box")
	require.NoError(t, err)
	assert.Empty(t, inner)

	assert.True(t, errors.Is(doc.SetInnerHTML("ghost", "x"), ErrNotFound))
	_, err = doc.InnerHTML("ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDocument_Remove(t *testing.T) {
	doc := NewDocument("t")
	require.NoError(t, doc.Append("", Node{Tag: "ul", ID: "list"}))
	require.NoError(t, doc.Append("list", Node{Tag: "li", ID: "i1"}))

	assert.True(t, doc.Remove("list"))
	assert.False(t, doc.Has("i1"))
	assert.False(t, doc.Remove("list"))
}

func TestDocument_EscapesAttributesAndText(t *testing.T) {
	doc := NewDocument(`<script>`)
	require.NoError(t, doc.Append("", Node{Tag: "div", ID: "q", Attrs: map[string]string{"title": `"quoted"`}}))
	out := doc.String()
	assert.Contains(t, out, "<title>&lt;script&gt;</title>")
	assert.Contains(t, out, `title="&#34;quoted&#34;"`)
}

func TestDocument_SetTitle(t *testing.T) {
	doc := NewDocument("cũ")
	doc.SetTitle("Mới")
	out := doc.String()
	assert.Contains(t, out, "<title>Mới</title>")
	assert.NotContains(t, out, "cũ")
}

func TestDocument_AddStylesheet(t *testing.T) {
	doc := NewDocument("t")
	doc.AddStylesheet("https://cdn.example/bootstrap.min.css")
	assert.Contains(t, doc.String(), `<link rel="stylesheet" href="https://cdn.example/bootstrap.min.css"/>`)
}

func TestDocument_ConcurrentAppend(t *testing.T) {
	doc := NewDocument("t")
	require.NoError(t, doc.Append("", Node{Tag: "div", ID: "root"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, doc.Append("root", Node{Tag: "p", ID: fmt.Sprintf("p%d", i)}))
			_ = doc.String()
		}(i)
	}
	wg.Wait()
	assert.Len(t, doc.ChildIDs("root"), 50)
}
