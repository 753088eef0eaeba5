package commands

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportRoute = "GET /api/public/blogs/slug/{slug}"

func TestExport_WritesArticlePage(t *testing.T) {
	f := newFakeCMS(t, map[string]cannedReply{
		exportRoute: ok(`{"success":true,"data":{"blogId":7,"title":"Học Go","slug":"hoc-go",` +
			`"content":"<p>Xin chào</p>","categoryName":"Go","authorName":"An","viewCount":12,` +
			`"createdAt":"2026-10-01T09:00:00",` +
			`"relatedBlogs":[{"blogId":8,"title":"Goroutine","slug":"goroutine","summary":"<b>Chạy</b> song song"}]}}`),
	})
	cfg := testConfig(t, f.srv.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, (exportCmd{}).Run(context.Background(), cfg, []string{"hoc-go"}))
	})
	assert.Equal(t, "/api/public/blogs/slug/hoc-go", f.last(t).Path)
	assert.Contains(t, out, "<title>Học Go</title>")
	assert.Contains(t, out, `<main id="blogContent" class="container py-4">`)
	assert.Contains(t, out, "<p>Xin chào</p>")
	assert.Contains(t, out, `<a href="/blog/goroutine">Goroutine</a>`)
	assert.Contains(t, out, "Chạy song song")
	assert.Contains(t, out, "1 tháng 10, 2026")
	assert.Contains(t, out, `id="toastContainer"`)
	assert.Contains(t, out, "Đã xuất bài viết")
	assert.NotContains(t, out, "spinner-border")
}

func TestExport_ErrorPageAndExitError(t *testing.T) {
	f := newFakeCMS(t, map[string]cannedReply{
		exportRoute: {status: http.StatusNotFound, body: `{"success":false,"message":"Không tìm thấy bài viết"}`},
	})
	cfg := testConfig(t, f.srv.URL)

	var runErr error
	out := withStdoutCapture(t, func() {
		runErr = (exportCmd{}).Run(context.Background(), cfg, []string{"missing"})
	})
	require.Error(t, runErr)
	assert.Contains(t, out, "alert-danger")
	assert.Contains(t, out, "Không tìm thấy bài viết")
	assert.Contains(t, out, "Không thể tải bài viết")
	assert.Contains(t, out, "bg-danger")
}

func TestExport_OutputFile(t *testing.T) {
	f := newFakeCMS(t, map[string]cannedReply{
		exportRoute: ok(`{"success":true,"data":{"blogId":7,"title":"Học Go","slug":"hoc-go","content":"<p>x</p>"}}`),
	})
	cfg := testConfig(t, f.srv.URL)
	target := filepath.Join(t.TempDir(), "post.html")

	out := withStdoutCapture(t, func() {
		require.NoError(t, (exportCmd{}).Run(context.Background(), cfg, []string{"hoc-go", "-o", target}))
	})
	assert.Equal(t, "Đã ghi "+target+"\n", out)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<title>Học Go</title>")
}

func TestParseExportArgs(t *testing.T) {
	slug, output, err := parseExportArgs([]string{"-o", "a.html", "hoc-go"})
	require.NoError(t, err)
	assert.Equal(t, "hoc-go", slug)
	assert.Equal(t, "a.html", output)

	slug, output, err = parseExportArgs([]string{"hoc-go", "-o", "b.html"})
	require.NoError(t, err)
	assert.Equal(t, "hoc-go", slug)
	assert.Equal(t, "b.html", output)

	for _, args := range [][]string{nil, {"-o"}, {"a", "b"}, {"-x", "a"}, {" "}} {
		_, _, err := parseExportArgs(args)
		assert.ErrorIs(t, err, ErrUsage, "%v", args)
	}
}
