package commands

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"BlogDesk/internal/cli/api"
	"BlogDesk/internal/cli/model"
	"BlogDesk/internal/config"
	"BlogDesk/internal/ui"
)

const (
	exportContainerID = "blogContent"
	bootstrapCSS      = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css"
	bootstrapIcons    = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css"
)

var articleTmpl = template.Must(template.New("article").Parse(`<article class="blog-detail">` +
	`<h1 class="mb-3">{{.Title}}</h1>` +
	`<p class="text-muted small">` +
	`{{if .CategoryName}}<span class="badge bg-primary me-2">{{.CategoryName}}</span>{{end}}` +
	`{{if .AuthorName}}<i class="bi bi-person"></i> {{.AuthorName}} · {{end}}` +
	`<i class="bi bi-calendar"></i> {{.Date}} · <i class="bi bi-clock"></i> {{.Minutes}} phút đọc · ` +
	`<i class="bi bi-eye"></i> {{.Views}}</p>` +
	`{{if .Banner}}<img class="img-fluid rounded mb-4" src="{{.Banner}}" alt="{{.Title}}">{{end}}` +
	`<div class="blog-content">{{.Content}}</div>` +
	`{{if .Related}}<h2 class="h5 mt-5">Bài viết liên quan</h2><ul class="list-unstyled">` +
	`{{range .Related}}<li><a href="{{.Href}}">{{.Title}}</a> <small class="text-muted">{{.Summary}}</small></li>{{end}}` +
	`</ul>{{end}}` +
	`</article>`))

type relatedLink struct {
	Href, Title, Summary string
}

type articleView struct {
	Title, CategoryName, AuthorName, Date, Banner string
	Minutes, Views                                int
	Content                                       template.HTML
	Related                                       []relatedLink
}

func newArticleView(b *model.BlogDetail) articleView {
	v := articleView{
		Title:        b.Title,
		CategoryName: b.CategoryName,
		AuthorName:   b.AuthorName,
		Date:         formatter().FormatDate(b.CreatedAt),
		Banner:       b.BannerImage,
		Minutes:      ui.ReadingTime(b.Content),
		Views:        b.ViewCount,
		// content is the CMS's own rendered HTML
		Content: template.HTML(b.Content),
	}
	for _, r := range b.RelatedBlogs {
		v.Related = append(v.Related, relatedLink{
			Href:    "/blog/" + r.Slug,
			Title:   r.Title,
			Summary: ui.Truncate(ui.StripHTML(r.Summary), 100),
		})
	}
	return v
}

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Render a published blog as a standalone HTML page" }
func (exportCmd) Usage() string       { return "export <slug> [-o file]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	slug, output, err := parseExportArgs(args)
	if err != nil {
		return err
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	doc := ui.NewDocument("BlogDesk")
	doc.AddStylesheet(bootstrapCSS)
	doc.AddStylesheet(bootstrapIcons)
	if err := doc.Append("", ui.Node{Tag: "main", ID: exportContainerID, Class: "container py-4"}); err != nil {
		return err
	}
	notify := ui.NewNotifier(doc, ui.Options{Logger: logger})
	defer notify.Close()

	ui.ShowLoading(doc, exportContainerID)
	res, fetchErr := s.public().BlogBySlug(ctx, slug)
	if fetchErr != nil {
		ui.ShowError(doc, exportContainerID, api.UserMessage(fetchErr))
		if _, err := notify.Show(ui.ToastError, "Không thể tải bài viết"); err != nil {
			logger.Warnw("toast", "error", err)
		}
	} else {
		if err := renderArticle(doc, &res.Data); err != nil {
			return err
		}
		if _, err := notify.Show(ui.ToastSuccess, "Đã xuất bài viết"); err != nil {
			logger.Warnw("toast", "error", err)
		}
	}

	if err := writeDocument(doc, output); err != nil {
		return err
	}
	if fetchErr != nil {
		return fetchErr
	}
	if output != "" {
		fmt.Fprintf(Out, "Đã ghi %s\n", output)
	}
	return nil
}

func renderArticle(doc *ui.Document, b *model.BlogDetail) error {
	if strings.TrimSpace(b.Content) == "" && b.Title == "" {
		ui.ShowEmpty(doc, exportContainerID, "")
		return nil
	}
	doc.SetTitle(b.Title)
	var buf strings.Builder
	if err := articleTmpl.Execute(&buf, newArticleView(b)); err != nil {
		return fmt.Errorf("render article: %w", err)
	}
	return doc.SetInnerHTML(exportContainerID, buf.String())
}

func writeDocument(doc *ui.Document, output string) error {
	var w io.Writer = Out
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// parseExportArgs accepts -o before or after the slug.
func parseExportArgs(args []string) (slug, output string, err error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&output, "o", "", "output file")
	if err := fs.Parse(args); err != nil {
		return "", "", ErrUsage
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return "", "", ErrUsage
	}
	slug = rest[0]
	if err := fs.Parse(rest[1:]); err != nil || fs.NArg() != 0 || strings.TrimSpace(slug) == "" {
		return "", "", ErrUsage
	}
	return slug, output, nil
}

func init() { RegisterCmd(exportCmd{}) }
