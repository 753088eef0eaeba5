package commands

import (
	"fmt"
	"strings"

	"BlogDesk/internal/cli/model"
	"BlogDesk/internal/ui"
)

// listTitleWidth is where list titles are truncated.
const listTitleWidth = 60

func formatter() ui.Formatter { return ui.Formatter{Now: now} }

func readingMinutes(b model.BlogListItem) int {
	if b.ReadingTime > 0 {
		return b.ReadingTime
	}
	return ui.ReadingTime(b.Summary)
}

func printBlogLine(b model.BlogListItem) {
	status := ""
	if b.Status != "" && b.Status != model.BlogPublished {
		status = "[" + string(b.Status) + "] "
	}
	when := formatter().FormatTimeAgo(b.CreatedAt)
	if when == "" {
		when = "-"
	}
	fmt.Fprintf(Out, "- [%d] %s%s  /%s  %s  %d phút đọc\n",
		b.BlogID, status, ui.Truncate(b.Title, listTitleWidth), b.Slug, when, readingMinutes(b))
}

func printBlogList(items []model.BlogListItem) {
	if len(items) == 0 {
		fmt.Fprintln(Out, ui.DefaultEmptyMessage)
		return
	}
	for _, b := range items {
		printBlogLine(b)
	}
}

func printBlogPage(p *model.Page[model.BlogListItem]) {
	printBlogList(p.Data)
	if len(p.Data) == 0 {
		return
	}
	fmt.Fprintf(Out, "Trang %d/%d, tổng %d bài\n", p.CurrentPage+1, p.TotalPages, p.TotalElements)
}

func printBlogDetail(b *model.BlogDetail) {
	f := formatter()
	fmt.Fprintf(Out, "%s\n", b.Title)
	fmt.Fprintf(Out, "id:         %d\n", b.BlogID)
	fmt.Fprintf(Out, "slug:       %s\n", b.Slug)
	if b.Status != "" {
		fmt.Fprintf(Out, "status:     %s\n", b.Status)
	}
	if b.CategoryName != "" {
		fmt.Fprintf(Out, "danh mục:   %s\n", b.CategoryName)
	}
	if b.AuthorName != "" {
		fmt.Fprintf(Out, "tác giả:    %s\n", b.AuthorName)
	}
	if b.CreatedAt != "" {
		fmt.Fprintf(Out, "ngày đăng:  %s (%s)\n", f.FormatDate(b.CreatedAt), f.FormatTimeAgo(b.CreatedAt))
	}
	fmt.Fprintf(Out, "đọc:        %d phút\n", ui.ReadingTime(b.Content))
	fmt.Fprintf(Out, "lượt xem:   %d\n", b.ViewCount)
	if text := strings.TrimSpace(ui.StripHTML(b.Content)); text != "" {
		fmt.Fprintf(Out, "\n%s\n", text)
	}
	if len(b.RelatedBlogs) > 0 {
		fmt.Fprintln(Out, "\nBài viết liên quan:")
		printBlogList(b.RelatedBlogs)
	}
}

func printCategories(list []model.Category, withCount bool) {
	if len(list) == 0 {
		fmt.Fprintln(Out, ui.DefaultEmptyMessage)
		return
	}
	for _, c := range list {
		state := ""
		if !c.IsActive() && c.Status != "" {
			state = " (" + string(c.Status) + ")"
		}
		if withCount {
			fmt.Fprintf(Out, "- [%d] %s  /%s  %d bài%s\n", c.CategoryID, c.CategoryName, c.Slug, c.BlogCount, state)
			continue
		}
		fmt.Fprintf(Out, "- [%d] %s  /%s%s\n", c.CategoryID, c.CategoryName, c.Slug, state)
	}
}

func printCategory(c model.Category) {
	fmt.Fprintf(Out, "id:         %d\n", c.CategoryID)
	fmt.Fprintf(Out, "tên:        %s\n", c.CategoryName)
	fmt.Fprintf(Out, "slug:       %s\n", c.Slug)
	fmt.Fprintf(Out, "thứ tự:     %d\n", c.DisplayOrder)
	fmt.Fprintf(Out, "status:     %s\n", c.Status)
	fmt.Fprintf(Out, "số bài:     %d\n", c.BlogCount)
	if c.Description != "" {
		fmt.Fprintf(Out, "mô tả:      %s\n", c.Description)
	}
}

// printAck prints the server's message, or fallback when it sent none.
func printAck(message, fallback string) {
	if message == "" {
		message = fallback
	}
	fmt.Fprintln(Out, message)
}
