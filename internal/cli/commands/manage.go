package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"BlogDesk/internal/cli/api"
	"BlogDesk/internal/cli/model"
	"BlogDesk/internal/config"
)

type manageCmd struct{}

func (manageCmd) Name() string { return "manage" }
func (manageCmd) Description() string {
	return "Administer blogs (uses the stored token)"
}
func (manageCmd) Usage() string {
	return "manage <list [page] [size] | get <id> | create <file|-> | update <id> <file|-> | delete <id> | " +
		"publish|unpublish|archive <id> | search [key=value...] | mine [page] [size]>"
}

func (manageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	action, rest := strings.ToLower(args[0]), args[1:]

	// validate arguments before touching the network
	var (
		id      int64
		pg      model.Pagination
		payload json.RawMessage
		filters model.Filters
		err     error
	)
	switch action {
	case "list", "mine":
		pg, err = parsePagination(rest)
	case "get", "delete", "publish", "unpublish", "archive":
		if len(rest) != 1 {
			return ErrUsage
		}
		id, err = parseID(rest[0])
	case "create":
		if len(rest) != 1 {
			return ErrUsage
		}
		payload, err = readPayload(rest[0])
	case "update":
		if len(rest) != 2 {
			return ErrUsage
		}
		if id, err = parseID(rest[0]); err == nil {
			payload, err = readPayload(rest[1])
		}
	case "search":
		filters, err = parseFilters(rest)
	default:
		return ErrUsage
	}
	if err != nil {
		return err
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	m := s.manager()

	switch action {
	case "list":
		page, err := m.Blogs(ctx, pg)
		if err != nil {
			return err
		}
		printBlogPage(page)
	case "mine":
		page, err := m.MyBlogs(ctx, pg)
		if err != nil {
			return err
		}
		printBlogPage(page)
	case "search":
		page, err := m.Search(ctx, filters, model.Pagination{})
		if err != nil {
			return err
		}
		printBlogPage(page)
	case "get":
		res, err := m.Blog(ctx, id)
		if err != nil {
			return err
		}
		printBlogDetail(&res.Data)
	case "create":
		res, err := m.CreateBlog(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Đã tạo bài viết #%d /%s\n", res.Data.BlogID, res.Data.Slug)
	case "update":
		res, err := m.UpdateBlog(ctx, id, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Đã cập nhật bài viết #%d\n", res.Data.BlogID)
	case "delete":
		res, err := m.DeleteBlog(ctx, id)
		if err != nil {
			return err
		}
		printAck(res.Message, fmt.Sprintf("Đã xoá bài viết #%d", id))
	default:
		res, err := m.Transition(ctx, id, api.BlogAction(action))
		if err != nil {
			return err
		}
		printAck(res.Message, fmt.Sprintf("%s #%d: OK", action, id))
	}
	return nil
}

// parseFilters reads key=value pairs. page and size are accepted like any other key and
// override the defaults.
func parseFilters(args []string) (model.Filters, error) {
	f := model.Filters{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, ErrUsage
		}
		f[k] = v
	}
	return f, nil
}

func init() { RegisterCmd(manageCmd{}) }
