package commands

import (
	"context"
	"strings"

	"BlogDesk/internal/config"
)

type blogsCmd struct{}

func (blogsCmd) Name() string        { return "blogs" }
func (blogsCmd) Description() string { return "List published blogs" }
func (blogsCmd) Usage() string       { return "blogs [page] [size]" }

func (blogsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pg, err := parsePagination(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	page, err := s.public().Blogs(ctx, pg)
	if err != nil {
		return err
	}
	printBlogPage(page)
	return nil
}

type blogCmd struct{}

func (blogCmd) Name() string        { return "blog" }
func (blogCmd) Description() string { return "Show a published blog by slug" }
func (blogCmd) Usage() string       { return "blog <slug>" }

func (blogCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := s.public().BlogBySlug(ctx, args[0])
	if err != nil {
		return err
	}
	printBlogDetail(&res.Data)
	return nil
}

type categoryBlogsCmd struct{}

func (categoryBlogsCmd) Name() string        { return "category-blogs" }
func (categoryBlogsCmd) Description() string { return "List published blogs in a category" }
func (categoryBlogsCmd) Usage() string       { return "category-blogs <categoryId> [page] [size]" }

func (categoryBlogsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	pg, err := parsePagination(args[1:])
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	page, err := s.public().BlogsByCategory(ctx, id, pg)
	if err != nil {
		return err
	}
	printBlogPage(page)
	return nil
}

type relatedCmd struct{}

func (relatedCmd) Name() string        { return "related" }
func (relatedCmd) Description() string { return "List blogs related to a blog" }
func (relatedCmd) Usage() string       { return "related <blogId> [limit]" }

func (relatedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	limit, err := parseSize(args[1:])
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := s.public().Related(ctx, id, limit)
	if err != nil {
		return err
	}
	printBlogList(res.Data)
	return nil
}

func init() {
	RegisterCmd(blogsCmd{})
	RegisterCmd(blogCmd{})
	RegisterCmd(categoryBlogsCmd{})
	RegisterCmd(relatedCmd{})
}
