package commands

import (
	"context"
	"strconv"
	"strings"

	"BlogDesk/internal/cli/model"
	"BlogDesk/internal/config"
)

type featuredCmd struct{}

func (featuredCmd) Name() string        { return "featured" }
func (featuredCmd) Description() string { return "List featured blogs" }
func (featuredCmd) Usage() string       { return "featured [size]" }

func (featuredCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	size, err := parseSize(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	page, err := s.public().Featured(ctx, size)
	if err != nil {
		return err
	}
	printBlogList(page.Data)
	return nil
}

type topViewedCmd struct{}

func (topViewedCmd) Name() string        { return "top-viewed" }
func (topViewedCmd) Description() string { return "List the most viewed blogs" }
func (topViewedCmd) Usage() string       { return "top-viewed [size]" }

func (topViewedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	size, err := parseSize(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := s.public().TopViewed(ctx, size)
	if err != nil {
		return err
	}
	printBlogList(res.Data)
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List active categories, or show one by id or slug" }
func (categoriesCmd) Usage() string       { return "categories [--count | <id|slug>]" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	pub := s.public()

	if len(args) == 0 || args[0] == "--count" || args[0] == "-c" {
		withCount := len(args) == 1
		fetch := pub.Categories
		if withCount {
			fetch = pub.CategoriesWithCount
		}
		res, err := fetch(ctx)
		if err != nil {
			return err
		}
		printCategories(res.Data, withCount)
		return nil
	}

	if strings.HasPrefix(args[0], "-") {
		return ErrUsage
	}
	var res *model.Response[model.Category]
	if id, perr := strconv.ParseInt(args[0], 10, 64); perr == nil && id > 0 {
		res, err = pub.Category(ctx, id)
	} else {
		res, err = pub.CategoryBySlug(ctx, args[0])
	}
	if err != nil {
		return err
	}
	printCategory(res.Data)
	return nil
}

func init() {
	RegisterCmd(featuredCmd{})
	RegisterCmd(topViewedCmd{})
	RegisterCmd(categoriesCmd{})
}
