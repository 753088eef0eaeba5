package commands

import (
	"context"
	"fmt"
	"strings"

	"BlogDesk/internal/config"
)

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search published blogs by keyword" }
func (searchCmd) Usage() string       { return "search <keyword> [page] [size]" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
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
	page, err := s.public().Search(ctx, args[0], pg)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Kết quả cho %q:\n", args[0])
	printBlogPage(page)
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
