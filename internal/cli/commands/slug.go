package commands

import (
	"context"
	"fmt"
	"strings"

	"BlogDesk/internal/config"
	"BlogDesk/internal/ui"
)

type slugCmd struct{}

func (slugCmd) Name() string        { return "slug" }
func (slugCmd) Description() string { return "Print the URL slug for a title" }
func (slugCmd) Usage() string       { return "slug <title...>" }

func (slugCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	fmt.Fprintln(Out, ui.GenerateSlug(strings.Join(args, " ")))
	return nil
}

func init() { RegisterCmd(slugCmd{}) }
