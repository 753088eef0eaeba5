package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"BlogDesk/internal/cli/auth"
	"BlogDesk/internal/cli/bootstrap"
	"BlogDesk/internal/cli/repo"
	"BlogDesk/internal/config"
)

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Description() string { return "Manage the stored manager API token" }
func (tokenCmd) Usage() string       { return "token <set <value|-> | show | clear>" }

func (tokenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	action := strings.ToLower(args[0])
	switch action {
	case "set":
		if len(args) != 2 {
			return ErrUsage
		}
	case "show", "clear":
		if len(args) != 1 {
			return ErrUsage
		}
	default:
		return ErrUsage
	}

	store, done, err := bootstrap.OpenTokenStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	switch action {
	case "set":
		value := args[1]
		if value == "-" {
			b, err := io.ReadAll(In)
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			value = string(b)
		}
		if err := store.Save(value); err != nil {
			return err
		}
		info := auth.Inspect(value, now())
		if info.Status == auth.TokenExpired {
			fmt.Fprintln(Out, "Đã lưu token (cảnh báo: token đã hết hạn)")
			return nil
		}
		fmt.Fprintln(Out, "Đã lưu token")
	case "show":
		tok, err := store.Load()
		if errors.Is(err, repo.ErrNoToken) {
			fmt.Fprintln(Out, "Chưa có token")
			return nil
		}
		if err != nil {
			return err
		}
		printTokenInfo(auth.Inspect(tok, now()))
	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Đã xoá token")
	}
	return nil
}

func printTokenInfo(info auth.Info) {
	fmt.Fprintf(Out, "status:     %s\n", info.Status)
	if info.Status == auth.TokenOpaque {
		return
	}
	if info.Subject != "" {
		fmt.Fprintf(Out, "subject:    %s\n", info.Subject)
	}
	if info.Email != "" {
		fmt.Fprintf(Out, "email:      %s\n", info.Email)
	}
	if info.Role != "" {
		fmt.Fprintf(Out, "role:       %s\n", info.Role)
	}
	f := formatter()
	if !info.IssuedAt.IsZero() {
		fmt.Fprintf(Out, "issued:     %s\n", f.FormatDateTime(info.IssuedAt.Format(time.RFC3339)))
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Fprintf(Out, "expires:    %s\n", f.FormatDateTime(info.ExpiresAt.Format(time.RFC3339)))
	}
}

func init() { RegisterCmd(tokenCmd{}) }
