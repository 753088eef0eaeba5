package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"BlogDesk/internal/config"
)

type categoryCmd struct{}

func (categoryCmd) Name() string        { return "category" }
func (categoryCmd) Description() string { return "Administer blog categories (uses the stored token)" }
func (categoryCmd) Usage() string {
	return "category <list | get <id> | create <file|-> | update <id> <file|-> | delete <id> | " +
		"activate|deactivate <id> | reorder <id1> <id2>>"
}

func (categoryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	action, rest := strings.ToLower(args[0]), args[1:]

	var (
		id, other int64
		payload   json.RawMessage
		err       error
	)
	switch action {
	case "list":
		if len(rest) != 0 {
			return ErrUsage
		}
	case "get", "delete", "activate", "deactivate":
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
	case "reorder":
		if len(rest) != 2 {
			return ErrUsage
		}
		if id, err = parseID(rest[0]); err == nil {
			other, err = parseID(rest[1])
		}
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
	cats := s.manager().Categories()

	switch action {
	case "list":
		res, err := cats.All(ctx)
		if err != nil {
			return err
		}
		printCategories(res.Data, true)
	case "get":
		res, err := cats.Get(ctx, id)
		if err != nil {
			return err
		}
		printCategory(res.Data)
	case "create":
		res, err := cats.Create(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Đã tạo danh mục #%d %s\n", res.Data.CategoryID, res.Data.CategoryName)
	case "update":
		res, err := cats.Update(ctx, id, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Đã cập nhật danh mục #%d\n", res.Data.CategoryID)
	case "delete":
		res, err := cats.Delete(ctx, id)
		if err != nil {
			return err
		}
		printAck(res.Message, fmt.Sprintf("Đã xoá danh mục #%d", id))
	case "activate":
		res, err := cats.Activate(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "#%d: %s\n", id, res.Data.Status)
	case "deactivate":
		res, err := cats.Deactivate(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "#%d: %s\n", id, res.Data.Status)
	case "reorder":
		res, err := cats.Reorder(ctx, id, other)
		if err != nil {
			return err
		}
		printAck(res.Message, fmt.Sprintf("Đã đổi thứ tự #%d và #%d", id, other))
	}
	return nil
}

func init() { RegisterCmd(categoryCmd{}) }
