package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sortedhash/internal/sortedmap"
)

func DemoHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	capacity, _ := cmd.Flags().GetInt("capacity")
	out := cmd.OutOrStdout()

	slog.Info("sorted map demo starting", "capacity", capacity)

	m, err := sortedmap.New(capacity)
	if err != nil {
		return err
	}
	defer func() {
		// Close is idempotent; safe to call in defer.
		if err := m.Close(); err != nil {
			slog.Error("sorted map close", "error", err)
		}
	}()

	// -------------------------------------------------------------------
	// 1) Insertion order does not matter to the sorted list
	// -------------------------------------------------------------------
	for _, kv := range [][2]string{{"b", "2"}, {"a", "1"}, {"c", "3"}} {
		if err := m.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}
	if err := sortedmap.Fprint(out, m); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		slog.Info("received shutdown signal")
		return nil
	}

	// -------------------------------------------------------------------
	// 2) Updating a key keeps its position
	// -------------------------------------------------------------------
	if err := m.Set("b", "20"); err != nil {
		return err
	}
	if v, ok := m.Get("b"); ok {
		slog.Info("GET b after update", "value", v, "entries", m.Len())
	}
	if err := sortedmap.Fprint(out, m); err != nil {
		return err
	}
	if err := sortedmap.FprintReverse(out, m); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		slog.Info("received shutdown signal")
		return nil
	}

	// -------------------------------------------------------------------
	// 3) One bucket: every key collides, order still comes from the list
	// -------------------------------------------------------------------
	one, err := sortedmap.New(1)
	if err != nil {
		return err
	}
	defer one.Close()

	for _, k := range []string{"z", "y", "x"} {
		if err := one.Set(k, fmt.Sprint(sortedmap.Hash(k))); err != nil {
			return err
		}
	}
	if err := sortedmap.Fprint(out, one); err != nil {
		return err
	}

	slog.Info("sorted map demo done")
	return nil
}
