package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/client/render"
	"github.com/seungyeonleeee/triply/internal/domain"
)

func (a *App) Checklist(ctx context.Context) error {
	cur, err := a.current()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.render.Checklist(cur.Checklist))
	return nil
}

func (a *App) AddCheck(ctx context.Context) error {
	cur, err := a.current()
	if err != nil {
		return err
	}

	label, err := getSimpleText(a.reader, "Item", a.out)
	if err != nil {
		return err
	}
	if label == "" {
		return errors.New("item label is required")
	}

	category, err := getChoice(a.reader, "Category (number, your own, or empty)", domain.ChecklistSuggestions, a.out)
	if err != nil {
		return err
	}

	t, err := a.tripService.AddChecklistItem(ctx, cur.ID, label, category, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.store.SetCurrent(t)
	fmt.Fprintln(a.out, a.render.Checklist(t.Checklist))
	return nil
}

// checkAt resolves a checklist number as printed by checklist.
func (a *App) checkAt(ref string) (*domain.Trip, domain.ChecklistItem, error) {
	cur, err := a.current()
	if err != nil {
		return nil, domain.ChecklistItem{}, err
	}
	order := render.ChecklistOrder(cur.Checklist)
	i, err := parseIndex(ref, len(order))
	if err != nil {
		return nil, domain.ChecklistItem{}, err
	}
	return cur, order[i], nil
}

// Check toggles the checked state of an entry.
func (a *App) Check(ctx context.Context, ref string) error {
	cur, it, err := a.checkAt(ref)
	if err != nil {
		return err
	}

	t, err := a.tripService.SetChecklistItemChecked(ctx, cur.ID, it.ID, !it.Checked, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.store.SetCurrent(t)
	fmt.Fprintln(a.out, a.render.Checklist(t.Checklist))
	return nil
}

func (a *App) RmCheck(ctx context.Context, ref string) error {
	cur, it, err := a.checkAt(ref)
	if err != nil {
		return err
	}

	t, err := a.tripService.DeleteChecklistItem(ctx, cur.ID, it.ID, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.store.SetCurrent(t)
	fmt.Fprintf(a.out, "Removed %q\n", it.Label)
	fmt.Fprintln(a.out, a.render.Checklist(t.Checklist))
	return nil
}
