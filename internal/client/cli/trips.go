package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/client/render"
	"github.com/seungyeonleeee/triply/internal/client/store"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
)

func (a *App) current() (*domain.Trip, error) {
	t := a.store.Current()
	if t == nil {
		return nil, ErrNoTripOpen
	}
	return t, nil
}

// showTrip makes t the open trip and prints it.
func (a *App) showTrip(t *domain.Trip) {
	a.store.SetCurrent(t)
	fmt.Fprintln(a.out, a.render.Timeline(*t, itinerary.Build(*t)))
}

func (a *App) Trips(ctx context.Context) error {
	list, err := a.tripService.List(ctx, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.store.SetTrips(list)
	fmt.Fprintln(a.out, a.render.TripList(list))
	return nil
}

// Open accepts a number from the last trips listing or a trip id.
func (a *App) Open(ctx context.Context, ref string) error {
	id := ref
	if _, err := strconv.Atoi(ref); err == nil {
		list := a.store.Snapshot().Trips
		i, err := parseIndex(ref, len(list))
		if err != nil {
			return err
		}
		id = list[i].ID
	}

	t, err := a.tripService.Get(ctx, id, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	t, err := a.current()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.render.Timeline(*t, itinerary.Build(*t)))
	return nil
}

func (a *App) NewTrip(ctx context.Context) error {
	fields, err := a.promptTripFields(api.TripFields{})
	if err != nil {
		return err
	}

	t, err := a.tripService.Create(ctx, fields, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

// EditTrip asks for every field again; an empty answer keeps the old value.
func (a *App) EditTrip(ctx context.Context) error {
	cur, err := a.current()
	if err != nil {
		return err
	}

	fields, err := a.promptTripFields(api.TripFields{
		Title:        cur.Title,
		StartDate:    cur.StartDate,
		EndDate:      cur.EndDate,
		Companions:   cur.Companions,
		TravelStyles: cur.TravelStyles,
	})
	if err != nil {
		return err
	}

	t, err := a.tripService.Update(ctx, cur.ID, fields, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

func (a *App) RmTrip(ctx context.Context) error {
	cur, err := a.current()
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q with all its items? (y/N)", render.TripName(*cur)), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.tripService.Delete(ctx, cur.ID); err != nil {
		return err
	}

	a.store.Update(func(st *store.State) {
		st.Current = nil
		st.Trips = slices.DeleteFunc(st.Trips, func(t domain.Trip) bool { return t.ID == cur.ID })
	})
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) Export(ctx context.Context) error {
	cur, err := a.current()
	if err != nil {
		return err
	}

	path, err := a.tripService.Export(ctx, cur.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Itinerary saved to", path)
	return nil
}

func keepHint(cur string) string {
	if cur == "" {
		return ""
	}
	return fmt.Sprintf(" (empty keeps %q, - clears)", cur)
}

// promptTripFields asks for each trip field, starting from cur.
func (a *App) promptTripFields(cur api.TripFields) (api.TripFields, error) {
	out := cur

	title, err := getSimpleText(a.reader, "Title"+keepHint(cur.Title), a.out)
	if err != nil {
		return out, err
	}
	out.Title = keepOrClear(title, cur.Title)

	if out.StartDate, err = a.promptDate("Start date YYYY-MM-DD", cur.StartDate); err != nil {
		return out, err
	}
	if out.EndDate, err = a.promptDate("End date YYYY-MM-DD", cur.EndDate); err != nil {
		return out, err
	}
	if out.StartDate != nil && out.EndDate != nil && out.EndDate.Before(*out.StartDate) {
		return out, fmt.Errorf("end date %s is before start date %s", out.EndDate, out.StartDate)
	}

	companions, err := getSimpleText(a.reader, "Companions"+keepHint(cur.Companions), a.out)
	if err != nil {
		return out, err
	}
	out.Companions = keepOrClear(companions, cur.Companions)

	if out.TravelStyles, err = a.promptStyles(cur.TravelStyles); err != nil {
		return out, err
	}
	return out, nil
}

func keepOrClear(answer, cur string) string {
	switch answer {
	case "":
		return cur
	case "-":
		return ""
	default:
		return answer
	}
}

func (a *App) promptDate(prompt string, cur *domain.Date) (*domain.Date, error) {
	hint := ""
	if cur != nil && !cur.IsZero() {
		hint = cur.String()
	}

	answer, err := getSimpleText(a.reader, prompt+keepHint(hint), a.out)
	if err != nil {
		return nil, err
	}
	switch answer {
	case "":
		return cur, nil
	case "-":
		return nil, nil
	}

	d, err := domain.ParseDate(answer)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", answer)
	}
	return &d, nil
}

// promptStyles reads a comma-separated list of style numbers.
func (a *App) promptStyles(cur []domain.TravelStyle) ([]domain.TravelStyle, error) {
	var b strings.Builder
	b.WriteString("Travel styles, comma-separated numbers (empty keeps, - clears)")
	for i, st := range domain.TravelStyles {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, st)
	}

	answer, err := getSimpleText(a.reader, b.String(), a.out)
	if err != nil {
		return nil, err
	}
	switch answer {
	case "":
		return cur, nil
	case "-":
		return nil, nil
	}

	var styles []domain.TravelStyle
	for _, part := range strings.Split(answer, ",") {
		i, err := parseIndex(strings.TrimSpace(part), len(domain.TravelStyles))
		if err != nil {
			return nil, err
		}
		if st := domain.TravelStyles[i]; !slices.Contains(styles, st) {
			styles = append(styles, st)
		}
	}
	return styles, nil
}
