package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seungyeonleeee/triply/internal/client/render"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
)

// placeInput is what the add dialog collects.
type placeInput struct {
	Day      int
	Name     string
	Address  string
	Time     string
	Category domain.Category
	Kind     domain.TransportKind
	Memo     string
	Coords   *domain.LatLng
}

const addressNameTokens = 4

// buildPlaceItem turns dialog answers into an item. The category decides the
// type: 교통 gives flight or transport depending on the kind, 숙소 gives
// stay, anything else is a place. A missing name is taken from the start of
// the address.
func buildPlaceItem(in placeInput) (domain.Item, error) {
	it := domain.Item{
		Day:      in.Day,
		Name:     strings.TrimSpace(in.Name),
		Address:  strings.TrimSpace(in.Address),
		Time:     strings.TrimSpace(in.Time),
		Category: domain.Category(strings.TrimSpace(string(in.Category))),
		Memo:     strings.TrimSpace(in.Memo),
	}

	switch it.Category {
	case domain.CategoryTransport:
		it.Type = domain.ItemTypeTransport
		if in.Kind == domain.TransportFlight {
			it.Type = domain.ItemTypeFlight
		}
		it.TransportKind = in.Kind
	case domain.CategoryLodging:
		it.Type = domain.ItemTypeStay
	default:
		it.Type = domain.ItemTypePlace
	}

	if it.Name == "" {
		tokens := strings.Fields(it.Address)
		if len(tokens) > addressNameTokens {
			tokens = tokens[:addressNameTokens]
		}
		it.Name = strings.Join(tokens, " ")
	}
	if it.Name == "" {
		return domain.Item{}, errors.New("a name or an address is required")
	}

	if in.Coords != nil {
		it.SetCoordinates(*in.Coords)
	}
	return it, nil
}

func parseDay(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 1 {
		return 0, fmt.Errorf("day must be a positive number, got %q", s)
	}
	return d, nil
}

func parseCoords(s string) (*domain.LatLng, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("coordinates must look like 35.68,139.76, got %q", s)
	}
	la, err1 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	ln, err2 := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err1 != nil || err2 != nil || la < -90 || la > 90 || ln < -180 || ln > 180 {
		return nil, fmt.Errorf("invalid coordinates %q", s)
	}
	return &domain.LatLng{Lat: la, Lng: ln}, nil
}

func (a *App) warnDayRange(t *domain.Trip, day int) {
	days := itinerary.GenerateDays(t.StartDate, t.EndDate)
	if len(days) > 0 && day > len(days) {
		fmt.Fprintf(a.out, "Day %d is after the trip ends, the item will be listed as unscheduled\n", day)
	}
}

func categoryOptions() []string {
	opts := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		opts[i] = string(c)
	}
	return opts
}

func kindOptions() []string {
	opts := make([]string, len(domain.TransportKinds))
	for i, k := range domain.TransportKinds {
		opts[i] = itinerary.TransportIcon(k) + " " + string(k)
	}
	return opts
}

// AddItem runs the place dialog for the given day of the open trip.
func (a *App) AddItem(ctx context.Context, day string) error {
	cur, err := a.current()
	if err != nil {
		return err
	}
	d, err := parseDay(day)
	if err != nil {
		return err
	}

	in := placeInput{Day: d}

	category, err := getChoice(a.reader, "Category (number or your own)", categoryOptions(), a.out)
	if err != nil {
		return err
	}
	in.Category = domain.Category(category)

	if in.Category == domain.CategoryTransport {
		kind, err := getChoice(a.reader, "Transport", kindOptions(), a.out)
		if err != nil {
			return err
		}
		in.Kind = domain.ParseTransportKind(kind[strings.LastIndex(kind, " ")+1:])
	}

	if in.Name, err = getSimpleText(a.reader, "Name (empty uses the address)", a.out); err != nil {
		return err
	}
	if in.Address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return err
	}
	if in.Time, err = getSimpleText(a.reader, "Time, e.g. 09:30 (optional)", a.out); err != nil {
		return err
	}
	coords, err := getSimpleText(a.reader, "Coordinates lat,lng (optional)", a.out)
	if err != nil {
		return err
	}
	if in.Coords, err = parseCoords(coords); err != nil {
		return err
	}
	if in.Memo, err = getSimpleText(a.reader, "Memo (optional)", a.out); err != nil {
		return err
	}

	item, err := buildPlaceItem(in)
	if err != nil {
		return err
	}
	a.warnDayRange(cur, d)

	t, err := a.tripService.AddItem(ctx, cur.ID, item, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

// AddMemo stores free text as a memo item on the given day.
func (a *App) AddMemo(ctx context.Context, day string) error {
	cur, err := a.current()
	if err != nil {
		return err
	}
	d, err := parseDay(day)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Memo text", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.New("memo is empty")
	}
	a.warnDayRange(cur, d)

	t, err := a.tripService.AddItem(ctx, cur.ID, domain.Item{Name: text, Day: d, Type: domain.ItemTypeMemo}, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

// itemAt resolves an item number as printed by show.
func (a *App) itemAt(ref string) (*domain.Trip, domain.Item, error) {
	cur, err := a.current()
	if err != nil {
		return nil, domain.Item{}, err
	}
	order := render.ItemOrder(itinerary.Build(*cur))
	i, err := parseIndex(ref, len(order))
	if err != nil {
		return nil, domain.Item{}, err
	}
	return cur, order[i], nil
}

// EditItem re-asks the free-text fields; empty answers keep the old value.
func (a *App) EditItem(ctx context.Context, ref string) error {
	cur, item, err := a.itemAt(ref)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Name"+keepHint(item.Name), a.out)
	if err != nil {
		return err
	}
	if name != "-" {
		item.Name = keepOrClear(name, item.Name)
	}

	day, err := getSimpleText(a.reader, "Day"+keepHint(strconv.Itoa(item.Day)), a.out)
	if err != nil {
		return err
	}
	if day != "" && day != "-" {
		if item.Day, err = parseDay(day); err != nil {
			return err
		}
	}

	answer, err := getSimpleText(a.reader, "Time"+keepHint(item.Time), a.out)
	if err != nil {
		return err
	}
	item.Time = strings.TrimSpace(keepOrClear(answer, item.Time))

	if item.Type != domain.ItemTypeMemo {
		if answer, err = getSimpleText(a.reader, "Address"+keepHint(item.Address), a.out); err != nil {
			return err
		}
		item.Address = keepOrClear(answer, item.Address)

		if answer, err = getSimpleText(a.reader, "Memo"+keepHint(item.Memo), a.out); err != nil {
			return err
		}
		item.Memo = keepOrClear(answer, item.Memo)
	}
	a.warnDayRange(cur, item.Day)

	t, err := a.tripService.UpdateItem(ctx, cur.ID, item, a.store.MasterKey())
	if err != nil {
		return err
	}
	a.showTrip(t)
	return nil
}

func (a *App) RmItem(ctx context.Context, ref string) error {
	cur, item, err := a.itemAt(ref)
	if err != nil {
		return err
	}

	t, err := a.tripService.DeleteItem(ctx, cur.ID, item.ID, a.store.MasterKey())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %q\n", item.Name)
	a.showTrip(t)
	return nil
}
