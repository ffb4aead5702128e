package handler

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Olpagroup25/insa/internal/application/inventory"
	"github.com/Olpagroup25/insa/internal/infrastructure/render"
	"github.com/google/uuid"
)

// Portal paths
const (
	PortalHomePath = "/my"
	PickupListPath = "/my/pickup/orders"
	LoginPath      = "/web/login"
)

// pageLink is a searchbar entry or a pager link
type pageLink struct {
	Label  string
	URL    string
	Active bool
	Number int
}

type pagerView struct {
	PageCount int
	PrevURL   string
	NextURL   string
	Links     []pageLink
}

type pickupRow struct {
	Name          string
	URL           string
	ScheduledDate time.Time
	Origin        string
	State         string
	Confirmed     bool
}

type pickupListPage struct {
	render.Layout
	SortBy   string
	FilterBy string
	Sortings []pageLink
	Filters  []pageLink
	Rows     []pickupRow
	Pager    pagerView
}

type pickingView struct {
	Name          string
	State         string
	ScheduledDate time.Time
	Origin        string
	Confirmed     bool
	ConfirmedAt   *time.Time
	ConfirmedBy   string
}

type pickupDetailPage struct {
	render.Layout
	Picking       pickingView
	JustConfirmed bool
	ConfirmURL    string
	BackURL       string
}

type homePage struct {
	render.Layout
	PickupCount int64
}

type loginPage struct {
	render.Layout
	Error    string
	Login    string
	Redirect string
}

type errorPage struct {
	render.Layout
	Status  int
	Message string
}

// pickupListURL builds a list URL keeping the searchbar selection.
// Page 1 has no /page/ segment.
func pickupListURL(page int, sortBy, filterBy string) string {
	path := PickupListPath
	if page > 1 {
		path += "/page/" + strconv.Itoa(page)
	}
	q := url.Values{}
	if sortBy != "" {
		q.Set("sortby", sortBy)
	}
	if filterBy != "" {
		q.Set("filterby", filterBy)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func pickupDetailURL(id uuid.UUID) string {
	return PickupListPath + "/" + id.String()
}

func pickupConfirmURL(id uuid.UUID) string {
	return pickupDetailURL(id) + "/confirm"
}

func newPickupListPage(layout render.Layout, result *inventory.PickupListResult) pickupListPage {
	page := pickupListPage{
		Layout:   layout,
		SortBy:   result.SortBy,
		FilterBy: result.FilterBy,
		Sortings: make([]pageLink, len(result.Sortings)),
		Filters:  make([]pageLink, len(result.Filters)),
		Rows:     make([]pickupRow, len(result.Items)),
	}

	for i, opt := range result.Sortings {
		page.Sortings[i] = pageLink{
			Label:  opt.Label,
			URL:    pickupListURL(1, opt.Key, result.FilterBy),
			Active: opt.Key == result.SortBy,
		}
	}
	for i, opt := range result.Filters {
		page.Filters[i] = pageLink{
			Label:  opt.Label,
			URL:    pickupListURL(1, result.SortBy, opt.Key),
			Active: opt.Key == result.FilterBy,
		}
	}
	for i, p := range result.Items {
		page.Rows[i] = pickupRow{
			Name:          p.Name,
			URL:           pickupDetailURL(p.ID),
			ScheduledDate: p.ScheduledDate,
			Origin:        p.Origin,
			State:         p.State,
			Confirmed:     p.PickupConfirmed,
		}
	}

	pager := result.Pager
	page.Pager = pagerView{PageCount: pager.PageCount}
	if pager.HasPrev() {
		page.Pager.PrevURL = pickupListURL(pager.Page-1, result.SortBy, result.FilterBy)
	}
	if pager.HasNext() {
		page.Pager.NextURL = pickupListURL(pager.Page+1, result.SortBy, result.FilterBy)
	}
	for _, n := range pager.Pages {
		page.Pager.Links = append(page.Pager.Links, pageLink{
			Number: n,
			URL:    pickupListURL(n, result.SortBy, result.FilterBy),
			Active: n == pager.Page,
		})
	}
	return page
}

func newPickingView(p *inventory.PickingResponse, confirmedBy string) pickingView {
	return pickingView{
		Name:          p.Name,
		State:         p.State,
		ScheduledDate: p.ScheduledDate,
		Origin:        p.Origin,
		Confirmed:     p.PickupConfirmed,
		ConfirmedAt:   p.PickupConfirmedAt,
		ConfirmedBy:   confirmedBy,
	}
}
