package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	Status string
	Date   string
}

var guestProjection = Projection[guest]{
	SearchText: func(g guest) string { return g.Name + " " + g.Email + " " + g.Phone },
	Status:     func(g guest) string { return g.Status },
	Date:       func(g guest) string { return g.Date },
}

func makeGuests(n int) []guest {
	out := make([]guest, 0, n)
	for i := 1; i <= n; i++ {
		status := "pending"
		if i%5 == 0 {
			status = "accepted"
		}
		out = append(out, guest{
			ID:     int64(i),
			Name:   fmt.Sprintf("Guest %02d", i),
			Email:  fmt.Sprintf("guest%02d@example.com", i),
			Phone:  fmt.Sprintf("+85512%06d", i),
			Status: status,
			Date:   "2025-06-01",
		})
	}
	return out
}

func TestApply_Pagination(t *testing.T) {
	// 25 records, 5 accepted and 2 rejected, page size 10: 18 pending over 2 pages.
	records := makeGuests(25)
	records[3].Status = "rejected"
	records[11].Status = "rejected"

	q := Query{Status: "pending", Page: 2}
	page := Apply(records, q, guestProjection, 10)

	assert.Equal(t, 18, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.Current)
	assert.Len(t, page.Items, 8)

	q = Query{Page: 3}
	page = Apply(records, q, guestProjection, 10)
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5, "last page holds the remainder")

	// A search matching 23 of the 25 still needs a third page for the tail.
	records = makeGuests(25)
	records[0].Name, records[0].Email, records[0].Phone = "Dara", "d@x.com", "000"
	records[1].Name, records[1].Email, records[1].Phone = "Sok", "s@x.com", "111"
	page = Apply(records, Query{Search: "guest", Page: 3}, guestProjection, 10)
	assert.Equal(t, 23, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 3)
}

func TestApply_OutOfRangePageResetsToFirst(t *testing.T) {
	records := makeGuests(25)

	page := Apply(records, Query{Page: 4}, guestProjection, 10)

	require.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Current)
	assert.Equal(t, "Guest 01", page.Items[0].Name)

	page = Apply(records, Query{Page: 0}, guestProjection, 10)
	assert.Equal(t, 1, page.Current)
}

func TestApply_EmptyResult(t *testing.T) {
	page := Apply(nil, Query{Page: 1}, guestProjection, 10)

	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	// A filter that matches nothing behaves the same.
	page = Apply(makeGuests(5), Query{Search: "nobody"}, guestProjection, 10)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestApply_SearchSpansNameEmailPhone(t *testing.T) {
	records := []guest{
		{ID: 1, Name: "Jane Doe", Email: "jd@example.com", Phone: "+85512000001"},
		{ID: 2, Name: "Sok Chan", Email: "jane.c@example.com", Phone: "+85512000002"},
		{ID: 3, Name: "Dara Kim", Email: "dk@example.com", Phone: "+855-JANE-02"},
		{ID: 4, Name: "No Match", Email: "nm@example.com", Phone: "+85512000004"},
	}

	page := Apply(records, Query{Search: "jane"}, guestProjection, 10)

	require.Len(t, page.Items, 3, "search is case-insensitive across all projected fields")
	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)
	assert.Equal(t, int64(3), page.Items[2].ID)
}

func TestApply_PredicatesCombine(t *testing.T) {
	records := makeGuests(10)
	records[2].Date = "2025-06-02"

	page := Apply(records, Query{Status: "pending", Date: "2025-06-02"}, guestProjection, 10)

	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(3), page.Items[0].ID)
}

func TestApply_NilProjectionFieldRejectsFilter(t *testing.T) {
	// A resource without a status dimension matches nothing when a status
	// filter is set, instead of panicking.
	proj := Projection[guest]{SearchText: func(g guest) string { return g.Name }}

	page := Apply(makeGuests(3), Query{Status: "pending"}, proj, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}
