package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID        string
	Name      string
	Email     string
	Status    string
	Campaign  string
	CreatedAt time.Time
	UpdatedAt time.Time
	ReplyRate float64
}

func rowFields() Fields[row] {
	return Fields[row]{
		Searchable: func(r row) []string { return []string{r.Name, r.Email} },
		Status:     func(r row) string { return r.Status },
		Campaign:   func(r row) string { return r.Campaign },
		Name:       func(r row) string { return r.Name },
		CreatedAt:  func(r row) time.Time { return r.CreatedAt },
		UpdatedAt:  func(r row) time.Time { return r.UpdatedAt },
		ReplyRate:  func(r row) float64 { return r.ReplyRate },
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestViewTextSearchCaseInsensitive(t *testing.T) {
	rows := []row{
		{Name: "Alice Johnson", Email: "alice@acme.io"},
		{Name: "Bob Stone", Email: "bob@initech.com"},
		{Name: "Carol ACME", Email: "carol@other.net"},
	}

	got := View(rows, Query{Text: "acme"}, rowFields())

	assert.Equal(t, []string{"Alice Johnson", "Carol ACME"}, names(got))
}

func TestViewStatusFilterPartitions(t *testing.T) {
	rows := []row{
		{Name: "a", Status: "active"},
		{Name: "b", Status: "replied"},
		{Name: "c", Status: "active"},
		{Name: "d", Status: "bounced"},
	}
	f := rowFields()

	active := View(rows, Query{StatusEquals: "active"}, f)
	replied := View(rows, Query{StatusEquals: "replied"}, f)
	bounced := View(rows, Query{StatusEquals: "bounced"}, f)

	// Every row lands in exactly one status bucket
	assert.Equal(t, len(rows), len(active)+len(replied)+len(bounced))
	assert.Equal(t, []string{"a", "c"}, names(active))
}

func TestViewPredicatesAreANDed(t *testing.T) {
	rows := []row{
		{Name: "Dana", Status: "active", Campaign: "Q3 Push"},
		{Name: "Dana Two", Status: "replied", Campaign: "Q3 Push"},
		{Name: "Eve", Status: "active", Campaign: "Other"},
	}

	got := View(rows, Query{Text: "dana", StatusEquals: "active", CampaignEquals: "Q3 Push"}, rowFields())

	require.Len(t, got, 1)
	assert.Equal(t, "Dana", got[0].Name)
}

func TestViewPreservesOrderWithoutSortKey(t *testing.T) {
	rows := []row{{Name: "z"}, {Name: "a"}, {Name: "m"}}

	got := View(rows, Query{}, rowFields())

	assert.Equal(t, []string{"z", "a", "m"}, names(got))
}

func TestViewNameSortStableCaseInsensitive(t *testing.T) {
	rows := []row{{Name: "bob"}, {Name: "Amy"}, {Name: "amy"}}

	got := View(rows, Query{SortKey: SortByName}, rowFields())

	// Equal keys keep their input order
	assert.Equal(t, []string{"Amy", "amy", "bob"}, names(got))
}

func TestViewCreatedAndUpdatedSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []row{
		{Name: "old", CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour)},
		{Name: "new", CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base},
		{Name: "mid", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
	}
	f := rowFields()

	byCreated := View(rows, Query{SortKey: SortByCreated}, f)
	assert.Equal(t, []string{"new", "mid", "old"}, names(byCreated))

	byUpdated := View(rows, Query{SortKey: SortByUpdated}, f)
	assert.Equal(t, []string{"old", "mid", "new"}, names(byUpdated))
}

func TestViewPerformanceSortHighestFirst(t *testing.T) {
	rows := []row{
		{Name: "low", ReplyRate: 1.2},
		{Name: "high", ReplyRate: 9.8},
		{Name: "mid", ReplyRate: 4.4},
	}

	got := View(rows, Query{SortKey: SortByPerformance}, rowFields())

	assert.Equal(t, []string{"high", "mid", "low"}, names(got))
}

func TestViewIsIdempotent(t *testing.T) {
	rows := []row{
		{Name: "bob", Status: "active"},
		{Name: "Amy", Status: "active"},
		{Name: "amy", Status: "replied"},
	}
	q := Query{StatusEquals: "active", SortKey: SortByName}
	f := rowFields()

	once := View(rows, q, f)
	twice := View(once, q, f)

	assert.Equal(t, once, twice)
}

func TestViewNilAccessorsMatchEverything(t *testing.T) {
	rows := []row{{Name: "a", Status: "active"}, {Name: "b", Status: "replied"}}

	// A shape with no status dimension ignores the status filter
	got := View(rows, Query{StatusEquals: "active"}, Fields[row]{
		Name: func(r row) string { return r.Name },
	})

	assert.Len(t, got, 2)
}
