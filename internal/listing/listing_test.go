package listing

import (
	"reflect"
	"testing"

	"datahive/admincli/internal/backend"
)

func sampleLeads() []backend.Lead {
	return []backend.Lead{
		{ID: "l1", Name: "Alice Carter", Email: "alice@example.com", Phone: "555-0101", Category: backend.Category{ID: "cat-1", Name: "Tech"}},
		{ID: "l2", Name: "Bob Lane", Email: "bob@shop.example", Phone: "555-0202", Category: backend.Category{ID: "cat-2", Name: "Retail"}},
		{ID: "l3", Name: "Carol Marsh", Email: "carol.alice@example.com", Phone: "777-0303", Category: backend.Category{ID: "cat-1", Name: "Tech"}},
	}
}

func leadIDs(leads []backend.Lead) []string {
	ids := make([]string, len(leads))
	for i, l := range leads {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterLeads(t *testing.T) {
	cases := []struct {
		name string
		term string
		want []string
	}{
		{"empty term matches all", "", []string{"l1", "l2", "l3"}},
		{"name case-insensitive", "ALICE", []string{"l1", "l3"}},
		{"email substring", "shop.example", []string{"l2"}},
		{"phone plain substring", "777", []string{"l3"}},
		{"no match", "zebra", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := leadIDs(FilterLeads(sampleLeads(), tc.term))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterLeadsIntersectsWithCategory(t *testing.T) {
	leads := FilterLeadsByCategory(FilterLeads(sampleLeads(), "alice"), "cat-1")
	got := leadIDs(leads)
	want := []string{"l1", "l3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	leads = FilterLeadsByCategory(FilterLeads(sampleLeads(), "alice"), "cat-2")
	if len(leads) != 0 {
		t.Fatalf("expected empty intersection, got %v", leadIDs(leads))
	}
}

func TestSortCategoriesByName(t *testing.T) {
	cats := []backend.Category{{Name: "B"}, {Name: "A"}}

	s := Sort{Field: FieldName}
	sorted := SortCategories(cats, s)
	if sorted[0].Name != "A" || sorted[1].Name != "B" {
		t.Fatalf("ascending sort wrong: %v", sorted)
	}

	// Input must not be mutated
	if cats[0].Name != "B" {
		t.Fatal("input slice was mutated")
	}

	s.Toggle(FieldName)
	sorted = SortCategories(cats, s)
	if sorted[0].Name != "B" || sorted[1].Name != "A" {
		t.Fatalf("descending sort wrong: %v", sorted)
	}
}

func TestSortToggleSemantics(t *testing.T) {
	s := Sort{Field: FieldName, Direction: Ascending}

	s.Toggle(FieldName)
	if s.Direction != Descending {
		t.Fatal("toggling the active field should flip direction")
	}

	s.Toggle(FieldCreatedAt)
	if s.Field != FieldCreatedAt || s.Direction != Ascending {
		t.Fatalf("selecting a new field should reset to ascending, got %+v", s)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := Paginate(items, 1, 2)
	if total != 3 || !reflect.DeepEqual(page, []int{1, 2}) {
		t.Fatalf("page 1: got %v total %d", page, total)
	}

	page, total = Paginate(items, 3, 2)
	if total != 3 || !reflect.DeepEqual(page, []int{5}) {
		t.Fatalf("last page: got %v total %d", page, total)
	}

	page, total = Paginate(items, 4, 2)
	if total != 3 || page != nil {
		t.Fatalf("out-of-range page: got %v total %d", page, total)
	}

	page, total = Paginate([]int{}, 1, 2)
	if total != 1 || len(page) != 0 {
		t.Fatalf("empty list: got %v total %d", page, total)
	}
}

func TestIsDuplicateCategoryName(t *testing.T) {
	cats := []backend.Category{{Name: "Tech"}, {Name: "Real Estate"}}

	cases := []struct {
		name string
		want bool
	}{
		{"Tech", true},
		{"tech", true},
		{"  TECH  ", true},
		{"real estate", true},
		{"Finance", false},
		{"Tech Support", false},
	}
	for _, tc := range cases {
		if got := IsDuplicateCategoryName(cats, tc.name); got != tc.want {
			t.Errorf("IsDuplicateCategoryName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterCategories(t *testing.T) {
	cats := []backend.Category{
		{ID: "c1", Name: "Tech", Description: "Software and hardware"},
		{ID: "c2", Name: "Retail", Description: "Shops and stores"},
	}

	got := FilterCategories(cats, "software")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("description match failed: %v", got)
	}

	got = FilterCategories(cats, "RET")
	if len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("name match failed: %v", got)
	}
}
