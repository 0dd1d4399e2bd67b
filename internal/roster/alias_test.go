package roster

import "testing"

func TestBuildTable_RowNGetsIDN(t *testing.T) {
	table := BuildTable([][]string{
		{"Ann", "Annie", "A"},
		{"Bob"},
		{"Carol", "Caz"},
	})

	cases := map[string]int64{
		"Ann":   1,
		"Annie": 1,
		"A":     1,
		"Bob":   2,
		"Carol": 3,
		"Caz":   3,
	}
	for alias, want := range cases {
		got, ok := table.Resolve(alias)
		if !ok {
			t.Errorf("Resolve(%q) not found", alias)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %d, want %d", alias, got, want)
		}
	}
}

func TestBuildTable_StopsAtEmptyRow(t *testing.T) {
	table := BuildTable([][]string{
		{"Ann"},
		{},
		{"Bob"},
	})

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
	if _, ok := table.Resolve("Bob"); ok {
		t.Error("rows after an empty row should be ignored")
	}
}

func TestBuildTable_EmptyCellsSkipped(t *testing.T) {
	table := BuildTable([][]string{
		{"Ann", "", "Annie"},
	})

	if _, ok := table.Resolve(""); ok {
		t.Error("empty cell should not become an alias")
	}
	if id, _ := table.Resolve("Annie"); id != 1 {
		t.Errorf("Resolve(Annie) = %d, want 1", id)
	}
}

func TestBuildTable_DuplicateAliasLastWriteWins(t *testing.T) {
	table := BuildTable([][]string{
		{"Ann", "Dup"},
		{"Bob", "Dup"},
	})

	id, ok := table.Resolve("Dup")
	if !ok || id != 2 {
		t.Errorf("Resolve(Dup) = %d, %v; want 2, true", id, ok)
	}

	// The prefix scan keeps the alias's first-seen position but must
	// report the overwritten id.
	id, ok = table.ResolvePrefix("Du")
	if !ok || id != 2 {
		t.Errorf("ResolvePrefix(Du) = %d, %v; want 2, true", id, ok)
	}
}

func TestBuildTable_CanonicalIsFirstCell(t *testing.T) {
	table := BuildTable([][]string{
		{"Ann", "Annie"},
		{"Bob"},
	})

	canon := table.Canonical()
	if len(canon) != 2 {
		t.Fatalf("Canonical() has %d entries, want 2", len(canon))
	}
	if canon[0] != (Entry{ID: 1, Name: "Ann"}) {
		t.Errorf("canon[0] = %+v", canon[0])
	}
	if canon[1] != (Entry{ID: 2, Name: "Bob"}) {
		t.Errorf("canon[1] = %+v", canon[1])
	}
}

func TestBuildTable_DuplicateRowKeepsCanonicalEntry(t *testing.T) {
	// Row 2 re-lists a row-1 spelling and nothing else. The alias now
	// resolves to row 2, so row 2 must still get a reference entry or
	// every result resolved through "Ann" would point at a missing id.
	table := BuildTable([][]string{
		{"Ann"},
		{"Ann"},
	})

	id, ok := table.Resolve("Ann")
	if !ok || id != 2 {
		t.Errorf("Resolve(Ann) = %d, %v; want 2, true", id, ok)
	}

	canon := table.Canonical()
	if len(canon) != 2 {
		t.Fatalf("Canonical() has %d entries, want 2", len(canon))
	}
	if canon[1] != (Entry{ID: 2, Name: "Ann"}) {
		t.Errorf("canon[1] = %+v, want {2 Ann}", canon[1])
	}
}

func TestResolvePrefix_FirstHitInInsertionOrder(t *testing.T) {
	table := BuildTable([][]string{
		{"Alice"},
		{"Alfred"},
	})

	// Both start with "Al"; Alice was inserted first.
	id, ok := table.ResolvePrefix("Al")
	if !ok || id != 1 {
		t.Errorf("ResolvePrefix(Al) = %d, %v; want 1, true", id, ok)
	}
}

func TestResolveToken_ExactBeatsPrefix(t *testing.T) {
	table := BuildTable([][]string{
		{"Anton"},
		{"Ant"},
	})

	// "Ant" prefix-matches Anton (row 1) but exact-matches row 2.
	id, err := table.ResolveToken("player", "Ant")
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if id != 2 {
		t.Errorf("ResolveToken(Ant) = %d, want 2", id)
	}
}

func TestResolveToken_Unresolved(t *testing.T) {
	table := BuildTable([][]string{
		{"Alice"},
	})

	_, err := table.ResolveToken("player", "Z")
	if err == nil {
		t.Fatal("expected error for unresolvable token")
	}
	uaErr, ok := err.(*UnresolvedAliasError)
	if !ok {
		t.Fatalf("error is %T, want *UnresolvedAliasError", err)
	}
	if uaErr.Kind != "player" || uaErr.Token != "Z" {
		t.Errorf("error fields = %+v", uaErr)
	}
}
