package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("tenant_id", "t1"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE tenant_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "name").
		Values("u1", "name-1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderCandidateConditions(t *testing.T) {
	query, args, err := Select("public_id").
		From("teams").
		Where(
			Eq("is_active", true),
			NotEq("public_id", "team-1"),
			Gte("rating", 500.0),
			Lte("rating", 1500.0),
			NotIn("public_id", []any{"team-2", "team-3"}),
			Or(IsNull("lat"), Expr("distance_km(lat, lng, ?, ?) <= ?", 19.0, 72.8, 50.0)),
		).
		OrderBy("id").
		Limit(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id FROM teams WHERE is_active = $1 AND public_id <> $2 AND rating >= $3 AND rating <= $4" +
		" AND public_id NOT IN ($5, $6) AND (lat IS NULL OR distance_km(lat, lng, $7, $8) <= $9) ORDER BY id LIMIT 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 9 || args[1] != "team-1" || args[8] != 50.0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestEmptyGroupConditions(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{name: "not in without values matches all", cond: NotIn("id", nil), want: "SELECT id FROM t WHERE 1=1"},
		{name: "in without values matches none", cond: In("id", nil), want: "SELECT id FROM t WHERE 1=0"},
		{name: "empty or matches none", cond: Or(), want: "SELECT id FROM t WHERE 1=0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := Select("id").From("t").Where(tc.cond).ToSQL()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tc.want || len(args) != 0 {
				t.Fatalf("unexpected query %q args=%+v", query, args)
			}
		})
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     string `db:"public_id"`
		Rating int    `db:"rating,omitempty"`
		Secret string `db:"-"`
		note   string
	}

	query, args, err := InsertModel("teams", row{ID: "team-1", Rating: 1000, Secret: "x", note: "y"}, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	wantQuery := "INSERT INTO teams (public_id, rating) VALUES ($1, $2) ON CONFLICT (public_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "team-1" || args[1] != 1000 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_Batch(t *testing.T) {
	type member struct {
		TeamID string `db:"team_public_id"`
		UserID string `db:"user_public_id"`
	}

	rows := []member{{TeamID: "team-1", UserID: "usr-a"}, {TeamID: "team-1", UserID: "usr-b"}}
	query, args, err := InsertModels("team_members", rows, "ON CONFLICT DO NOTHING")
	if err != nil {
		t.Fatalf("insert models: %v", err)
	}
	wantQuery := "INSERT INTO team_members (team_public_id, user_public_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "team-1" || args[3] != "usr-b" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_Rejects(t *testing.T) {
	type a struct {
		ID string `db:"id"`
	}
	type b struct {
		ID string `db:"id"`
	}

	if _, _, err := InsertModels[a]("t", nil, ""); err == nil {
		t.Fatalf("expected error for empty batch")
	}
	if _, _, err := InsertModels("t", []any{a{ID: "1"}, b{ID: "2"}}, ""); err == nil {
		t.Fatalf("expected error for mixed row types")
	}
	if _, _, err := InsertModel("t", (*a)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := InsertModel("t", struct{ note string }{}, ""); err == nil {
		t.Fatalf("expected error for model without db columns")
	}
}
