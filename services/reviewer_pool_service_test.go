package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
)

var poolPattern = regexp.MustCompile("SELECT .* FROM `staff` LEFT JOIN reviewer_assignments")

func staffRow(id int64, regNo, designation string) []driver.Value {
	return []driver.Value{id, regNo, "Staff " + regNo, "CSE", designation}
}

func poolStep(rows [][]driver.Value) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: poolPattern,
		columns: []string{"staff_id", "reg_no", "name", "cluster", "designation"},
		rows:    rows,
	}
}

func TestAvailablePoolOrdersBySeniority(t *testing.T) {
	steps := []*queryStep{
		poolStep([][]driver.Value{
			staffRow(1, "ST01", "Assistant Professor"),
			staffRow(2, "ST02", "Professor"),
			staffRow(3, "ST03", "Head"),
			staffRow(4, "ST04", "Assistant Professor"),
			staffRow(5, "ST05", "Lecturer"),
		}),
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	pool, err := NewReviewerPoolService(db).AvailablePool("CSE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"ST03", "ST02", "ST01", "ST04", "ST05"}
	if len(pool) != len(want) {
		t.Fatalf("pool size = %d, want %d", len(pool), len(want))
	}
	for i, regNo := range want {
		if pool[i].RegNo != regNo {
			t.Errorf("pool[%d] = %s, want %s", i, pool[i].RegNo, regNo)
		}
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestAvailablePoolRequiresCluster(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	if _, err := NewReviewerPoolService(db).AvailablePool(""); err != ErrValidation {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
