package shared_test

import (
	"testing"

	"innkeep/shared"
)

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(7, "room_id", "rooms")

	where, args := filter.GetWhereClause()

	if where != "(rooms.room_id = :room_id)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["room_id"] != int64(7) {
		t.Errorf("expected room_id arg to be 7, got %v", args["room_id"])
	}
}

func TestFilterByName(t *testing.T) {
	filter := shared.FilterByName("Sunrise Inn", "name", "accommodations")

	where, args := filter.GetWhereClause()

	if where != "(accommodations.name = :name)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["name"] != "Sunrise Inn" {
		t.Errorf("expected name arg to be 'Sunrise Inn', got %v", args["name"])
	}
}
