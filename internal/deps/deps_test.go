package deps

import (
	"testing"

	"shoebox/internal/testsupport"
)

func TestRequirementsWithoutCorruptionCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	reqs := Requirements(cfg)
	if len(reqs) != 2 {
		t.Fatalf("got %d requirements, want 2", len(reqs))
	}
	for _, req := range reqs {
		if !req.Optional {
			t.Errorf("requirement %s should be optional", req.Name)
		}
	}
}

func TestRequirementsWithCorruptionCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCorruptionCheck())
	reqs := Requirements(cfg)
	if len(reqs) != 3 {
		t.Fatalf("got %d requirements, want 3", len(reqs))
	}
	last := reqs[len(reqs)-1]
	if last.Name != "identify" || last.Optional {
		t.Fatalf("unexpected corruption requirement: %+v", last)
	}
}

func TestCheckBinariesAvailable(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	statuses := CheckBinaries(Requirements(cfg))
	for _, status := range statuses {
		if !status.Available {
			t.Errorf("%s: expected available, got %q", status.Name, status.Detail)
		}
	}
}

func TestCheckBinariesMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "ghost", Command: "definitely-not-a-real-binary"}})
	if len(statuses) != 1 {
		t.Fatal("expected one status")
	}
	if statuses[0].Available {
		t.Fatal("expected unavailable binary")
	}
}

func TestCheckBinariesUnconfigured(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "blank", Command: "  "}})
	if statuses[0].Available || statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected status: %+v", statuses[0])
	}
}
