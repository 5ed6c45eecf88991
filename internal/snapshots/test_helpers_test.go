package snapshots

import (
	"os"
	"testing"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

func sampleRecords() []stats.UserStat {
	return []stats.UserStat{
		{Source: "Rosetta@home", Username: "cfu288", TotalCredit: "98,765"},
		{Source: "Einstein@Home", Username: "cfu288", TotalCredit: "1,200"},
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
	return data
}

func requireAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent, stat err=%v", path, err)
	}
}
