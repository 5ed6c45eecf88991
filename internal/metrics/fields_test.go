package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrProvider != "provider" || AttrStage != "stage" {
		t.Fatalf("metric attribute keys changed: %q %q", AttrProvider, AttrStage)
	}
}
