package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/abelbrown/vanity/internal/config"
	"github.com/abelbrown/vanity/internal/store"
)

const availableBody = `<p class="returnLink">Back</p>`

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.Checker.BaseURL = baseURL
	cfg.Checker.Workers = 4
	return cfg
}

func TestGenerateRangeUsesConfig(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.MinLen, cfg.MaxLen = 2, 2
	cfg.Pattern = "^aa"

	r := NewRunner(cfg, nil)
	candidates, err := r.GenerateRange(nil)
	if err != nil {
		t.Fatalf("GenerateRange failed: %v", err)
	}
	// 38 candidates of length 2 start with "a"; only "aa" matches ^aa.
	if !reflect.DeepEqual(candidates, []string{"aa"}) {
		t.Errorf("candidates = %v", candidates)
	}
}

func TestCheckWritesSortedOutputAndRecordsRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/zz") || strings.HasSuffix(r.URL.Path, "/aa") {
			w.Write([]byte(availableBody))
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "vanity.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	cfg := testConfig(t, server.URL)
	r := NewRunner(cfg, st)

	outcome, err := r.Check(context.Background(), []string{"zz", "mm", "aa"}, SourceRange, nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := []string{"aa", "zz"}
	if !reflect.DeepEqual(outcome.Confirmed, want) {
		t.Errorf("confirmed = %v, want %v", outcome.Confirmed, want)
	}
	if outcome.Interrupted {
		t.Error("run marked interrupted")
	}
	if outcome.RunID == 0 {
		t.Error("run was not recorded")
	}

	data, err := os.ReadFile(outcome.OutputPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if string(data) != "aa\nzz" {
		t.Errorf("output file = %q", data)
	}

	saved, err := st.Confirmed(outcome.RunID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(saved, want) {
		t.Errorf("stored confirmed = %v", saved)
	}
}

func TestCheckEmptyCandidates(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	r := NewRunner(cfg, nil)

	outcome, err := r.Check(context.Background(), nil, SourceFile, nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(outcome.Confirmed) != 0 || outcome.Stats.Dispatched != 0 {
		t.Errorf("outcome = %+v", outcome)
	}
}
