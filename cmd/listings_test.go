package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zaptest/observer"
)

func newListingCommand(t *testing.T, register func(*cobra.Command), values map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "listing"}
	register(cmd)

	for name, value := range values {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("setting --%s: %v", name, err)
		}
	}
	return cmd
}

func loggedIDs(observed *observer.ObservedLogs, kind string) []string {
	var ids []string
	for _, entry := range observed.FilterMessage(kind).All() {
		ids = append(ids, entry.ContextMap()["id"].(string))
	}
	return ids
}

func TestBoundFromFlagIgnoresInvalidInput(t *testing.T) {
	e, observed := newTestEnv(t, "demo-user-1")
	cmd := newListingCommand(t, scholarshipFlags, map[string]string{"min-amount": "abc"})

	if bound := boundFromFlag(e.logger, cmd, "min-amount", "amount"); bound != nil {
		t.Fatalf("expected no bound, got %+v", bound)
	}

	warnings := observed.FilterMessage("ignoring numeric filter").All()
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
	if warnings[0].ContextMap()["flag"] != "min-amount" {
		t.Fatalf("unexpected warning fields: %v", warnings[0].ContextMap())
	}
}

func TestBoundFromFlagBlank(t *testing.T) {
	e, observed := newTestEnv(t, "demo-user-1")
	cmd := newListingCommand(t, scholarshipFlags, nil)

	if bound := boundFromFlag(e.logger, cmd, "min-amount", "amount"); bound != nil {
		t.Fatalf("expected no bound, got %+v", bound)
	}
	if observed.FilterMessage("ignoring numeric filter").Len() != 0 {
		t.Fatalf("blank input must not be reported")
	}
}

func TestListScholarships(t *testing.T) {
	tests := []struct {
		name    string
		flags   map[string]string
		wantIDs []string
	}{
		{
			name:    "minimum amount",
			flags:   map[string]string{"min-amount": "30000"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "invalid minimum keeps everything",
			flags:   map[string]string{"min-amount": "abc"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "region and category",
			flags:   map[string]string{"region": "All India", "category": "STEM"},
			wantIDs: []string{"3"},
		},
		{
			name:    "search",
			flags:   map[string]string{"search": "state board"},
			wantIDs: []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, observed := newTestEnv(t, "demo-user-1")

			listScholarships(e, newListingCommand(t, scholarshipFlags, tt.flags))

			got := loggedIDs(observed, "scholarships")
			if strings.Join(got, ",") != strings.Join(tt.wantIDs, ",") {
				t.Fatalf("expected ids %v, got %v", tt.wantIDs, got)
			}

			found := observed.FilterMessage("found scholarships").All()
			if len(found) != 1 || found[0].ContextMap()["count"] != int64(len(tt.wantIDs)) {
				t.Fatalf("unexpected summary: %v", found)
			}
		})
	}
}

func TestListNothingLeft(t *testing.T) {
	e, observed := newTestEnv(t, "demo-user-1")

	listScholarships(e, newListingCommand(t, scholarshipFlags, map[string]string{"min-amount": "1000000"}))

	exiting := observed.FilterMessage("exiting").All()
	if len(exiting) != 1 || exiting[0].ContextMap()["reason"] != "no scholarships left after filters" {
		t.Fatalf("expected the exit reason, got %v", exiting)
	}
	if observed.FilterMessage("found scholarships").Len() != 0 {
		t.Fatalf("expected no summary")
	}
}

func TestListInternshipsExcludesCompanies(t *testing.T) {
	e, observed := newTestEnv(t, "demo-user-1")

	listInternships(e, newListingCommand(t, internshipFlags, map[string]string{
		"exclude-company": "TechCorp India,Digital Solutions",
	}))

	if got := loggedIDs(observed, "internships"); strings.Join(got, ",") != "2" {
		t.Fatalf("expected only the AnalyticsPro internship, got %v", got)
	}
}

func TestListCollegesAndCoachingByFees(t *testing.T) {
	e, observed := newTestEnv(t, "demo-user-1")

	listColleges(e, newListingCommand(t, collegeFlags, map[string]string{
		"location": "Mumbai",
		"max-fees": "100000",
	}))
	if got := loggedIDs(observed, "colleges"); strings.Join(got, ",") != "3" {
		t.Fatalf("expected St. Xavier's only, got %v", got)
	}

	listCoachingCenters(e, newListingCommand(t, coachingFlags, map[string]string{
		"location": "Kota",
		"max-fees": "130000",
	}))
	if got := loggedIDs(observed, "coaching_centers"); strings.Join(got, ",") != "3" {
		t.Fatalf("expected Resonance only, got %v", got)
	}
}

func TestListDump(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	e, observed := newTestEnv(t, "demo-user-1")

	listScholarships(e, newListingCommand(t, scholarshipFlags, map[string]string{
		"min-amount": "30000",
		"dump":       "true",
	}))

	dumped := observed.FilterMessage("dumping result to file").All()
	if len(dumped) != 1 {
		t.Fatalf("expected one dump entry, got %d", len(dumped))
	}

	filename := dumped[0].ContextMap()["filename"].(string)
	if !strings.HasPrefix(filepath.Base(filename), "scholarships_") {
		t.Fatalf("unexpected file name %q", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	if !strings.Contains(string(data), "Prime Minister Scholarship Scheme") || strings.Contains(string(data), "State Merit Scholarship") {
		t.Fatalf("unexpected dump content: %s", data)
	}
}
