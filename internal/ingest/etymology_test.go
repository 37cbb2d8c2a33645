package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

const pageFixture = `
<div class="mw-parser-output">
  <h2><span class="mw-headline" id="English">English</span></h2>
  <h3><span class="mw-headline" id="Etymology">Etymology</span></h3>
  <p>From Middle English <i>nyght</i>, from Old English <i>niht</i>.<sup>[1]</sup></p>
  <p>Cognate with German Nacht and Dutch nacht.</p>
  <h3><span class="mw-headline" id="Pronunciation">Pronunciation</span></h3>
  <p>Should not appear.</p>
</div>`

const wrappedHeadingFixture = `
<div class="mw-parser-output">
  <div class="mw-heading mw-heading3"><h3 id="Etymology_1">Etymology 1</h3></div>
  <p>Borrowed from Latin.</p>
  <div class="mw-heading mw-heading3"><h3 id="Noun">Noun</h3></div>
  <p>Should not appear.</p>
</div>`

func TestEtymologySection(t *testing.T) {
	got, err := EtymologySection(pageFixture)
	if err != nil {
		t.Fatalf("EtymologySection failed: %v", err)
	}

	if !strings.Contains(got, "From Middle English nyght, from Old English niht.") {
		t.Fatalf("first paragraph missing: %q", got)
	}
	if !strings.Contains(got, "Cognate with German Nacht and Dutch nacht.") {
		t.Fatalf("second paragraph missing: %q", got)
	}
	if strings.Contains(got, "Should not appear") {
		t.Fatalf("text from the next section leaked in: %q", got)
	}
	if strings.Contains(got, "[1]") {
		t.Fatalf("reference marker not stripped: %q", got)
	}
}

func TestEtymologySectionWrappedHeading(t *testing.T) {
	got, err := EtymologySection(wrappedHeadingFixture)
	if err != nil {
		t.Fatalf("EtymologySection failed: %v", err)
	}
	if !strings.Contains(got, "Borrowed from Latin.") {
		t.Fatalf("section text missing: %q", got)
	}
	if strings.Contains(got, "Should not appear") {
		t.Fatalf("text from the next section leaked in: %q", got)
	}
}

func TestEtymologySectionAbsent(t *testing.T) {
	got, err := EtymologySection("<p>No etymology here.</p>")
	if err != nil {
		t.Fatalf("EtymologySection failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty section, got %q", got)
	}
}

func TestCandidateTerms(t *testing.T) {
	got := CandidateTerms("Cognate with German Nacht and Dutch nacht.")
	want := []string{"Cognate", "German", "Nacht", "Dutch"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CandidateTerms = %v, want %v", got, want)
	}
}

func TestFetchPageHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "parse" {
			t.Errorf("missing action=parse, got query %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("page") != "night" {
			t.Errorf("page = %q, want night", r.URL.Query().Get("page"))
		}
		resp := map[string]any{
			"parse": map[string]any{
				"text": map[string]any{"*": "<p>rendered</p>"},
			},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(ClientParams{BaseURL: srv.URL})
	got, err := client.FetchPageHTML(context.Background(), "night")
	if err != nil {
		t.Fatalf("FetchPageHTML failed: %v", err)
	}
	if got != "<p>rendered</p>" {
		t.Fatalf("FetchPageHTML = %q", got)
	}
}

func TestFetchPageHTMLMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"error": map[string]any{"code": "missingtitle", "info": "The page you specified doesn't exist."},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(ClientParams{BaseURL: srv.URL})
	if _, err := client.FetchPageHTML(context.Background(), "zzzz"); err == nil {
		t.Fatalf("expected error for missing page")
	}
}
