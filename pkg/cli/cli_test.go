package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resource-catalog/pkg/config"
	"resource-catalog/pkg/models"

	"github.com/google/uuid"
)

func setupHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"DATABASE_URL", "BASE_URL", "STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

// setupGateway serves fixed categories and resources and saves a config pointing at it
func setupGateway(t *testing.T) (docs models.Category, links models.Category) {
	setupHome(t)

	docs = models.Category{ID: uuid.New(), Name: "Important Documents", Color: "#3B82F6", ResourceType: models.CategoryTypeDocuments}
	links = models.Category{ID: uuid.New(), Name: "Useful Links", Color: "#10B981", ResourceType: models.CategoryTypeLinks}
	url := "https://go.dev"
	resources := []models.Resource{
		{ID: uuid.New(), Title: "Go website", Type: models.ResourceTypeLink, URL: &url, CategoryID: links.ID, Tags: []string{"go"}, CreatedAt: time.Now()},
		{ID: uuid.New(), Title: "Passport scan", Type: models.ResourceTypeDocument, CategoryID: docs.ID, Tags: []string{"id"}, CreatedAt: time.Now()},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid API key"}`))
			return
		}
		switch r.URL.Path {
		case "/api/v1/categories":
			json.NewEncoder(w).Encode([]models.Category{docs, links})
		case "/api/v1/resources":
			json.NewEncoder(w).Encode(resources)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.CLI.BaseURL = server.URL
	cfg.CLI.APIKey = "test-key"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return docs, links
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	setupGateway(t)

	out, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Go website") || !strings.Contains(out, "Passport scan") {
		t.Errorf("Expected both resources in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Useful Links") {
		t.Errorf("Expected category names in output, got:\n%s", out)
	}
}

func TestListCommandFilters(t *testing.T) {
	setupGateway(t)

	out, err := runCommand(t, "list", "--category", "important documents")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Contains(out, "Go website") || !strings.Contains(out, "Passport scan") {
		t.Errorf("Expected only the document, got:\n%s", out)
	}

	out, err = runCommand(t, "list", "--search", "GO", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var got []models.Resource
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Expected JSON output: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].Title != "Go website" {
		t.Errorf("Expected only Go website, got %+v", got)
	}

	if _, err := runCommand(t, "list", "--category", "missing"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestCategoriesCommand(t *testing.T) {
	setupGateway(t)

	out, err := runCommand(t, "categories")
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	if !strings.Contains(out, "Documents") || !strings.Contains(out, "Links") {
		t.Errorf("Expected group headings, got:\n%s", out)
	}
	if strings.Index(out, "Documents") > strings.Index(out, "Links") {
		t.Errorf("Expected documents heading before links, got:\n%s", out)
	}
}

func TestListRequiresAPIKey(t *testing.T) {
	setupHome(t)

	_, err := runCommand(t, "list")
	if err == nil || !strings.Contains(err.Error(), "API key not configured") {
		t.Errorf("Expected missing API key error, got %v", err)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	setupHome(t)

	if _, err := runCommand(t, "config", "set", "cli.api_key=supersecret"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := runCommand(t, "config", "set", "cli.default_view=table"); err == nil {
		t.Error("Expected error for invalid default_view")
	}
	if _, err := runCommand(t, "config", "set", "no-equals-sign"); err == nil {
		t.Error("Expected error for missing '='")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CLI.APIKey != "supersecret" {
		t.Errorf("Expected api key to be saved, got %q", cfg.CLI.APIKey)
	}

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if strings.Contains(out, "supersecret") {
		t.Errorf("Expected api key to be masked, got:\n%s", out)
	}
	if !strings.Contains(out, "base_url") {
		t.Errorf("Expected config keys in output, got:\n%s", out)
	}
}

func TestEditorPassword(t *testing.T) {
	setupHome(t)
	app := NewApp(config.DefaultConfig())

	if ok, err := app.CheckEditorPassword("anything"); err != nil || !ok {
		t.Errorf("Expected any password to pass when none is set, got %v, %v", ok, err)
	}
	if app.passwordChecker() != nil {
		t.Error("Expected no checker when no password is set")
	}

	if err := app.SetEditorPassword("short"); err == nil {
		t.Error("Expected error for short password")
	}
	if err := app.SetEditorPassword("opensesame"); err != nil {
		t.Fatalf("SetEditorPassword failed: %v", err)
	}
	if app.cfg.CLI.EditorPasswordHash == "opensesame" {
		t.Error("Expected password to be stored hashed")
	}

	check := app.passwordChecker()
	if check == nil {
		t.Fatal("Expected a checker once a password is set")
	}
	if !check("opensesame") {
		t.Error("Expected correct password to pass")
	}
	if check("wrong") {
		t.Error("Expected wrong password to fail")
	}

	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CLI.EditorPasswordHash != app.cfg.CLI.EditorPasswordHash {
		t.Error("Expected hash to be saved to the config file")
	}
}

func TestReadPassword(t *testing.T) {
	var out bytes.Buffer
	pw, err := readPassword(strings.NewReader("opensesame\nopensesame\n"), &out)
	if err != nil || pw != "opensesame" {
		t.Errorf("Expected matching password, got %q, %v", pw, err)
	}

	if _, err := readPassword(strings.NewReader("one\ntwo\n"), &out); err == nil {
		t.Error("Expected mismatch error")
	}
	if _, err := readPassword(strings.NewReader("only-once\n"), &out); err == nil {
		t.Error("Expected error on early EOF")
	}
}

func TestFindCategory(t *testing.T) {
	a := models.Category{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"), Name: "Alpha"}
	b := models.Category{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"), Name: "Beta"}
	categories := []models.Category{a, b}

	if c, err := findCategory(categories, "beta"); err != nil || c.ID != b.ID {
		t.Errorf("Expected name match, got %v, %v", c.Name, err)
	}
	if c, err := findCategory(categories, b.ID.String()); err != nil || c.ID != b.ID {
		t.Errorf("Expected full id match, got %v, %v", c.Name, err)
	}
	if _, err := findCategory(categories, "aaaaaaaa"); err == nil {
		t.Error("Expected ambiguous prefix error")
	}
	if _, err := findCategory(categories, "gamma"); err == nil {
		t.Error("Expected not found error")
	}
}
