package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{constants.EnvBaseURL, constants.EnvLocale, constants.EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&settings{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "countrylist.toml")
	file := "[api]\nbase_url = \"https://file.example\"\n\n[ui]\nlocale = \"fr\"\n"
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &settings{configPath: path, baseURL: "https://flag.example", logLevel: "debug", noFlags: true}
	cfg, err := s.load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.API.BaseURL != "https://flag.example" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.UI.Locale != "fr" {
		t.Errorf("locale = %q, want the file value", cfg.UI.Locale)
	}
	if cfg.Log.Level != "debug" || cfg.Flags.Enabled {
		t.Errorf("log level %q flags %v", cfg.Log.Level, cfg.Flags.Enabled)
	}
}

func TestInvalidFlagIsRejected(t *testing.T) {
	clearEnv(t)

	s := &settings{baseURL: "ftp://nope", envFile: filepath.Join(t.TempDir(), "missing.env")}
	if _, err := s.load(); err == nil || !strings.Contains(err.Error(), "api.base_url") {
		t.Fatalf("load() error = %v", err)
	}
}

func TestFetchCountries(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/country" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"ID":1,"Name":"Canada","Code":"CA"},{"ID":2,"Name":"Mexico","Code":"MX"}]`))
	}))
	defer srv.Close()

	out, err := execute(t, "fetch", "--base-url", srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ID", "CA", "Canada", "Mexico"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFetchProvinces(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/country/1/province" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"Name":"Yukon","Code":"YT","CountryCode":"CA"}]`))
	}))
	defer srv.Close()

	out, err := execute(t, "fetch", "--base-url", srv.URL, "--provinces", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Yukon") || !strings.Contains(out, "1 province") {
		t.Errorf("output:\n%s", out)
	}
}

func TestFetchFailure(t *testing.T) {
	clearEnv(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := execute(t, "fetch", "--base-url", srv.URL); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestConfigPrintsTOML(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "config", "--locale", "es")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `locale = "es"`) || !strings.Contains(out, "[api]") {
		t.Errorf("output:\n%s", out)
	}
}
