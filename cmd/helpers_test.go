package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// apiCall is one request seen by the fake API.
type apiCall struct {
	Method string
	Path   string
	Params []json.RawMessage
}

// fakeAPI serves canned bodies keyed by URL path and records every request.
type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	bodies map[string]string
	faults map[string]string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var req struct {
		Parameters []json.RawMessage `json:"parameters"`
	}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &req)
	}

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: r.Method, Path: r.URL.Path, Params: req.Parameters})
	body, ok := f.bodies[r.URL.Path]
	fault, faulted := f.faults[r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case faulted:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fault))
	case ok:
		_, _ = w.Write([]byte(body))
	default:
		_, _ = w.Write([]byte("true"))
	}
}

func (f *fakeAPI) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		paths = append(paths, c.Path)
	}
	return paths
}

func (f *fakeAPI) call(t *testing.T, path string) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Path == path {
			return c
		}
	}
	t.Fatalf("no request to %s; saw %v", path, f.calls)
	return apiCall{}
}

// newFakeAPI starts a fake API and points the SL_* variables at it. HOME
// and the working directory are moved to empty temp dirs.
func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{bodies: map[string]string{}, faults: map[string]string{}}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SL_USERNAME", "SL123456")
	t.Setenv("SL_API_KEY", "secret")
	t.Setenv("SL_ENDPOINT_URL", server.URL)
	t.Setenv("SL_TIMEOUT", "")
	t.Setenv("SL_OUTPUT", "")
	return api
}

// resetFlags restores every flag of cmd and its children to its default so
// runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	defer closeLog()
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func param(t *testing.T, c apiCall, i int, v any) {
	t.Helper()
	if i >= len(c.Params) {
		t.Fatalf("%s: want parameter %d, got %d parameters", c.Path, i, len(c.Params))
	}
	if err := json.Unmarshal(c.Params[i], v); err != nil {
		t.Fatalf("%s: decode parameter %d: %v", c.Path, i, err)
	}
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
