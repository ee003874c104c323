package automation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordServer captures the last request seen and answers with a canned
// JSON body.
func recordServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.contentType = r.Header.Get("Content-Type")
		rec.body = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

func TestNoArgCommandsPostExactBody(t *testing.T) {
	tests := []struct {
		command string
		call    func(*Client, context.Context) map[string]any
	}{
		{"openNewTab", (*Client).OpenNewTab},
		{"clickPlusButton", (*Client).ClickPlusButton},
		{"clickMCPButton", (*Client).ClickMCPButton},
		{"clickSettingsButton", (*Client).ClickSettingsButton},
		{"clickHistoryButton", (*Client).ClickHistoryButton},
		{"clickAccountButton", (*Client).ClickAccountButton},
		{"addTerminalOutput", (*Client).AddTerminalOutput},
		{"switchToPlanMode", (*Client).SwitchToPlanMode},
		{"switchToActMode", (*Client).SwitchToActMode},
		{"getTaskStatus", (*Client).GetTaskStatus},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			server, rec := recordServer(t, http.StatusOK, `{"success":true}`)
			client := New(server.URL)

			result := tt.call(client, context.Background())

			want := `{"command":"` + tt.command + `"}`
			if rec.body != want {
				t.Errorf("body = %s, want %s", rec.body, want)
			}
			if rec.method != http.MethodPost {
				t.Errorf("method = %s, want POST", rec.method)
			}
			if rec.path != "/" {
				t.Errorf("path = %s, want /", rec.path)
			}
			if rec.contentType != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", rec.contentType)
			}
			if success, _ := result["success"].(bool); !success {
				t.Errorf("result = %v, want success true", result)
			}
		})
	}
}

func TestSendTextBody(t *testing.T) {
	server, rec := recordServer(t, http.StatusOK, `{"success":true}`)
	client := New(server.URL)

	client.SendText(context.Background(), "hello", false)
	want := `{"command":"sendText","args":{"text":"hello","isNewTask":false}}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}

	client.SendText(context.Background(), "hello", true)
	want = `{"command":"sendText","args":{"text":"hello","isNewTask":true}}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestStartNewTaskPositionalArgs(t *testing.T) {
	server, rec := recordServer(t, http.StatusOK, `{"success":true}`)
	client := New(server.URL)

	client.StartNewTask(context.Background(), "t", nil)
	want := `{"command":"startNewTask","args":["t"]}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}

	client.StartNewTask(context.Background(), "t", []string{"img1"})
	want = `{"command":"startNewTask","args":["t",["img1"]]}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}

	// An empty image list behaves like none at all.
	client.StartNewTask(context.Background(), "t", []string{})
	want = `{"command":"startNewTask","args":["t"]}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestRangeCommandsBody(t *testing.T) {
	start := Position{Line: 1, Character: 0}
	end := Position{Line: 1, Character: 5}
	wantRange := `{"range":{"start":{"line":1,"character":0},"end":{"line":1,"character":5}}}`

	server, rec := recordServer(t, http.StatusOK, `{"success":true}`)
	client := New(server.URL)

	client.AddToChat(context.Background(), start, end)
	if want := `{"command":"addToChat","args":` + wantRange + `}`; rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}

	client.FixWithCline(context.Background(), start, end)
	if want := `{"command":"fixWithCline","args":` + wantRange + `}`; rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestClickSelectButtonBody(t *testing.T) {
	server, rec := recordServer(t, http.StatusOK, `{"success":true}`)
	client := New(server.URL)

	client.ClickSelectButton(context.Background(), "btn-1")
	want := `{"command":"clickSelectButton","args":{"buttonId":"btn-1"}}`
	if rec.body != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestExecutePassesResponseThrough(t *testing.T) {
	server, _ := recordServer(t, http.StatusOK, `{"success":true,"taskStatus":"running","extra":[1,2]}`)
	client := New(server.URL)

	result := client.Execute(context.Background(), "getTaskStatus", nil)

	if status, _ := result["taskStatus"].(string); status != "running" {
		t.Errorf("taskStatus = %v, want running", result["taskStatus"])
	}
	if _, ok := result["extra"]; !ok {
		t.Errorf("expected extra key in result, got %v", result)
	}
}

func TestExecuteUnreachableReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(url)
	result := client.Execute(context.Background(), "openNewTab", nil)

	if success, ok := result["success"].(bool); !ok || success {
		t.Fatalf("result = %v, want success false", result)
	}
	if msg, _ := result["error"].(string); msg == "" {
		t.Fatalf("result = %v, want non-empty error", result)
	}
}

func TestExecuteNon2xxReturnsSentinel(t *testing.T) {
	server, _ := recordServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := New(server.URL)

	result := client.Execute(context.Background(), "openNewTab", nil)

	if success, ok := result["success"].(bool); !ok || success {
		t.Fatalf("result = %v, want success false", result)
	}
	if msg, _ := result["error"].(string); msg == "" {
		t.Fatalf("result = %v, want non-empty error", result)
	}
}

func TestExecuteMalformedResponseReturnsSentinel(t *testing.T) {
	server, _ := recordServer(t, http.StatusOK, `not json`)
	client := New(server.URL)

	result := client.Execute(context.Background(), "openNewTab", nil)

	if success, ok := result["success"].(bool); !ok || success {
		t.Fatalf("result = %v, want success false", result)
	}
}

func TestListCommands(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/commands" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"command": "openNewTab", "description": "Open Cline in a new tab"},
			{"command": "getTaskStatus"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	commands := client.ListCommands(context.Background())

	if len(commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(commands))
	}
	if name, _ := commands[0]["command"].(string); name != "openNewTab" {
		t.Errorf("commands[0] = %v, want openNewTab", commands[0])
	}
}

func TestListCommandsUnreachableReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(url)
	commands := client.ListCommands(context.Background())

	if commands == nil {
		t.Fatal("commands is nil, want empty slice")
	}
	if len(commands) != 0 {
		t.Fatalf("got %d commands, want 0", len(commands))
	}
}

func TestListCommandsNon2xxReturnsEmpty(t *testing.T) {
	server, _ := recordServer(t, http.StatusBadGateway, `oops`)
	client := New(server.URL)

	commands := client.ListCommands(context.Background())
	if len(commands) != 0 {
		t.Fatalf("got %d commands, want 0", len(commands))
	}
}

func TestNewDefaults(t *testing.T) {
	if got := New("").BaseURL(); got != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", got, DefaultBaseURL)
	}
	if got := New("http://localhost:3000/").BaseURL(); got != "http://localhost:3000" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", got)
	}
}
