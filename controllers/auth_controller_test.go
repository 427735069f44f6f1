package controllers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestSignInSuccess(t *testing.T) {
	srv, repo := newTestServer(t)
	seedUser(t, repo, "alice", "secret")

	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "alice",
		"password": "secret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "session" {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("expected a non-empty session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie must be http-only")
	}

	body := decodeBody(t, resp)
	if body["result"] != "ok" {
		t.Errorf("result = %v, want ok", body["result"])
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Error("expected a token in the body")
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user = %v, want object", body["user"])
	}
	if user["username"] != "alice" {
		t.Errorf("user.username = %v, want alice", user["username"])
	}
	for key := range user {
		if strings.Contains(strings.ToLower(key), "password") {
			t.Errorf("user object leaks %q", key)
		}
	}
}

func TestSignInWrongPassword(t *testing.T) {
	srv, repo := newTestServer(t)
	seedUser(t, repo, "alice", "secret")

	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["result"] != "error" || body["message"] != "Unauthorized." {
		t.Errorf("body = %v, want {result:error, message:Unauthorized.}", body)
	}
}

func TestSignInUnknownUser(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "nobody",
		"password": "secret",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["result"] != "error" || body["message"] != "Unauthorized." {
		t.Errorf("body = %v, want {result:error, message:Unauthorized.}", body)
	}
}

func TestSignInMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "alice",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSignInFirstMatchWins(t *testing.T) {
	srv, repo := newTestServer(t)
	seedUser(t, repo, "alice", "first-pass")
	seedUser(t, repo, "alice", "second-pass")

	// Only the lowest-id user's password signs in.
	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "alice",
		"password": "first-pass",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first user's password: status = %d, want 200", resp.StatusCode)
	}

	resp = postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signin", map[string]string{
		"username": "alice",
		"password": "second-pass",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("second user's password: status = %d, want 401", resp.StatusCode)
	}
}

func TestSignOutAlwaysClearsCookie(t *testing.T) {
	srv, _ := newTestServer(t)

	// No prior session at all.
	resp := postJSON(t, http.DefaultClient, srv.URL+"/api/auth/signout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "session" {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected a clearing session cookie")
	}
	if sessionCookie.Value != "" {
		t.Errorf("cookie value = %q, want empty", sessionCookie.Value)
	}
	if sessionCookie.MaxAge >= 0 {
		t.Errorf("cookie max-age = %d, want negative (delete)", sessionCookie.MaxAge)
	}

	body := decodeBody(t, resp)
	if body["result"] != "ok" {
		t.Errorf("result = %v, want ok", body["result"])
	}
}
