package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, func() string { return "tok-123" })
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "" })
	_, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	})

	_, err := c.ListDocuments(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestClientErrorDetailParsing(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPart string
	}{
		{"structured detail", `{"detail":"file too large"}`, "file too large"},
		{"raw text fallback", `upstream exploded`, "upstream exploded"},
		{"empty body", ``, "422"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			})

			_, err := c.ListDocuments(context.Background())
			require.Error(t, err)
			assert.False(t, IsUnauthorized(err))
			assert.Contains(t, err.Error(), tt.wantPart)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
		})
	}
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, func() string { return "" })
	_, err := c.ListDocuments(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"access_token":"jwt-abc"}`))
	})

	tok, err := c.Login(context.Background(), "a@b.c", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)
}

func TestLoginEmptyToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Login(context.Background(), "a@b.c", "hunter2")
	require.Error(t, err)
}

func TestUploadMultipartFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/documents/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Report.PDF", r.FormValue("filename"))
		assert.Equal(t, "application/pdf", r.FormValue("content_type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "Report.PDF", header.Filename)

		w.Write([]byte(`{"document_id":"doc-1","status":"uploaded"}`))
	})

	res, err := c.Upload(context.Background(), "Report.PDF", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "doc-1", res.DocumentID)
	assert.False(t, res.Duplicate)
}

func TestUploadDuplicate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document_id":"doc-1","status":"duplicate"}`))
	})

	res, err := c.Upload(context.Background(), "a.txt", "text/plain", strings.NewReader("hi"))
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
}

func TestSummarize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/documents/doc-9/summarize", r.URL.Path)
		w.Write([]byte(`{"summary":"ten pages of filler"}`))
	})

	s, err := c.Summarize(context.Background(), "doc-9")
	require.NoError(t, err)
	assert.Equal(t, "ten pages of filler", s)
}

func TestChatSendsHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, jsonDecode(r, &req))
		assert.Equal(t, "and then?", req.Message)
		require.Len(t, req.History, 2)
		assert.Equal(t, "user", req.History[0].Role)
		assert.Equal(t, "assistant", req.History[1].Role)
		w.Write([]byte(`{"reply":"that is all"}`))
	})

	reply, err := c.Chat(context.Background(), "and then?", testHistory())
	require.NoError(t, err)
	assert.Equal(t, "that is all", reply)
}

func TestDeleteDocument(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteDocument(context.Background(), "doc-2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/documents/doc-2", gotPath)
}

// ---- helpers ----

func jsonDecode(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func testHistory() []domain.Message {
	return []domain.Message{
		domain.NewMessage(domain.RoleUser, "summarize my invoices"),
		domain.NewMessage(domain.RoleAssistant, "you have three invoices"),
	}
}
