package article_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"project-board/internal/handler/http/article"
	"project-board/internal/handler/http/auth"
)

func authed(req *http.Request, userID string) *http.Request {
	return req.WithContext(auth.WithUser(req.Context(), userID))
}

func TestCreateHandler_Success(t *testing.T) {
	svc, articles := newService()
	handler := article.CreateHandler{Svc: svc}

	body := `{"title": "New post", "content": "Hello #board", "hashtag_text": "#intro"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)), "uno")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if articles.saved == nil {
		t.Fatal("no article was saved")
	}
	if articles.saved.UserID != "uno" {
		t.Errorf("saved.UserID = %q, want %q", articles.saved.UserID, "uno")
	}
	want := map[string]bool{"#board": true, "#intro": true}
	if len(articles.saved.Hashtags) != 2 {
		t.Fatalf("saved.Hashtags = %v, want two tags", articles.saved.Hashtags)
	}
	for _, tag := range articles.saved.Hashtags {
		if !want[tag] {
			t.Errorf("unexpected hashtag %q", tag)
		}
	}
}

func TestCreateHandler_UnknownAuthorStillCreated(t *testing.T) {
	// Soft-fail: the write is skipped but the client sees success.
	svc, articles := newService()
	handler := article.CreateHandler{Svc: svc}

	body := `{"title": "Ghost post", "content": "boo"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)), "ghost")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if articles.saved != nil {
		t.Errorf("article was saved for a missing author: %+v", articles.saved)
	}
}

func TestCreateHandler_MissingTitle(t *testing.T) {
	svc, _ := newService()
	handler := article.CreateHandler{Svc: svc}

	req := authed(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(`{"content": "x"}`)), "uno")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_InvalidJSON(t *testing.T) {
	svc, _ := newService()
	handler := article.CreateHandler{Svc: svc}

	req := authed(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader("{not json")), "uno")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_Unauthenticated(t *testing.T) {
	svc, _ := newService()
	handler := article.CreateHandler{Svc: svc}

	body := `{"title": "New post", "content": "Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
