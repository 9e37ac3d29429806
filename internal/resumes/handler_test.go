package resumes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/resumes"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	svc := resumes.NewService(resumes.NewSeededMemoryRepo())
	resumes.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestResumesListSeedsDashboard(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var list []resumes.ResumeSummary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d", len(list))
	}
	if list[0].Completion <= 0 {
		t.Fatalf("seeded completion = %d", list[0].Completion)
	}
}

func TestResumesCreateAndGet(t *testing.T) {
	router := newTestRouter()

	body := bytes.NewBufferString(`{"name":"Backend Engineer Resume"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", resp.Code, resp.Body.String())
	}
	var created resumes.ResumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Template != "Modern" {
		t.Fatalf("created = %+v", created)
	}
	if created.Document.Empty() {
		t.Fatal("new resume should carry the starter document")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("get status = %d", respGet.Code)
	}
}

func TestResumesCreateRequiresName(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", bytes.NewBufferString(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestResumesGetUnknownIs404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/does-not-exist", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestResumesUpdateAndDelete(t *testing.T) {
	router := newTestRouter()

	// Create.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", bytes.NewBufferString(`{"name":"Draft"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var created resumes.ResumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Rename.
	reqPatch := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/"+created.ID, bytes.NewBufferString(`{"name":"Final"}`))
	reqPatch.Header.Set("Content-Type", "application/json")
	respPatch := httptest.NewRecorder()
	router.ServeHTTP(respPatch, reqPatch)
	if respPatch.Code != http.StatusOK {
		t.Fatalf("patch status = %d", respPatch.Code)
	}
	var updated resumes.ResumeResponse
	if err := json.NewDecoder(respPatch.Body).Decode(&updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Name != "Final" {
		t.Fatalf("name = %q", updated.Name)
	}

	// Delete, then the record is gone.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+created.ID, nil)
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", respDel.Code)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", respGet.Code)
	}
}
