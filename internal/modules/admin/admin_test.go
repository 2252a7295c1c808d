package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blogicum/blogicum/internal/database/databasetest"
	"github.com/blogicum/blogicum/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type adminFixture struct {
	db     *gorm.DB
	router *gin.Engine
	author models.User
	travel models.Category
	food   models.Category
	posts  []models.Post
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := databasetest.Open(t)

	site := NewSite()
	RegisterModels(site)
	r := gin.New()
	if err := site.Mount(r.Group("/admin/api"), db, zap.NewNop()); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	f := &adminFixture{db: db, router: r}
	f.author = models.User{Username: "tolstoy", Password: "x"}
	mustCreate(t, db, &f.author)
	f.travel = models.Category{Publishable: models.NewPublishable(), Title: "Travel", Description: "d", Slug: "travel"}
	mustCreate(t, db, &f.travel)
	f.food = models.Category{Publishable: models.NewPublishable(), Title: "Food", Description: "d", Slug: "food"}
	f.food.IsPublished = false
	mustCreate(t, db, &f.food)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	specs := []struct {
		title     string
		category  *uint
		published bool
	}{
		{"War and Peace", &f.travel.ID, true},
		{"Anna Karenina", &f.travel.ID, false},
		{"Resurrection", &f.food.ID, true},
		{"Childhood", nil, true},
	}
	for i, s := range specs {
		p := models.Post{
			Publishable: models.NewPublishable(),
			Title:       s.title,
			Text:        "text",
			PubDate:     base.AddDate(0, 0, i),
			AuthorID:    f.author.ID,
			CategoryID:  s.category,
		}
		p.IsPublished = s.published
		mustCreate(t, db, &p)
		f.posts = append(f.posts, p)
	}
	return f
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func (f *adminFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

type changelistResponse struct {
	Data       []map[string]any `json:"data"`
	Pagination struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
	Meta ModelInfo `json:"meta"`
}

func (f *adminFixture) changelist(t *testing.T, path string) changelistResponse {
	t.Helper()
	w := f.do(t, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d: %s", path, w.Code, w.Body.String())
	}
	var resp changelistResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func titlesOf(rows []map[string]any) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r["title"].(string)
	}
	return out
}

func TestRegisterTwicePanics(t *testing.T) {
	site := NewSite()
	site.Register(&ModelAdmin[models.Location]{Name: "locations"})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	site.Register(&ModelAdmin[models.Location]{Name: "locations"})
}

func TestDefaultSiteHasBlogModels(t *testing.T) {
	for _, name := range []string{"categories", "locations", "posts", "users"} {
		if !Default.IsRegistered(name) {
			t.Errorf("%s is not registered on the default site", name)
		}
	}
	for _, info := range Default.Models() {
		wantActions := info.Name != "users"
		if got := len(info.Actions) > 0; got != wantActions {
			t.Errorf("%s: has actions = %v, want %v", info.Name, got, wantActions)
		}
	}
}

func TestIndex(t *testing.T) {
	f := newAdminFixture(t)
	w := f.do(t, http.MethodGet, "/admin/api", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		SiteHeader string      `json:"site_header"`
		Models     []ModelInfo `json:"models"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SiteHeader == "" || len(resp.Models) != 4 {
		t.Errorf("unexpected index %+v", resp)
	}
}

func TestPostChangelist(t *testing.T) {
	f := newAdminFixture(t)

	resp := f.changelist(t, "/admin/api/posts")
	got := titlesOf(resp.Data)
	want := []string{"Childhood", "Resurrection", "Anna Karenina", "War and Peace"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("default ordering: got %v, want %v", got, want)
	}
	if resp.Data[0]["author"] != "tolstoy" || resp.Data[0]["category"] != nil {
		t.Errorf("relation display: %v", resp.Data[0])
	}
	if resp.Data[3]["category"] != "Travel" {
		t.Errorf("category label: %v", resp.Data[3]["category"])
	}
	if len(resp.Meta.ListEditable) != 1 || resp.Meta.ListEditable[0] != "is_published" {
		t.Errorf("meta: %+v", resp.Meta)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"is_published=false", []string{"Anna Karenina"}},
		{"category_id=null", []string{"Childhood"}},
		{fmt.Sprintf("category_id=%d&is_published=true", f.travel.ID), []string{"War and Peace"}},
		{"pub_date__gte=2026-03-02T00:00:00Z&pub_date__lte=2026-03-03T23:59:59Z", []string{"Resurrection", "Anna Karenina"}},
		{"pub_date__gte=2026-03-02T14:00:00%2B03:00", []string{"Childhood", "Resurrection", "Anna Karenina"}},
		{"q=anna", []string{"Anna Karenina"}},
		{"q=TOLSTOY+peace", []string{"War and Peace"}},
		{"ordering=title", []string{"Anna Karenina", "Childhood", "Resurrection", "War and Peace"}},
	}
	for _, tt := range tests {
		resp := f.changelist(t, "/admin/api/posts?"+tt.query)
		if got := titlesOf(resp.Data); fmt.Sprint(got) != fmt.Sprint(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.query, got, tt.want)
		}
		if resp.Pagination.Total != int64(len(tt.want)) {
			t.Errorf("%s: total %d, want %d", tt.query, resp.Pagination.Total, len(tt.want))
		}
	}

	page := f.changelist(t, "/admin/api/posts?size=3&page=2")
	if len(page.Data) != 1 || page.Pagination.Total != 4 {
		t.Errorf("second page: %d rows, total %d", len(page.Data), page.Pagination.Total)
	}

	for _, bad := range []string{"is_published=maybe", "category_id=abc", "pub_date__gte=yesterday", "ordering=author"} {
		if w := f.do(t, http.MethodGet, "/admin/api/posts?"+bad, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", bad, w.Code)
		}
	}
}

func TestBulkActionsReportMatchedRows(t *testing.T) {
	f := newAdminFixture(t)

	ids := []uint{f.travel.ID, f.food.ID, 9999}
	w := f.do(t, http.MethodPost, "/admin/api/categories/actions/publish", gin.H{"ids": ids})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var result ActionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Count != 2 || result.Message != "Published: 2" {
		t.Errorf("unexpected result %+v", result)
	}
	var published int64
	f.db.Model(&models.Category{}).Where("is_published = ?", true).Count(&published)
	if published != 2 {
		t.Errorf("%d published categories, want 2", published)
	}

	w = f.do(t, http.MethodPost, "/admin/api/posts/actions/unpublish", gin.H{"ids": []uint{f.posts[0].ID}})
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil || result.Count != 1 {
		t.Errorf("unpublish result %+v, %v", result, err)
	}

	if w := f.do(t, http.MethodPost, "/admin/api/posts/actions/explode", gin.H{"ids": []uint{1}}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status %d", w.Code)
	}
	if w := f.do(t, http.MethodPost, "/admin/api/posts/actions/publish", gin.H{"ids": []uint{}}); w.Code != http.StatusBadRequest {
		t.Errorf("empty selection: status %d", w.Code)
	}
	if w := f.do(t, http.MethodPost, "/admin/api/users/actions/publish", gin.H{"ids": []uint{f.author.ID}}); w.Code != http.StatusBadRequest {
		t.Errorf("users have no publish action: status %d", w.Code)
	}
}

func TestInlineEdit(t *testing.T) {
	f := newAdminFixture(t)
	draft := f.posts[1]
	path := fmt.Sprintf("/admin/api/posts/%d", draft.ID)

	w := f.do(t, http.MethodPatch, path, gin.H{"is_published": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var stored models.Post
	f.db.First(&stored, draft.ID)
	if !stored.IsPublished || !stored.CreatedAt.Equal(draft.CreatedAt) {
		t.Errorf("stored %+v", stored)
	}

	w = f.do(t, http.MethodPatch, path, gin.H{"title": "Changed", "is_published": false})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-editable field: status %d", w.Code)
	}
	f.db.First(&stored, draft.ID)
	if stored.Title != draft.Title || !stored.IsPublished {
		t.Errorf("rejected edit was partially applied: %+v", stored)
	}

	if w := f.do(t, http.MethodPatch, "/admin/api/categories/"+fmt.Sprint(f.travel.ID), gin.H{"is_published": false}); w.Code != http.StatusBadRequest {
		t.Errorf("categories have no inline edit: status %d", w.Code)
	}
	if w := f.do(t, http.MethodPatch, "/admin/api/posts/9999", gin.H{"is_published": true}); w.Code != http.StatusNotFound {
		t.Errorf("missing post: status %d", w.Code)
	}
}

func TestDetail(t *testing.T) {
	f := newAdminFixture(t)
	w := f.do(t, http.MethodGet, fmt.Sprintf("/admin/api/posts/%d", f.posts[0].ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		Object         models.Post `json:"object"`
		Label          string      `json:"label"`
		ReadonlyFields []string    `json:"readonly_fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Object.Author == nil || resp.Label != "War and Peace" || resp.ReadonlyFields[0] != "created_at" {
		t.Errorf("unexpected detail %+v", resp)
	}
	if w := f.do(t, http.MethodGet, "/admin/api/posts/abc", nil); w.Code != http.StatusNotFound {
		t.Errorf("bad id: status %d", w.Code)
	}
}
