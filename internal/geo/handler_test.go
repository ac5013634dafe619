package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupGeoRouter(baseURL string) (*gin.Engine, *InMemoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := NewInMemoryRepository()
	handler := NewHandler(NewClient(baseURL), repo)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Next()
	})
	r.GET("/geo/config", handler.GetConfig)
	r.GET("/geo/reverse", handler.Reverse)
	r.GET("/geo/search", handler.Search)
	r.GET("/geo/location", handler.GetLocation)
	r.PUT("/geo/location", handler.PutLocation)
	return r, repo
}

func TestConfigEndpoint(t *testing.T) {
	r, _ := setupGeoRouter("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/config", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cfg MapConfig
	if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("failed to decode config: %v", err)
	}
	if cfg.Center != [2]float64{30.0444, 31.2357} || cfg.DefaultZoom != 9 {
		t.Fatalf("unexpected map defaults: %+v", cfg)
	}
	if cfg.SearchDebounceMS != 400 {
		t.Errorf("expected 400ms search debounce, got %d", cfg.SearchDebounceMS)
	}
}

func TestReverseEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"address":{"country_code":"eg","state":"الإسكندرية","suburb":"سموحة"}}`)
	}))
	defer srv.Close()
	r, _ := setupGeoRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/reverse?lat=31.2&lng=29.9", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res ReverseResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if !res.Usable || res.Location.Name != "الإسكندرية, سموحة" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReverseEndpointRequiresCoordinates(t *testing.T) {
	r, _ := setupGeoRouter("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/reverse?lat=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReverseEndpointBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	r, _ := setupGeoRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/reverse?lat=30&lng=31", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestSearchEndpointNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()
	r, _ := setupGeoRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/search?q=nowhere", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Places    []Place `json:"places"`
		NoResults bool    `json:"no_results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.NoResults || len(resp.Places) != 0 {
		t.Fatalf("expected explicit no-results answer, got %+v", resp)
	}
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	r, _ := setupGeoRouter("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/search?q=%20%20", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	r, _ := setupGeoRouter("")

	// nothing saved yet
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/location", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Location *Location `json:"location"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Location != nil {
		t.Fatalf("expected no saved location, got %+v", resp.Location)
	}

	body := []byte(`{"lat":30.0444,"lng":31.2357,"name":"القاهرة, وسط البلد"}`)
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/geo/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geo/location", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Location == nil || resp.Location.Name != "القاهرة, وسط البلد" {
		t.Fatalf("expected saved location back, got %+v", resp.Location)
	}
}

func TestPutLocationAllowsManualEntryWithoutCoordinates(t *testing.T) {
	r, repo := setupGeoRouter("")

	body := []byte(`{"name":"العنوان المكتوب يدويا"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/geo/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	loc, _ := repo.LoadLocation(req.Context(), "u1")
	if loc == nil || loc.Lat != nil || loc.Lng != nil {
		t.Fatalf("expected saved name-only location, got %+v", loc)
	}
}

func TestPutLocationRequiresName(t *testing.T) {
	r, _ := setupGeoRouter("")
	body := []byte(`{"lat":30.0,"lng":31.0,"name":"  "}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/geo/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
