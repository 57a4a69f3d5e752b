package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"cat-gallery/internal/domain/cats"
	"cat-gallery/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResp struct {
	Query string `json:"query"`
	Trait string `json:"trait"`
	Count int    `json:"count"`
	Empty bool   `json:"empty"`
	Cats  []struct {
		ID          int      `json:"id"`
		Name        string   `json:"name"`
		Image       string   `json:"image"`
		Age         string   `json:"age"`
		Personality []string `json:"personality"`
		Color       string   `json:"color"`
		Breed       string   `json:"breed"`
	} `json:"cats"`
}

func TestHTTP_Search_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Sin filtros => todos, en orden
	{
		st, body := doGet(t, ts.URL, "/api/cats", nil)
		require.Equal(t, http.StatusOK, st, string(body))

		var res searchResp
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, 6, res.Count)
		assert.False(t, res.Empty)
		for i, c := range res.Cats {
			assert.Equal(t, i+1, c.ID)
		}
	}

	// 2) Texto case-insensitive
	{
		st, body := doGet(t, ts.URL, "/api/cats", url.Values{"q": {"РЫЖ"}})
		require.Equal(t, http.StatusOK, st)

		var res searchResp
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "Рыжик", res.Cats[0].Name)
		assert.Equal(t, "РЫЖ", res.Query)
	}

	// 3) Texto + rasgo que no tiene => vacío, 200
	{
		st, body := doGet(t, ts.URL, "/api/cats", url.Values{"q": {"рыж"}, "trait": {"игривый"}})
		require.Equal(t, http.StatusOK, st)

		var res searchResp
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, 0, res.Count)
		assert.True(t, res.Empty)
		assert.NotNil(t, res.Cats)
	}

	// 4) Solo rasgo
	{
		_, body := doGet(t, ts.URL, "/api/cats", url.Values{"trait": {"величественный"}})

		var res searchResp
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, 1, res.Count)
		assert.Equal(t, 2, res.Cats[0].ID)
	}
}

func TestHTTP_GetCat(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doGet(t, ts.URL, "/api/cats/5", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"name":"Пушок"`)

	st, _ = doGet(t, ts.URL, "/api/cats/42", nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doGet(t, ts.URL, "/api/cats/x", nil)
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_Traits(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doGet(t, ts.URL, "/api/traits", nil)
	require.Equal(t, http.StatusOK, st)

	var traits []string
	require.NoError(t, json.Unmarshal(body, &traits))
	assert.Len(t, traits, 18)
	assert.Equal(t, "игривый", traits[0])
}

func TestHTTP_HealthAndRequestID(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestHTTP_Swagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doGet(t, ts.URL, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "/api/cats")
}

type failingRepo struct{}

func (failingRepo) All(context.Context) ([]cats.Cat, error) {
	return nil, errors.New("db down")
}

type dupRepo struct{}

func (dupRepo) All(context.Context) ([]cats.Cat, error) {
	return []cats.Cat{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}, nil
}

func TestHTTP_FallsBackToBuiltInCatalog(t *testing.T) {
	for _, repo := range []cats.Repository{failingRepo{}, dupRepo{}} {
		ts := httptest.NewServer(router.NewRouter(router.Options{Repository: repo}))

		_, body := doGet(t, ts.URL, "/api/cats", nil)
		var res searchResp
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, 6, res.Count)

		ts.Close()
	}
}

type oneCatRepo struct{}

func (oneCatRepo) All(context.Context) ([]cats.Cat, error) {
	return []cats.Cat{{ID: 7, Name: "Tom", Color: "Gray", Breed: "Mixed"}}, nil
}

func TestHTTP_CustomRepository(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Repository: oneCatRepo{}}))
	defer ts.Close()

	_, body := doGet(t, ts.URL, "/api/cats", url.Values{"q": {"gr"}})
	var res searchResp
	require.NoError(t, json.Unmarshal(body, &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, []string{}, res.Cats[0].Personality)

	_, body = doGet(t, ts.URL, "/api/traits", nil)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_ServesAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.jpg"), []byte("jpeg"), 0o600))

	ts := httptest.NewServer(router.NewRouter(router.Options{AssetsDir: dir}))
	defer ts.Close()

	st, body := doGet(t, ts.URL, "/img/cat.jpg", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "jpeg", string(body))
}

func doGet(t *testing.T, baseURL, path string, query url.Values) (int, []byte) {
	t.Helper()

	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	res, err := http.Get(u)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, body
}
