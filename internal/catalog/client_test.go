package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUnmarshalIDKeys(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"numeric id", `{"id":1,"name":"Fruity"}`, "1"},
		{"string id", `{"id":"abc","name":"Fruity"}`, "abc"},
		{"mongo _id", `{"_id":"65f1c0ffee","name":"Fruity"}`, "65f1c0ffee"},
		{"extended json _id", `{"_id":{"$oid":"65f1c0ffee"},"name":"Fruity"}`, "65f1c0ffee"},
		{"id wins over _id", `{"id":7,"_id":"x","name":"Fruity"}`, "7"},
		{"zero id falls back", `{"id":0,"_id":"x","name":"Fruity"}`, "x"},
		{"empty id falls back", `{"id":"","_id":"x","name":"Fruity"}`, "x"},
		{"null id falls back", `{"id":null,"_id":5,"name":"Fruity"}`, "5"},
		{"neither", `{"name":"Fruity"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Category
			require.NoError(t, json.Unmarshal([]byte(tt.json), &c))
			assert.Equal(t, tt.want, c.ID)
			assert.Equal(t, "Fruity", c.Name)
		})
	}
}

func TestCategoryActive(t *testing.T) {
	var cats []Category
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"name":"a"},
		{"id":2,"name":"b","isActive":true},
		{"id":3,"name":"c","isActive":false},
		{"id":4,"name":"d","isActive":null}
	]`), &cats))

	require.Len(t, cats, 4)
	assert.True(t, cats[0].Active())
	assert.True(t, cats[1].Active())
	assert.False(t, cats[2].Active())
	assert.True(t, cats[3].Active())
}

func TestItemUnmarshalOptionalFields(t *testing.T) {
	var items []Item
	require.NoError(t, json.Unmarshal([]byte(`[
		{"_id":"s1","name":"Berry Blast","description":"Mixed berries","image":"/uploads/berry.jpg","price":9.5},
		{"id":2,"name":"Plain"}
	]`), &items))

	require.Len(t, items, 2)
	assert.Equal(t, "s1", items[0].ID)
	assert.Equal(t, "Mixed berries", items[0].Description)
	assert.Equal(t, "/uploads/berry.jpg", items[0].Image)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, 9.5, *items[0].Price)

	assert.Equal(t, "2", items[1].ID)
	assert.Empty(t, items[1].Description)
	assert.Empty(t, items[1].Image)
	assert.Nil(t, items[1].Price)
}

func TestItemUnmarshalRejectsBoolID(t *testing.T) {
	var it Item
	assert.Error(t, json.Unmarshal([]byte(`{"id":true,"name":"x"}`), &it))
}

func TestClientCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[{"id":1,"name":"Fruity"},{"id":2,"name":"Green","isActive":false}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", srv.Client())
	assert.Equal(t, srv.URL+"/api", c.BaseURL())

	cats, err := c.Categories(t.Context())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Fruity", cats[0].Name)
	assert.False(t, cats[1].Active())
}

func TestClientItemsEscapesCategory(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/smoothies", r.URL.Path)
		gotQuery = r.URL.Query().Get("category")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api", srv.Client())
	items, err := c.Items(t.Context(), "a&b c")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "a&b c", gotQuery)
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Items(t.Context(), "2")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se), "expected *StatusError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", se.Body)
	assert.Contains(t, err.Error(), "category 2")
}

func TestClientMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Categories(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestClientNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	_, err := c.Categories(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNullBody)

	items, err := c.Items(t.Context(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNullBody)
	assert.Nil(t, items)
}
