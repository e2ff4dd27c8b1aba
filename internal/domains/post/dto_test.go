package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeTagIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"nil", nil, nil},
		{"no duplicates", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"keeps first occurrence", []int64{3, 1, 3, 2, 1}, []int64{3, 1, 2}},
		{"all same", []int64{5, 5, 5}, []int64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeTagIDs(tt.in))
		})
	}
}

func TestCreatePostRequestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{"valid", CreatePostRequest{Title: "Hello", Content: "World"}, false},
		{"valid with tags", CreatePostRequest{Title: "Hello", Content: "World", TagIDs: []int64{1, 2}}, false},
		{"title at max", CreatePostRequest{Title: strings.Repeat("t", 200), Content: "x"}, false},
		{"blank title", CreatePostRequest{Title: "   ", Content: "World"}, true},
		{"title too long", CreatePostRequest{Title: strings.Repeat("t", 201), Content: "x"}, true},
		{"blank content", CreatePostRequest{Title: "Hello", Content: " \t "}, true},
		{"zero tag id", CreatePostRequest{Title: "Hello", Content: "World", TagIDs: []int64{0}}, true},
		{"negative tag id", CreatePostRequest{Title: "Hello", Content: "World", TagIDs: []int64{-1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequestValidate(t *testing.T) {
	strptr := func(s string) *string { return &s }
	idsptr := func(ids ...int64) *[]int64 { return &ids }

	tests := []struct {
		name    string
		req     UpdatePostRequest
		wantErr bool
	}{
		{"all nil is a no-op update", UpdatePostRequest{}, false},
		{"title only", UpdatePostRequest{Title: strptr("New title")}, false},
		{"empty tag list replaces the set", UpdatePostRequest{TagIDs: idsptr()}, false},
		{"blank title rejected", UpdatePostRequest{Title: strptr("  ")}, true},
		{"title too long", UpdatePostRequest{Title: strptr(strings.Repeat("t", 201))}, true},
		{"blank content rejected", UpdatePostRequest{Content: strptr("")}, true},
		{"invalid tag id", UpdatePostRequest{TagIDs: idsptr(0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequestNormalizeKeepsNil(t *testing.T) {
	req := UpdatePostRequest{}
	req.Normalize()

	assert.Nil(t, req.Title)
	assert.Nil(t, req.Content)
	assert.Nil(t, req.TagIDs)
}
