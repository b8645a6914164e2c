package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		in   ListParams
		want ListParams
	}{
		{ListParams{}, ListParams{Page: 1, Limit: DefaultPageLimit}},
		{ListParams{Page: -3, Limit: -1}, ListParams{Page: 1, Limit: DefaultPageLimit}},
		{ListParams{Page: 4, Limit: 1000, Search: "x"}, ListParams{Page: 4, Limit: MaxPageLimit, Search: "x"}},
		{ListParams{Page: 2, Limit: 25}, ListParams{Page: 2, Limit: 25}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.in.Normalize())
	}
	require.Equal(t, 50, ListParams{Page: 3, Limit: 25}.Offset())
}

func TestNewPagination(t *testing.T) {
	p := ListParams{Page: 1, Limit: 10}
	require.EqualValues(t, 0, NewPagination(p, 0).TotalPages)
	require.EqualValues(t, 1, NewPagination(p, 10).TotalPages)
	require.EqualValues(t, 2, NewPagination(p, 11).TotalPages)
}

func TestLoginName(t *testing.T) {
	require.Equal(t, "a", LoginRequest{Identifier: "a", Username: "b", Email: "c"}.LoginName())
	require.Equal(t, "b", LoginRequest{Username: "b", Email: "c"}.LoginName())
	require.Equal(t, "c", LoginRequest{Email: "c"}.LoginName())
}

func TestListParamsNormalize_CapsPage(t *testing.T) {
	p := ListParams{Page: 1 << 62, Limit: MaxPageLimit}.Normalize()
	require.Equal(t, MaxPage, p.Page)
	require.Positive(t, p.Offset())
}
