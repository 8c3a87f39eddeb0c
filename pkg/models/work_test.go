package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWork_YearValue(t *testing.T) {
	tests := []struct {
		year   FlexString
		want   int
		wantOK bool
	}{
		{"2020", 2020, true},
		{" 1999 ", 1999, true},
		{"2020.0", 2020, true},
		{"2020.7", 2020, true},
		{"+2001", 2001, true},
		{"2018年", 2018, true},
		{"", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"unknown", 0, false},
		{".5", 0, false},
	}
	for _, tt := range tests {
		w := Work{Year: tt.year}
		got, ok := w.YearValue()
		assert.Equal(t, tt.wantOK, ok, string(tt.year))
		assert.Equal(t, tt.want, got, string(tt.year))
	}
}

func TestWork_DecodeFloatYear(t *testing.T) {
	var w Work
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "Float", "year": 2020.0, "countries": []}`), &w))

	y, ok := w.YearValue()
	require.True(t, ok)
	assert.Equal(t, 2020, y)
	assert.Equal(t, FlexString("7"), w.ID)
}

func TestWork_RatingValue(t *testing.T) {
	r, ok := (&Work{Rating: "7.5"}).RatingValue()
	require.True(t, ok)
	assert.InDelta(t, 7.5, r, 1e-9)

	_, ok = (&Work{Rating: "N/A"}).RatingValue()
	assert.False(t, ok)
	_, ok = (&Work{}).RatingValue()
	assert.False(t, ok)
}
