package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEvaluate_ChangeDetection(t *testing.T) {
	tests := []struct {
		name           string
		prev, cur      *string
		keyword        string
		notifyOnChange bool
		wantNotify     bool
		wantReasons    []string
	}{
		{
			name:           "value changed",
			prev:           strPtr("$10.00"),
			cur:            strPtr("$12.00"),
			notifyOnChange: true,
			wantNotify:     true,
			wantReasons:    []string{ReasonChanged},
		},
		{
			name:           "value unchanged",
			prev:           strPtr("$10.00"),
			cur:            strPtr("$10.00"),
			notifyOnChange: true,
			wantNotify:     false,
		},
		{
			name:           "first crawl is not a change",
			prev:           nil,
			cur:            strPtr("$10.00"),
			notifyOnChange: true,
			wantNotify:     false,
		},
		{
			name:           "value disappeared",
			prev:           strPtr("$10.00"),
			cur:            nil,
			notifyOnChange: true,
			wantNotify:     true,
			wantReasons:    []string{ReasonChanged},
		},
		{
			name:           "change alerts disabled",
			prev:           strPtr("$10.00"),
			cur:            strPtr("$12.00"),
			notifyOnChange: false,
			wantNotify:     false,
		},
		{
			name:       "no match twice in a row",
			prev:       nil,
			cur:        nil,
			wantNotify: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.prev, tt.cur, tt.keyword, tt.notifyOnChange)
			assert.Equal(t, tt.wantNotify, d.Notify)
			assert.Equal(t, tt.wantReasons, d.Reasons)
		})
	}
}

func TestEvaluate_Keyword(t *testing.T) {
	tests := []struct {
		name       string
		cur        *string
		keyword    string
		wantNotify bool
	}{
		{"keyword present", strPtr("Back in stock now"), "in stock", true},
		{"keyword case insensitive", strPtr("SOLD OUT"), "sold out", true},
		{"keyword absent", strPtr("nothing to see"), "in stock", false},
		{"blank keyword never fires", strPtr("anything"), "   ", false},
		{"no value to search", nil, "in stock", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(nil, tt.cur, tt.keyword, false)
			assert.Equal(t, tt.wantNotify, d.Notify)
			if tt.wantNotify {
				assert.Equal(t, []string{ReasonKeyword}, d.Reasons)
			}
		})
	}
}

func TestEvaluate_BothReasons(t *testing.T) {
	d := Evaluate(strPtr("waiting"), strPtr("now IN STOCK"), "in stock", true)
	assert.True(t, d.Notify)
	assert.Equal(t, []string{ReasonChanged, ReasonKeyword}, d.Reasons)
}

func TestEvaluate_KeywordOnUnchangedValue(t *testing.T) {
	// keyword keeps firing on every crawl while the value contains it
	d := Evaluate(strPtr("in stock"), strPtr("in stock"), "in stock", true)
	assert.True(t, d.Notify)
	assert.Equal(t, []string{ReasonKeyword}, d.Reasons)
}
