package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	o := NewOpener()

	tmp := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(tmp, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target string
		want   targetKind
	}{
		{"youtube", kindWebApp},
		{"calculator", kindSysApp},
		{"https://example.com", kindURL},
		{"www.example.com", kindURL},
		{tmp, kindPath},
		{"definitely-not-a-thing", kindUnknown},
	}

	for _, tt := range tests {
		kind, _ := o.classify(tt.target)
		assert.Equal(t, tt.want, kind, "target %q", tt.target)
	}
}

func TestClassifyNormalizesWWW(t *testing.T) {
	o := NewOpener()
	_, resolved := o.classify("www.example.com")
	assert.Equal(t, "https://www.example.com", resolved)
}

func TestSuggestions(t *testing.T) {
	o := NewOpener()

	got := o.Suggestions("tube")
	assert.Equal(t, []string{"youtube"}, got)

	assert.Empty(t, o.Suggestions("zzzz"))
}
