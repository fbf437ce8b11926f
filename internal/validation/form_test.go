package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "both fields",
			body: "name=Chip&size=small",
			want: map[string]string{"name": "Chip", "size": "small"},
		},
		{
			name: "url escaping",
			body: "name=Mr.+Nutty&size=extra%20large",
			want: map[string]string{"name": "Mr. Nutty", "size": "extra large"},
		},
		{
			name: "repeated key keeps first value",
			body: "name=First&name=Second&size=small",
			want: map[string]string{"name": "First", "size": "small"},
		},
		{
			name: "empty body",
			body: "",
			want: map[string]string{},
		},
		{
			name: "empty value survives parsing",
			body: "name=&size=small",
			want: map[string]string{"name": "", "size": "small"},
		},
		{
			name: "bare token becomes empty-valued key",
			body: "justsometext",
			want: map[string]string{"justsometext": ""},
		},
		{
			name: "malformed escape degrades to empty map",
			body: "name=%zz&size=small",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseForm([]byte(tt.body)))
		})
	}
}

func TestParseForm_InvalidUTF8(t *testing.T) {
	assert.Empty(t, ParseForm([]byte{0xff, 0xfe, 0xfd}))
}

func TestReadForm(t *testing.T) {
	t.Run("reads declared length", func(t *testing.T) {
		body := "name=Chip&size=small"
		req := httptest.NewRequest("POST", "/squirrels", strings.NewReader(body))
		req.Header.Set("Content-Length", "20")

		fields := ReadForm(req)
		assert.Equal(t, "Chip", fields["name"])
		assert.Equal(t, "small", fields["size"])
	})

	t.Run("missing content length yields empty map", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/squirrels", strings.NewReader("name=Chip&size=small"))

		assert.Empty(t, ReadForm(req))
	})

	t.Run("unparseable content length yields empty map", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/squirrels", strings.NewReader("name=Chip&size=small"))
		req.Header.Set("Content-Length", "not-a-number")

		assert.Empty(t, ReadForm(req))
	})

	t.Run("negative content length yields empty map", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/squirrels", strings.NewReader("name=Chip&size=small"))
		req.Header.Set("Content-Length", "-5")

		assert.Empty(t, ReadForm(req))
	})

	t.Run("read is bounded by declared length", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/squirrels", strings.NewReader("name=Chip&size=small"))
		req.Header.Set("Content-Length", "9")

		fields := ReadForm(req)
		assert.Equal(t, map[string]string{"name": "Chip"}, fields)
	})
}
