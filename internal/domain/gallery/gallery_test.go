package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

func TestVisible_FiltersAndSortsStably(t *testing.T) {
	items := []models.GalleryItem{
		{ID: 1, Orden: 2, Activo: true},
		{ID: 2, Orden: 1, Activo: false},
		{ID: 3, Orden: 0, Activo: true},
	}

	got := Visible(items)
	assert.Equal(t, []int{3, 1}, ids(got))

	tied := []models.GalleryItem{
		{ID: 10, Orden: 1, Activo: true},
		{ID: 11, Orden: 0, Activo: true},
		{ID: 12, Orden: 1, Activo: true},
	}
	assert.Equal(t, []int{11, 10, 12}, ids(Visible(tied)))
	assert.Empty(t, Visible(nil))
}

func ids(items []models.GalleryItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestLightbox_NextIsCircular(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			l := NewLightbox(n)
			l.Open(start)
			for i := 0; i < n; i++ {
				l.Next()
			}
			assert.Equal(t, start, l.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestLightbox_PrevThenNextIsNoop(t *testing.T) {
	l := NewLightbox(4)
	l.Open(0)
	assert.Equal(t, 3, l.Prev())
	assert.Equal(t, 0, l.Next())
}

func TestLightbox_SingleItemDoesNotMove(t *testing.T) {
	l := NewLightbox(1)
	assert.True(t, l.Open(0))
	assert.Equal(t, 0, l.Next())
	assert.Equal(t, 0, l.Prev())
	p, n := l.Neighbours()
	assert.Equal(t, 0, p)
	assert.Equal(t, 0, n)
}

func TestLightbox_OpenOutOfRange(t *testing.T) {
	l := NewLightbox(0)
	assert.False(t, l.Open(0))
	assert.False(t, l.IsOpen())

	l = NewLightbox(3)
	assert.False(t, l.Open(3))
	assert.True(t, l.Open(2))
	p, n := l.Neighbours()
	assert.Equal(t, 1, p)
	assert.Equal(t, 0, n)
	l.Close()
	assert.False(t, l.IsOpen())
}

func TestEmbedURL(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":           "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                          "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":             "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=x&v=dQw4w9WgXcQ": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://vimeo.com/76979871":                            "https://player.vimeo.com/video/76979871",
		"https://vimeo.com/channels/staffpicks/76979871":        "https://player.vimeo.com/video/76979871",
		"https://www.youtube.com/watch?v=short":                 "https://www.youtube.com/watch?v=short",
		"https://example.com/video.mp4":                         "https://example.com/video.mp4",
		"https://media.example.com/embed/intro-video":           "https://media.example.com/embed/intro-video",
		"https://cdn.example.com/v/abcdefghijk":                 "https://cdn.example.com/v/abcdefghijk",
		"https://vimeo.com/about":                               "https://vimeo.com/about",
		"":                                                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, EmbedURL(in), in)
	}
}
