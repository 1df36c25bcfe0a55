package service

import (
	"testing"

	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/stretchr/testify/assert"
)

func drain(ch <-chan string) []string {
	var out []string
	for url := range ch {
		out = append(out, url)
	}
	return out
}

func TestFaviconQueue_QueuesUpToSize(t *testing.T) {
	q := NewFaviconQueue(2, logger.Nop())

	q.LoadFavicon("https://a.example/")
	q.LoadFavicon("https://b.example/")
	q.LoadFavicon("https://c.example/")
	q.Close()

	assert.Equal(t, []string{"https://a.example/", "https://b.example/"}, drain(q.Requests()))
	assert.Equal(t, int64(1), q.Dropped())
}

func TestFaviconQueue_ZeroSizeDropsEverything(t *testing.T) {
	q := NewFaviconQueue(0, logger.Nop())

	q.LoadFavicon("https://a.example/")
	q.Close()

	assert.Empty(t, drain(q.Requests()))
	assert.Equal(t, int64(1), q.Dropped())
}

func TestFaviconQueue_ClosedQueueDrops(t *testing.T) {
	q := NewFaviconQueue(4, logger.Nop())
	q.Close()
	q.Close()

	assert.NotPanics(t, func() { q.LoadFavicon("https://a.example/") })
	assert.Equal(t, int64(1), q.Dropped())
}

func TestFaviconQueue_ImplementsFaviconService(t *testing.T) {
	var _ FaviconService = NewFaviconQueue(1, logger.Nop())
}
