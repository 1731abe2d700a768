package core

import (
	"context"
	"sync"

	"github.com/Rorical/NovaQuest/internal/nasa"
)

type fakeArchive struct {
	mu      sync.Mutex
	images  []nasa.Image
	err     error
	queries []string
}

func (f *fakeArchive) SearchImages(_ context.Context, query string) ([]nasa.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.images, f.err
}

func (f *fakeArchive) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

type fakePictures struct {
	mu     sync.Mutex
	pic    *nasa.Picture
	batch  []nasa.Picture
	err    error
	dates  []string
	counts []int
}

func (f *fakePictures) PictureOfDay(_ context.Context, date string) (*nasa.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dates = append(f.dates, date)
	return f.pic, f.err
}

func (f *fakePictures) RandomPictures(_ context.Context, count int) ([]nasa.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, count)
	return f.batch, f.err
}

func (f *fakePictures) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.dates) + len(f.counts)
}

type fakeModel struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeModel) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// gatedModel blocks each Generate until its release channel is closed, so
// tests can control completion order.
type gatedModel struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedModel() *gatedModel {
	return &gatedModel{gates: make(map[string]chan struct{})}
}

func (g *gatedModel) gate(prompt string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[prompt]
	if !ok {
		ch = make(chan struct{})
		g.gates[prompt] = ch
	}
	return ch
}

func (g *gatedModel) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case <-g.gate(prompt):
		return "answer for " + prompt, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
