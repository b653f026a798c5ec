package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, Page) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg, err := NewRegistry(namedRenderer("text"), namedRenderer("html"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "text"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("html") {
		t.Fatalf("expected html registered")
	}
	if err := reg.Register(namedRenderer("html")); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := reg.Register(namedRenderer(" ")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, err := reg.Get("pdf"); !errors.Is(err, ErrUnknownRenderer) || !strings.Contains(err.Error(), "html, text") {
		t.Fatalf("expected not found listing names, got %v", err)
	}
}

func TestRegistry_Render(t *testing.T) {
	reg, err := NewRegistry(namedRenderer("text"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	out, err := reg.Render(context.Background(), "text", Page{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := Output{ContentType: "text/plain", Body: []byte("text")}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if _, err := reg.Render(context.Background(), "html", Page{}); !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("expected unknown renderer, got %v", err)
	}
}
