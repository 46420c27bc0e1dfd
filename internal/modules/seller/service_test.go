package seller

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ama's Closet":      "ama-s-closet",
		"  Kente & Co.  ":   "kente-co",
		"GLAM by Efua 24/7": "glam-by-efua-24-7",
		"!!!":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}

type memoryRepo struct {
	bySlug   map[string]*Seller
	failOnce bool
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{bySlug: make(map[string]*Seller)} }

func (m *memoryRepo) Create(ctx context.Context, s *Seller) error {
	if m.failOnce {
		m.failOnce = false
		return fmt.Errorf(`duplicate key value violates unique constraint "profiles_slug_key"`)
	}
	if _, ok := m.bySlug[s.Slug]; ok {
		return fmt.Errorf(`duplicate key value violates unique constraint "profiles_slug_key"`)
	}
	m.bySlug[s.Slug] = s
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*Seller, error) {
	for _, s := range m.bySlug {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no rows")
}

func (m *memoryRepo) GetBySlug(ctx context.Context, slug string) (*Seller, error) {
	s, ok := m.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return s, nil
}

func (m *memoryRepo) Update(ctx context.Context, s *Seller) error { return nil }

func (m *memoryRepo) List(ctx context.Context) ([]*Seller, error) {
	var out []*Seller
	for _, s := range m.bySlug {
		out = append(out, s)
	}
	return out, nil
}

func TestOnboardDerivesSlug(t *testing.T) {
	svc := NewService(newMemoryRepo())

	sl, err := svc.Onboard(context.Background(), "Ama's Closet", "0200000000")

	require.NoError(t, err)
	assert.Equal(t, "ama-s-closet", sl.Slug)
	assert.Equal(t, "Ama's Closet", sl.BusinessName)
}

func TestOnboardRetriesOnSlugCollision(t *testing.T) {
	repo := newMemoryRepo()
	repo.failOnce = true
	svc := NewService(repo)

	sl, err := svc.Onboard(context.Background(), "Ama's Closet", "0200000000")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sl.Slug, "ama-s-closet-"))
	assert.Len(t, sl.Slug, len("ama-s-closet-")+4)
}

func TestOnboardRejectsEmptyName(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Onboard(context.Background(), "   ", "0200000000")
	assert.Error(t, err)

	_, err = svc.Onboard(context.Background(), "!!!", "0200000000")
	assert.Error(t, err)
}
