package sandbox

import (
	"context"
	"testing"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return NewService(store, nil)
}

func mustCreate(t *testing.T, s *Service, kind catalog.Kind, payload map[string]any) Object {
	obj, err := s.Create(context.Background(), kind, payload)
	require.NoError(t, err)
	return obj
}

func objID(o Object) int {
	return int(o["id"].(uint))
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders Relations Nested", func(t *testing.T) {
		s := setupService(t)
		china := mustCreate(t, s, catalog.KindRegion, map[string]any{"name": "China", "slug": "china"})
		sh := mustCreate(t, s, catalog.KindRegion, map[string]any{
			"name": "Shanghai", "slug": "shanghai", "parent": objID(china),
		})

		assert.Equal(t, map[string]any{"id": objID(china)}, sh["parent"])
		assert.Nil(t, china["parent"])
		assert.Equal(t, "Shanghai", sh["name"])
	})

	t.Run("Accepts Nested Relation Input", func(t *testing.T) {
		s := setupService(t)
		m := mustCreate(t, s, catalog.KindManufacturer, map[string]any{"name": "Cisco", "slug": "cisco"})
		p := mustCreate(t, s, catalog.KindPlatform, map[string]any{
			"name": "Cisco IOS", "slug": "cisco-ios", "manufacturer": map[string]any{"id": float64(objID(m))},
		})
		assert.Equal(t, map[string]any{"id": objID(m)}, p["manufacturer"])
	})

	t.Run("Duplicate Slug", func(t *testing.T) {
		s := setupService(t)
		mustCreate(t, s, catalog.KindRegion, map[string]any{"name": "China", "slug": "china"})
		_, err := s.Create(ctx, catalog.KindRegion, map[string]any{"name": "China", "slug": "china"})

		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"region with this slug already exists."}, verr["slug"])
	})

	t.Run("Required Fields", func(t *testing.T) {
		s := setupService(t)
		_, err := s.Create(ctx, catalog.KindTenant, map[string]any{})

		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr, "slug")
		assert.Contains(t, verr, "name")
	})

	t.Run("Unknown Relation", func(t *testing.T) {
		s := setupService(t)
		_, err := s.Create(ctx, catalog.KindRegion, map[string]any{"name": "X", "slug": "x", "parent": 99})

		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Related object not found using the provided numeric ID: 99"}, verr["parent"])
	})

	t.Run("Racks Unique Per Site", func(t *testing.T) {
		s := setupService(t)
		a := mustCreate(t, s, catalog.KindSite, map[string]any{"name": "A", "slug": "a"})
		b := mustCreate(t, s, catalog.KindSite, map[string]any{"name": "B", "slug": "b"})

		mustCreate(t, s, catalog.KindRack, map[string]any{"name": "R01", "site": objID(a)})
		mustCreate(t, s, catalog.KindRack, map[string]any{"name": "R01", "site": objID(b)})

		_, err := s.Create(ctx, catalog.KindRack, map[string]any{"name": "R01", "site": objID(a)})
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"rack with this site and name already exists."}, verr["name"])

		_, err = s.Create(ctx, catalog.KindRack, map[string]any{"name": "R02"})
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr, "site")
	})
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)
	a := mustCreate(t, s, catalog.KindSite, map[string]any{"name": "A", "slug": "a"})
	b := mustCreate(t, s, catalog.KindSite, map[string]any{"name": "B", "slug": "b"})
	mustCreate(t, s, catalog.KindLocation, map[string]any{"name": "Room", "slug": "room", "site": objID(a)})
	mustCreate(t, s, catalog.KindLocation, map[string]any{"name": "Room", "slug": "room", "site": objID(b)})

	all, err := s.List(ctx, catalog.KindLocation, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := s.List(ctx, catalog.KindLocation, map[string]string{"slug": "room", "site_id": "2"})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, map[string]any{"id": 2}, scoped[0]["site"])

	none, err := s.List(ctx, catalog.KindLocation, map[string]string{"slug": "hall"})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	byID, err := s.List(ctx, catalog.KindSite, map[string]string{"id": "1"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "a", byID[0]["slug"])
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)
	cisco := mustCreate(t, s, catalog.KindManufacturer, map[string]any{"name": "Cisco", "slug": "cisco"})
	arista := mustCreate(t, s, catalog.KindManufacturer, map[string]any{"name": "Arista", "slug": "arista"})
	p := mustCreate(t, s, catalog.KindPlatform, map[string]any{"name": "EOS", "slug": "arista-eos", "manufacturer": objID(cisco)})

	t.Run("Relinks Relation", func(t *testing.T) {
		updated, err := s.Update(ctx, catalog.KindPlatform, uint(objID(p)), map[string]any{"manufacturer": objID(arista)})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": objID(arista)}, updated["manufacturer"])
		assert.Equal(t, "EOS", updated["name"])

		got, err := s.Get(ctx, catalog.KindPlatform, uint(objID(p)))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": objID(arista)}, got["manufacturer"])
	})

	t.Run("Clears Relation", func(t *testing.T) {
		updated, err := s.Update(ctx, catalog.KindPlatform, uint(objID(p)), map[string]any{"manufacturer": nil})
		require.NoError(t, err)
		assert.Nil(t, updated["manufacturer"])
	})

	t.Run("Rename Onto Taken Key", func(t *testing.T) {
		_, err := s.Update(ctx, catalog.KindManufacturer, uint(objID(arista)), map[string]any{"slug": "cisco"})
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr["slug"][0], "already exists")
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := s.Update(ctx, catalog.KindPlatform, 999, map[string]any{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)

		// ids are per kind
		_, err = s.Get(ctx, catalog.KindRegion, uint(objID(cisco)))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{"slug": {"a."}, "name": {"b.", "c."}}
	assert.Equal(t, "name: b. c.; slug: a.", err.Error())
}
