package album

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validCreate() CreateAlbumRequest {
	return CreateAlbumRequest{
		ArtistID:  uuid.New(),
		Title:     "Primeiro Disco",
		AlbumType: TypeAlbum,
	}
}

func TestCreateAlbumRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCreate().Validate())
	})

	t.Run("zero artist id rejected", func(t *testing.T) {
		r := validCreate()
		r.ArtistID = uuid.Nil
		assert.Error(t, r.Validate())
	})

	t.Run("missing title rejected", func(t *testing.T) {
		r := validCreate()
		r.Title = ""
		assert.Error(t, r.Validate())
	})

	t.Run("album type enum", func(t *testing.T) {
		for _, typ := range []string{TypeAlbum, TypeEP, TypeSingle} {
			r := validCreate()
			r.AlbumType = typ
			assert.NoError(t, r.Validate(), typ)
		}

		r := validCreate()
		r.AlbumType = "mixtape"
		assert.Error(t, r.Validate())
	})

	t.Run("release year bounds", func(t *testing.T) {
		r := validCreate()
		r.ReleaseYear = intPtr(2024)
		assert.NoError(t, r.Validate())

		r.ReleaseYear = intPtr(1850)
		assert.Error(t, r.Validate())

		r.ReleaseYear = intPtr(2150)
		assert.Error(t, r.Validate())
	})

	t.Run("cover url must be a url", func(t *testing.T) {
		r := validCreate()
		r.CoverURL = strPtr("not a url")
		assert.Error(t, r.Validate())

		r.CoverURL = strPtr("https://cdn.example.com/covers/x.jpg")
		assert.NoError(t, r.Validate())
	})
}

func TestUpdateAlbumRequestValidate(t *testing.T) {
	t.Run("all nil is a valid no-op", func(t *testing.T) {
		assert.NoError(t, UpdateAlbumRequest{}.Validate())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		r := UpdateAlbumRequest{Title: strPtr("")}
		assert.Error(t, r.Validate())
	})

	t.Run("bad album type rejected", func(t *testing.T) {
		r := UpdateAlbumRequest{AlbumType: strPtr("bootleg")}
		assert.Error(t, r.Validate())
	})
}

func TestApplyToEntity(t *testing.T) {
	artistID := uuid.New()
	a := Album{
		ArtistID:  artistID,
		Title:     "Primeiro Disco",
		AlbumType: TypeAlbum,
	}

	r := UpdateAlbumRequest{
		Title:       strPtr("Segundo Disco"),
		ReleaseYear: intPtr(2025),
	}
	r.ApplyToEntity(&a)

	assert.Equal(t, "Segundo Disco", a.Title)
	require.NotNil(t, a.ReleaseYear)
	assert.Equal(t, 2025, *a.ReleaseYear)
	// untouched fields survive
	assert.Equal(t, artistID, a.ArtistID)
	assert.Equal(t, TypeAlbum, a.AlbumType)
}
