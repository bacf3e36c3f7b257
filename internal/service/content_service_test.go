package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-service/internal/domain"
)

func TestContentServiceOfferings(t *testing.T) {
	fakes := newFakeContent()
	svc := fakes.service()
	ctx := context.Background()

	err := svc.SaveOffering(ctx, &domain.Offering{Description: "sin nombre"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Empty(t, fakes.offerings.items)

	offering := &domain.Offering{Title: " Bordado a mano "}
	require.NoError(t, svc.SaveOffering(ctx, offering))
	assert.Equal(t, "Bordado a mano", offering.Title)

	offering.Name = "bordado"
	require.NoError(t, svc.SaveOffering(ctx, offering))
	got, err := svc.GetOffering(ctx, offering.ID)
	require.NoError(t, err)
	assert.Equal(t, "bordado", got.Name)

	err = svc.SaveOffering(ctx, &domain.Offering{ID: "ghost", Name: "x"})
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	require.NoError(t, svc.DeleteOffering(ctx, offering.ID))
	_, err = svc.GetOffering(ctx, offering.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, http.StatusNotFound, statusOf(svc.DeleteOffering(ctx, offering.ID)))
}

func TestContentServiceGalleriesAreSeparate(t *testing.T) {
	fakes := newFakeContent()
	svc := fakes.service()
	ctx := context.Background()

	photo := &domain.Media{Kind: domain.MediaPhoto, URL: "https://cdn.example.com/a.jpg", Title: "Telar"}
	require.NoError(t, svc.SaveMedia(ctx, photo))

	photos, err := svc.ListMedia(ctx, domain.MediaPhoto)
	require.NoError(t, err)
	assert.Len(t, photos, 1)
	videos, err := svc.ListMedia(ctx, domain.MediaVideo)
	require.NoError(t, err)
	assert.Empty(t, videos)

	_, err = svc.GetMedia(ctx, domain.MediaVideo, photo.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, http.StatusNotFound, statusOf(svc.DeleteMedia(ctx, domain.MediaVideo, photo.ID)))

	require.NoError(t, svc.DeleteMedia(ctx, domain.MediaPhoto, photo.ID))
	assert.Empty(t, fakes.photos.items)
}

func TestContentServiceRejectsBadMedia(t *testing.T) {
	fakes := newFakeContent()
	svc := fakes.service()
	ctx := context.Background()

	cases := map[string]*domain.Media{
		"missing url":   {Kind: domain.MediaVideo},
		"relative url":  {Kind: domain.MediaVideo, URL: "/uploads/a.mp4"},
		"other scheme":  {Kind: domain.MediaVideo, URL: "ftp://example.com/a.mp4"},
		"unknown kind":  {Kind: "audio", URL: "https://example.com/a.mp3"},
		"blank url":     {Kind: domain.MediaPhoto, URL: "   "},
	}
	for name, media := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, statusOf(svc.SaveMedia(ctx, media)))
		})
	}
	assert.Empty(t, fakes.photos.items)
	assert.Empty(t, fakes.videos.items)
}

func TestContentServiceAboutIsSingleton(t *testing.T) {
	fakes := newFakeContent()
	svc := fakes.service()
	ctx := context.Background()

	about, err := svc.GetAbout(ctx)
	require.NoError(t, err)
	assert.Nil(t, about)

	first := &domain.About{Mission: " Preservar ", Vision: "Crecer"}
	require.NoError(t, svc.SaveAbout(ctx, first))
	assert.Equal(t, "Preservar", first.Mission)

	second := &domain.About{Mission: "Difundir", Vision: "Exportar"}
	require.NoError(t, svc.SaveAbout(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	about, err = svc.GetAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Difundir", about.Mission)

	require.NoError(t, svc.UpdateAbout(ctx, &domain.About{ID: first.ID, Mission: "M", Vision: "V"}))
	got, err := svc.GetAboutByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "V", got.Vision)

	assert.Equal(t, http.StatusNotFound, statusOf(svc.UpdateAbout(ctx, &domain.About{ID: "ghost"})))
	require.NoError(t, svc.DeleteAbout(ctx, first.ID))
	_, err = svc.GetAboutByID(ctx, first.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestContentServiceContact(t *testing.T) {
	fakes := newFakeContent()
	svc := fakes.service()
	ctx := context.Background()

	contact, err := svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Nil(t, contact)

	err = svc.SaveContact(ctx, &domain.ContactInfo{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Zero(t, fakes.contact.writes)

	require.NoError(t, svc.SaveContact(ctx, &domain.ContactInfo{Phone: " 951 000 0000 ", Email: " Hola@Example.com "}))
	contact, err = svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "951 000 0000", contact.Phone)
	assert.Equal(t, "hola@example.com", contact.Email)

	require.NoError(t, svc.SaveContact(ctx, &domain.ContactInfo{Hours: "9-18"}))
	contact, err = svc.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9-18", contact.Hours)
	assert.Empty(t, contact.Email)
}
