package test

import (
	"context"
	"errors"
	"testing"

	"github.com/echoaway/echoaway-go/api"
)

func draft() api.AccommodationDraft {
	return api.AccommodationDraft{
		Title:            "Refuge des Aiguilles",
		Address:          "Route du col",
		PostalCode:       "74400",
		City:             "Chamonix",
		Type:             api.TypeChalet,
		NumberOfBeds:     6,
		Connectivity:     api.ConnectivityPoor,
		PriceMinPerNight: 90,
		PriceMaxPerNight: 180,
		Description:      "Chalet isolé, réseau quasi inexistant.",
	}
}

func TestAccommodationCRUDThroughSession(t *testing.T) {
	e := newEnv(t, nil)
	e.backend.addUser("host@echoaway.fr", "secret", "host")
	ctx := context.Background()

	s := e.newSession(t)
	if _, err := s.Login(ctx, "host@echoaway.fr", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	client := s.Client()

	created, err := client.CreateAccommodation(ctx, draft())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 || created.HostID == 0 {
		t.Fatalf("created = %+v", created)
	}

	list, err := client.ListAccommodations(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Refuge des Aiguilles" {
		t.Fatalf("list = %+v", list)
	}

	if err := client.DeleteAccommodation(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	list, err = client.ListAccommodations(ctx)
	if err != nil {
		t.Fatalf("List after delete failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list after delete = %+v", list)
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	e := newEnv(t, nil)
	s := e.newSession(t)

	_, err := s.Client().CreateAccommodation(context.Background(), draft())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || !apiErr.IsAuthError() {
		t.Fatalf("anonymous create = %v, want an auth error", err)
	}
}

func TestCreateAfterLogoutIsRejected(t *testing.T) {
	e := newEnv(t, nil)
	e.backend.addUser("host@echoaway.fr", "secret", "host")
	ctx := context.Background()

	s := e.newSession(t)
	if _, err := s.Login(ctx, "host@echoaway.fr", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// The adapter sources its token from the session, so logout takes
	// immediate effect on the client too.
	var apiErr *api.Error
	if _, err := s.Client().CreateAccommodation(ctx, draft()); !errors.As(err, &apiErr) || !apiErr.IsAuthError() {
		t.Fatalf("post-logout create = %v, want an auth error", err)
	}
}
