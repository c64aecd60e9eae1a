//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestClient_Search_Integration(t *testing.T) {
	query := "São Paulo"

	client := NewClient("", "assistant-webhook-integration-test/1.0", 10*time.Second, slog.Default())

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Query: %s", query)

	resp, err := client.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("Failed to search address: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp))
	}

	place := resp[0]
	t.Logf("Place Details:")
	t.Logf("  Place ID: %d", place.PlaceId)
	t.Logf("  Display Name: %s", place.DisplayName)
	t.Logf("  Coordinates: lat=%s, lon=%s", place.Lat, place.Lon)

	if place.Lat == "" || place.Lon == "" {
		t.Error("Lat/Lon fields are empty")
	}

	if place.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	t.Log("✓ API call successful, response structure valid")
}
