package response_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/country-list-service/internal/service"
	"github.com/maxviazov/country-list-service/pkg/response"
)

func TestMapError(t *testing.T) {
	offsetErr := &service.PageError{Kind: service.ErrInvalidOffset, Message: "Offset must be a positive number", ValidRange: "0 - 249"}
	limitErr := &service.PageError{Kind: service.ErrInvalidLimit, Message: "Limit must be between 1 and 100", MaxAllowed: 100}

	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"invalid_offset", offsetErr, 400, "Invalid offset"},
		{"invalid_limit", limitErr, 400, "Invalid limit"},
		{"wrapped_limit", fmt.Errorf("handler: %w", limitErr), 400, "Invalid limit"},
		{"not_found", &response.RouteNotFoundError{Path: "/foo", AvailableRoutes: []string{"/"}}, 404, "Not Found"},
		{"internal", errors.New("boom"), 500, "Internal Server Error"},
		{"bare_marker_is_internal", service.ErrInvalidLimit, 500, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
		})
	}
}

func TestMapError_Details(t *testing.T) {
	_, p := response.MapError(&service.PageError{Kind: service.ErrInvalidOffset, Message: "m", ValidRange: "0 - 9"})
	if p.ValidRange != "0 - 9" || p.MaxAllowed != 0 {
		t.Fatalf("unexpected offset payload: %+v", p)
	}

	_, p = response.MapError(&service.PageError{Kind: service.ErrInvalidLimit, Message: "m", MaxAllowed: 100})
	if p.MaxAllowed != 100 || p.ValidRange != "" {
		t.Fatalf("unexpected limit payload: %+v", p)
	}

	_, p = response.MapError(&response.RouteNotFoundError{Path: "/foo", AvailableRoutes: []string{"/", "/countries"}})
	if p.Message != "The requested route /foo does not exist" || len(p.AvailableRoutes) != 2 {
		t.Fatalf("unexpected not found payload: %+v", p)
	}

	_, p = response.MapError(errors.New("pq: secret table name leaked"))
	if p.Error != response.InternalPayload.Error || p.Message != response.InternalPayload.Message {
		t.Fatalf("internal details leaked: %+v", p)
	}
}
