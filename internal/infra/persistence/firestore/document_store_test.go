package firestore

import (
	"testing"

	"authkit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToUpdates_SortedPaths(t *testing.T) {
	updates := toUpdates(repository.Fields{"username": "neo", "isActive": false, "lastLogin": 42})

	assert.Equal(t, []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "lastLogin", Value: 42},
		{Path: "username", Value: "neo"},
	}, updates)
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "grpc not found", err: status.Error(codes.NotFound, "no document"), want: true},
		{name: "wrapped not found", err: errors.Wrap(status.Error(codes.NotFound, "no document"), "get"), want: true},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "denied"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFound(tt.err))
		})
	}
}
