package utils

import (
	"context"
	"testing"
)

func TestGetUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "alice")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected username to be found")
	}
	if username != "alice" {
		t.Fatalf("username = %q, want alice", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}
