package session_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/scanweb/console/pkg/session"
)

func BenchmarkStore_Add(b *testing.B) {
	store := session.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		addTestSession(store, fmt.Sprintf("user-%d", i))
	}
}

func BenchmarkStore_Validate(b *testing.B) {
	store := session.New()
	ctx := context.Background()

	// Pre-populate so the linear scan has realistic work to do.
	for i := 0; i < 100; i++ {
		addTestSession(store, fmt.Sprintf("user-%d", i))
	}
	sess := addTestSession(store, "bench-user")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, outcome := store.Validate(ctx, sess.Cookie, sess.Token, sess.Address)
		if outcome != session.OK {
			b.Fatalf("unexpected outcome: %v", outcome)
		}
	}
}

func BenchmarkStore_FindByToken(b *testing.B) {
	store := session.New()

	for i := 0; i < 100; i++ {
		addTestSession(store, fmt.Sprintf("user-%d", i))
	}
	sess := addTestSession(store, "bench-user")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.FindByToken(sess.Token)
	}
}
