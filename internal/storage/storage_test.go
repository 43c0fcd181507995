// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

func testStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "chatbot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLocalStoreGetSet(t *testing.T) {
	store := testStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	value, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	if value != "v2" {
		t.Errorf("value = %q, want %q", value, "v2")
	}
}

func TestLocalStoreDelete(t *testing.T) {
	store := testStore(t)

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("expected key to be gone")
	}

	// Deleting again is not an error.
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chatbot.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	if err != nil || !ok || value != "v" {
		t.Errorf("Get after reopen = %q ok=%v err=%v", value, ok, err)
	}
}

func TestGetJSONCorrupt(t *testing.T) {
	store := testStore(t)

	if err := store.Set("bad", "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var v map[string]string
	_, err := store.getJSON("bad", &v)
	if !errors.Is(err, ErrCorruptRecord) {
		t.Errorf("err = %v, want ErrCorruptRecord", err)
	}

	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("err = %T, want *CorruptError", err)
	}
	if corrupt.Key != "bad" {
		t.Errorf("corrupt key = %q, want %q", corrupt.Key, "bad")
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	users := NewUserStore(testStore(t))

	u, err := users.SignUp("Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.ID == "" || u.Name != "Alice" {
		t.Errorf("unexpected user: %+v", u)
	}

	// Signup makes the account current.
	current, ok, err := users.CurrentUser()
	if err != nil || !ok {
		t.Fatalf("CurrentUser = ok=%v err=%v", ok, err)
	}
	if current.ID != u.ID {
		t.Errorf("current user = %q, want %q", current.ID, u.ID)
	}

	back, err := users.SignIn("alice@example.com")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if back.ID != u.ID {
		t.Errorf("signed-in user = %q, want %q", back.ID, u.ID)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	users := NewUserStore(testStore(t))

	if _, err := users.SignUp("Alice", "alice@example.com"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, err := users.SignUp("Alice Again", "ALICE@example.com")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	users := NewUserStore(testStore(t))

	_, err := users.SignIn("nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSignOut(t *testing.T) {
	users := NewUserStore(testStore(t))

	if _, err := users.SignUp("Alice", "alice@example.com"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := users.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser: %v", err)
	}

	if _, ok, _ := users.CurrentUser(); ok {
		t.Error("expected signed out")
	}

	// The account itself survives sign-out.
	if _, err := users.SignIn("alice@example.com"); err != nil {
		t.Errorf("SignIn after sign-out: %v", err)
	}
}

func TestCorruptUsersTreatedAsEmpty(t *testing.T) {
	store := testStore(t)
	users := NewUserStore(store)

	if err := store.Set("chatbot_users", "][junk"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := users.Users()
	if err != nil {
		t.Fatalf("Users on corrupt record: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty user list, got %d", len(got))
	}

	// Signup rewrites the corrupt record.
	if _, err := users.SignUp("Alice", "alice@example.com"); err != nil {
		t.Fatalf("SignUp after corruption: %v", err)
	}
	got, err = users.Users()
	if err != nil || len(got) != 1 {
		t.Errorf("Users after rewrite = %d err=%v, want 1", len(got), err)
	}
}

func TestSessionSaveUpsert(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	sess := model.NewChatSession("user-1", 1)
	if err := sessions.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sess.AddMessage(model.NewMessage(model.RoleUser, "hello"))
	if err := sessions.Save(sess); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	// Saving the identical state again changes nothing.
	if err := sessions.Save(sess); err != nil {
		t.Fatalf("Save repeat: %v", err)
	}

	list, err := sessions.List("user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list))
	}
	if len(list[0].Messages) != 1 {
		t.Errorf("expected 1 message, got %d", len(list[0].Messages))
	}
}

func TestSessionTimestampsRoundTrip(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	sess := model.NewChatSession("user-1", 1)
	sess.AddMessage(model.NewMessage(model.RoleUser, "hi"))
	if err := sessions.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := sessions.Get("user-1", sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !loaded.CreatedAt.Equal(sess.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", loaded.CreatedAt, sess.CreatedAt)
	}
	if !loaded.Messages[0].Timestamp.Equal(sess.Messages[0].Timestamp) {
		t.Errorf("message timestamp did not round-trip")
	}
}

func TestSessionUserIsolation(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	a := model.NewChatSession("user-a", 1)
	b := model.NewChatSession("user-b", 1)
	if err := sessions.Save(a); err != nil {
		t.Fatalf("Save a: %v", err)
	}
	if err := sessions.Save(b); err != nil {
		t.Fatalf("Save b: %v", err)
	}

	if err := sessions.Delete("user-a", a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	listA, _ := sessions.List("user-a")
	listB, _ := sessions.List("user-b")
	if len(listA) != 0 {
		t.Errorf("user-a sessions = %d, want 0", len(listA))
	}
	if len(listB) != 1 {
		t.Errorf("user-b sessions = %d, want 1", len(listB))
	}
}

func TestSessionDeleteAbsent(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	sess := model.NewChatSession("user-1", 1)
	if err := sessions.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := sessions.Delete("user-1", "no-such-id"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}

	list, _ := sessions.List("user-1")
	if len(list) != 1 {
		t.Errorf("sessions = %d, want 1", len(list))
	}
}

func TestSessionGetNotFound(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	_, err := sessions.Get("user-1", "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestCorruptSessionsTreatedAsEmpty(t *testing.T) {
	store := testStore(t)
	sessions := NewSessionStore(store)

	if err := store.Set("chatbot_sessions_user-1", "<<<"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	list, err := sessions.List("user-1")
	if err != nil {
		t.Fatalf("List on corrupt record: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

func TestSessionCount(t *testing.T) {
	sessions := NewSessionStore(testStore(t))

	for i := 1; i <= 3; i++ {
		if err := sessions.Save(model.NewChatSession("user-1", i)); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	n, err := sessions.Count("user-1")
	if err != nil || n != 3 {
		t.Errorf("Count = %d err=%v, want 3", n, err)
	}
}
