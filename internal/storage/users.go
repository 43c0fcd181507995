// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

var (
	// ErrUserExists is returned by SignUp for a duplicate email.
	ErrUserExists = errors.New("User already exists with this email")
	// ErrUserNotFound is returned by SignIn for an unknown email.
	ErrUserNotFound = errors.New("User not found")
)

// UserStore is the identity store: the registered-user collection plus
// the current-user pointer. Authentication is purely local; passwords
// are accepted by the callers' prompts and never reach this layer.
type UserStore struct {
	store *LocalStore
}

// NewUserStore wraps store with the identity operations.
func NewUserStore(store *LocalStore) *UserStore {
	return &UserStore{store: store}
}

// Users returns all registered users. A corrupt user collection is
// treated as empty after a warning; the record is rewritten on the
// next signup.
func (u *UserStore) Users() ([]model.User, error) {
	var users []model.User
	if _, err := u.store.getJSON(usersKey, &users); err != nil {
		if errors.Is(err, ErrCorruptRecord) {
			fmt.Fprintf(os.Stderr, "warning: %v (treating as empty)\n", err)
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// SignUp registers a new account. The email comparison is
// case-insensitive. The new user becomes the current user.
func (u *UserStore) SignUp(name, email string) (*model.User, error) {
	users, err := u.Users()
	if err != nil {
		return nil, err
	}

	for _, existing := range users {
		if strings.EqualFold(existing.Email, email) {
			return nil, ErrUserExists
		}
	}

	user := model.NewUser(name, email)
	users = append(users, *user)
	if err := u.store.setJSON(usersKey, users); err != nil {
		return nil, err
	}
	if err := u.SetCurrentUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn looks up an account by email and makes it the current user.
// The password the caller collected is deliberately ignored.
func (u *UserStore) SignIn(email string) (*model.User, error) {
	users, err := u.Users()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			if err := u.SetCurrentUser(&user); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// CurrentUser returns the persisted current user, or false when signed
// out. A corrupt pointer reads as signed out.
func (u *UserStore) CurrentUser() (*model.User, bool, error) {
	var user model.User
	ok, err := u.store.getJSON(currentUserKey, &user)
	if err != nil {
		if errors.Is(err, ErrCorruptRecord) {
			fmt.Fprintf(os.Stderr, "warning: %v (treating as signed out)\n", err)
			return nil, false, nil
		}
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}

// SetCurrentUser persists the current-user pointer.
func (u *UserStore) SetCurrentUser(user *model.User) error {
	return u.store.setJSON(currentUserKey, user)
}

// ClearCurrentUser signs the current user out. The account record and
// its sessions are untouched.
func (u *UserStore) ClearCurrentUser() error {
	return u.store.Delete(currentUserKey)
}
