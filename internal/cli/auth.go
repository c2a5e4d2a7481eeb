package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for email, username, and password and creates the local
// account. A prior account is simply replaced. The password byte slice is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Register(ctx, email, string(password), username)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and authenticates against the stored
// record. Failures are shown to the user and leave the current state
// untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Logout removes the session token and clears the in-memory user. The
// account record itself survives.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}

// Profile prints the current user record.
func (a *App) Profile(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}
	printlnFn("Email:", a.user.Email)
	printlnFn("Username:", a.user.Username)
	return nil
}

// EditProfile prompts for new email/username (empty input keeps the current
// value) and an optional password, then overwrites the stored record. The
// password is accepted for parity with the form but is never persisted.
func (a *App) EditProfile(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please login first.")
		return nil
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", a.user.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.user.Email
	}

	username, err := getSimpleText(a.reader, fmt.Sprintf("Enter username [%s]", a.user.Username), os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		username = a.user.Username
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.UpdateProfile(ctx, email, username, string(password))
	if err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn("Profile updated.")
	return nil
}
