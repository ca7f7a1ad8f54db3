package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password (entered twice) and attempts
// to create a new account via the AuthService. The password confirmation is
// checked here, caller-side, before the core is involved.
//
// On success the new user is logged in right away, matching the original
// flow where registration dropped the user straight into the app. Both
// password byte slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if userName == "" || len(password) == 0 {
		fmt.Println("Username and password are required")
		return common.ErrValidation
	}
	if !bytes.Equal(password, confirm) {
		fmt.Println("Passwords do not match")
		return common.ErrValidation
	}

	if err := a.authService.Register(ctx, userName, string(password)); err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.authService.Login(ctx, userName, string(password)); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = userName
	if err := a.todoService.Load(ctx); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// current user's todo list is loaded into memory. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid username or password")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}

	a.userName = userName
	if err := a.todoService.Load(ctx); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", userName)
	return nil
}

// Logout clears the session and the in-memory list.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	return a.todoService.Load(ctx)
}

// DeleteAccount removes the current account and all its data after an
// explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete this account and all its todos? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	if err := a.authService.DeleteAccount(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = ""
	if err := a.todoService.Load(ctx); err != nil {
		return err
	}

	fmt.Println("Account deleted")
	return nil
}
