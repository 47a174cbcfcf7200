package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"resource-catalog/pkg/config"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength applies to newly set editor passwords
const minPasswordLength = 6

// SetEditorPassword hashes password and stores it in the config.
// An empty password removes the hash, which turns the login prompt off.
func (a *App) SetEditorPassword(password string) error {
	if password == "" {
		a.cfg.CLI.EditorPasswordHash = ""
		return config.Save(a.cfg)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.cfg.CLI.EditorPasswordHash = string(hash)
	return config.Save(a.cfg)
}

// CheckEditorPassword reports whether password matches the stored hash
func (a *App) CheckEditorPassword(password string) (bool, error) {
	if a.cfg.CLI.EditorPasswordHash == "" {
		return true, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(a.cfg.CLI.EditorPasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check password: %w", err)
	}
	return true, nil
}

// passwordChecker adapts CheckEditorPassword for the login screen.
// nil means no password is configured.
func (a *App) passwordChecker() func(string) bool {
	if a.cfg.CLI.EditorPasswordHash == "" {
		return nil
	}
	return func(password string) bool {
		ok, err := a.CheckEditorPassword(password)
		return err == nil && ok
	}
}

// readPassword reads a password line twice from r and checks both entries match
func readPassword(r io.Reader, w io.Writer) (string, error) {
	scanner := bufio.NewScanner(r)
	read := func(prompt string) (string, error) {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read password: %w", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}

	first, err := read("New editor password (empty to disable): ")
	if err != nil {
		return "", err
	}
	second, err := read("Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}
