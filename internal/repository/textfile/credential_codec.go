package textfile

import (
	"fmt"
	"sort"
	"strings"
)

// Line prefixes of the credential block grammar
const (
	usernamePrefix = "Username: "
	passwordPrefix = "Password: "
)

// EncodeCredentials serializes the credential mapping as two-line blocks
// separated by a blank line, with no trailing separator. Entries are
// written in username order so the file is stable across saves.
func EncodeCredentials(creds map[string]string) string {
	usernames := make([]string, 0, len(creds))
	for username := range creds {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	var b strings.Builder
	for i, username := range usernames {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s%s\n%s%s", usernamePrefix, username, passwordPrefix, creds[username])
	}
	return b.String()
}

// DecodeCredentials decodes the credential mapping from file text. If the
// block format yields no entries, the file is reinterpreted as legacy
// newline-delimited username;password pairs. Duplicate usernames resolve
// last-written wins.
func DecodeCredentials(content string) map[string]string {
	creds := decodeCredentialBlocks(content)
	if len(creds) == 0 {
		creds = decodeCredentialLines(content)
	}
	return creds
}

func decodeCredentialBlocks(content string) map[string]string {
	creds := make(map[string]string)
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var username, password string
		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			switch {
			case strings.HasPrefix(line, usernamePrefix) && username == "":
				username = strings.TrimSpace(strings.TrimPrefix(line, usernamePrefix))
			case strings.HasPrefix(line, passwordPrefix):
				password = strings.TrimSpace(strings.TrimPrefix(line, passwordPrefix))
			}
		}

		// Blocks missing either field are skipped
		if username != "" && password != "" {
			creds[username] = password
		}
	}
	return creds
}

func decodeCredentialLines(content string) map[string]string {
	creds := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" || !strings.Contains(line, ";") {
			continue
		}
		parts := strings.SplitN(line, ";", 2)
		username := strings.TrimSpace(parts[0])
		password := strings.TrimSpace(parts[1])
		if username != "" && password != "" {
			creds[username] = password
		}
	}
	return creds
}
