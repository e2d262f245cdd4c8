// Package repourl classifies custom-node repository URLs.
//
// Validation is purely syntactic: it confirms the URL points at a
// recognized hosting domain with an owner/repository path, but never
// touches the network. Whether the repository actually exists is only
// discovered when the clone runs.
package repourl

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// recognizedHosts are the hosting domains accepted for custom nodes.
var recognizedHosts = map[string]bool{
	"github.com": true,
	"gitlab.com": true,
}

// Reason classifies why a line was rejected.
type Reason string

const (
	// ReasonMalformed means the line is not a URL with owner/repo segments.
	ReasonMalformed Reason = "malformed"
	// ReasonUnsupportedHost means the URL uses an unrecognized scheme or domain.
	ReasonUnsupportedHost Reason = "unsupported host"
)

// URL is a validated repository URL.
type URL struct {
	Raw   string // original input line, trimmed
	Host  string // lowercased hosting domain
	Owner string
	Repo  string // repository name without the .git suffix
}

// Normalized returns the canonical https form of the URL.
func (u URL) Normalized() string {
	return fmt.Sprintf("https://%s/%s/%s", u.Host, u.Owner, u.Repo)
}

// Spec returns the owner/repo pair for display.
func (u URL) Spec() string {
	return u.Owner + "/" + u.Repo
}

// CloneDirName returns the directory name git would clone into.
func (u URL) CloneDirName() string {
	return u.Repo
}

// Rejection records an input line that failed validation.
type Rejection struct {
	Raw    string
	Reason Reason
}

// ParseError is returned by Parse for invalid input.
type ParseError struct {
	Raw    string
	Reason Reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid repository URL %q: %s", e.Raw, e.Reason)
}

// Parse validates a single input line and returns the parsed URL.
// The caller is expected to have dropped blank lines already; a blank
// line is reported as malformed.
func Parse(line string) (URL, error) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonMalformed}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonMalformed}
	}

	// Anything without a scheme (including SSH forms like
	// git@github.com:a/b) is malformed rather than unsupported: the tool
	// only ever clones anonymous https URLs.
	if parsed.Scheme == "" || parsed.Host == "" {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonMalformed}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonUnsupportedHost}
	}

	host := strings.ToLower(parsed.Hostname())
	if !recognizedHosts[host] {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonUnsupportedHost}
	}

	path := strings.Trim(parsed.EscapedPath(), "/")
	segments := strings.Split(path, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonMalformed}
	}

	repo := strings.TrimSuffix(segments[1], ".git")
	if repo == "" {
		return URL{}, &ParseError{Raw: raw, Reason: ReasonMalformed}
	}

	return URL{
		Raw:   raw,
		Host:  host,
		Owner: segments[0],
		Repo:  repo,
	}, nil
}

// Classify validates a list of input lines. Blank lines are dropped
// without being classified; every non-blank line lands either in valid or
// in rejected, preserving input order. Duplicates are passed through.
func Classify(lines []string) (valid []URL, rejected []Rejection) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		u, err := Parse(trimmed)
		if err != nil {
			reason := ReasonMalformed
			var perr *ParseError
			if errors.As(err, &perr) {
				reason = perr.Reason
			}
			rejected = append(rejected, Rejection{Raw: trimmed, Reason: reason})
			continue
		}
		valid = append(valid, u)
	}
	return valid, rejected
}

// ReadFile reads a URL list file and returns its lines. Classification of
// the lines is left to Classify.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read URL list: %w", err)
	}
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(normalized, "\n"), nil
}
