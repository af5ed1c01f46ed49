package system

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/halcyondev/jarvis/pkg/log"
)

// Opener launches websites, applications, and files through the platform's
// "open" facility.
type Opener struct {
	goos    string
	webApps map[string]string
	sysApps map[string]string
}

func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		webApps: map[string]string{
			"youtube":       "https://youtube.com",
			"google":        "https://google.com",
			"github":        "https://github.com",
			"stackoverflow": "https://stackoverflow.com",
			"reddit":        "https://reddit.com",
			"twitter":       "https://twitter.com",
			"wikipedia":     "https://wikipedia.org",
			"netflix":       "https://netflix.com",
			"amazon":        "https://amazon.com",
			"linkedin":      "https://linkedin.com",
		},
		sysApps: map[string]string{
			"notepad":    "notepad.exe",
			"calculator": "calc.exe",
			"paint":      "mspaint.exe",
			"word":       "winword.exe",
			"excel":      "excel.exe",
		},
	}
}

func (o *Opener) openCommand(target string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// OpenURL hands a URL to the default browser.
func (o *Opener) OpenURL(ctx context.Context, u string) error {
	name, args := o.openCommand(u)
	log.FromCtx(ctx).Debug().Str("url", u).Msg("opening url")
	if err := exec.CommandContext(ctx, name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// SearchWeb opens a Google search for the query.
func (o *Opener) SearchWeb(ctx context.Context, query string) error {
	return o.OpenURL(ctx, "https://www.google.com/search?q="+url.QueryEscape(query))
}

// ComposeEmail opens the default mail client; to may be empty.
func (o *Opener) ComposeEmail(ctx context.Context, to string) error {
	return o.OpenURL(ctx, "mailto:"+to)
}

type targetKind int

const (
	kindWebApp targetKind = iota
	kindSysApp
	kindURL
	kindPath
	kindUnknown
)

func (o *Opener) classify(target string) (targetKind, string) {
	if _, ok := o.webApps[target]; ok {
		return kindWebApp, o.webApps[target]
	}
	if _, ok := o.sysApps[target]; ok {
		return kindSysApp, o.sysApps[target]
	}
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return kindURL, target
	}
	if strings.HasPrefix(target, "www.") {
		return kindURL, "https://" + target
	}
	if path, ok := expandPath(target); ok {
		return kindPath, path
	}
	return kindUnknown, ""
}

func expandPath(target string) (string, bool) {
	path := target
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(abs); err != nil {
		return "", false
	}
	return abs, true
}

// Open resolves a free-text target (known website, application, URL, or file
// path) and opens it. The returned string is the user-facing confirmation.
func (o *Opener) Open(ctx context.Context, target string) (string, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "", fmt.Errorf("nothing to open")
	}

	kind, resolved := o.classify(target)
	switch kind {
	case kindWebApp, kindURL:
		if err := o.OpenURL(ctx, resolved); err != nil {
			return "", err
		}
		return fmt.Sprintf("Opening %s in your browser.", target), nil
	case kindSysApp:
		if err := exec.CommandContext(ctx, resolved).Start(); err != nil {
			return "", fmt.Errorf("failed to start %s: %w", target, err)
		}
		return fmt.Sprintf("Opening %s...", target), nil
	case kindPath:
		if err := o.OpenURL(ctx, resolved); err != nil {
			return "", err
		}
		return fmt.Sprintf("Opening %s...", filepath.Base(resolved)), nil
	default:
		msg := fmt.Sprintf("I don't know how to open %q.", target)
		if suggestions := o.Suggestions(target); len(suggestions) > 0 {
			msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
		}
		return "", fmt.Errorf("%s", msg)
	}
}

// Suggestions returns up to five known targets containing the given text.
func (o *Opener) Suggestions(target string) []string {
	var matches []string
	for name := range o.webApps {
		if strings.Contains(name, target) {
			matches = append(matches, name)
		}
	}
	for name := range o.sysApps {
		if strings.Contains(name, target) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}
