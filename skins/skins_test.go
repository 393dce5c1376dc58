package skins

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func byName(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.CSS
	}
	return m
}

func TestListCSSAndManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.css", "body{}")
	writeFile(t, dir, "b.tavern-skin", `{"name":"B","css":"div{}"}`)

	got, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got), got)
	}
	m := byName(got)
	if m["a.css"] != "body{}" {
		t.Errorf("a.css css = %q, want body{}", m["a.css"])
	}
	if m["B"] != "div{}" {
		t.Errorf("B css = %q, want div{}", m["B"])
	}
}

func TestListManifestNameDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dark.tavern-skin", `{"css":"p{}"}`)

	got, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "dark.tavern-skin" || got[0].CSS != "p{}" {
		t.Errorf("got %+v, want [{dark.tavern-skin p{}}]", got)
	}
}

func TestListMissingCSSFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.css", "body{}")
	writeFile(t, dir, "c.tavern-skin", `{"name":"C"}`)

	got, err := List(dir)
	if !errors.Is(err, ErrMalformedSkin) {
		t.Fatalf("err = %v, want ErrMalformedSkin", err)
	}
	var mse *MalformedSkinError
	if !errors.As(err, &mse) || filepath.Base(mse.Path) != "c.tavern-skin" {
		t.Errorf("err = %#v, want MalformedSkinError for c.tavern-skin", err)
	}
	if got != nil {
		t.Errorf("got %+v, want no entries", got)
	}
}

func TestListNonUTF8CSSFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.css", "body{}")
	writeFile(t, dir, "latin1.css", "p{content:\"caf\xe9\"}")

	got, err := List(dir)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
	if got != nil {
		t.Errorf("entries = %+v, want none", got)
	}
}

func TestListNonStringCSSIsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "n.tavern-skin", `{"css":42}`)

	if _, err := List(dir); !errors.Is(err, ErrMalformedSkin) {
		t.Fatalf("err = %v, want ErrMalformedSkin", err)
	}
}

func TestListInvalidJSONFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.tavern-skin", `{"css":`)

	_, err := List(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrMalformedSkin) {
		t.Error("invalid JSON should surface the parse error, not ErrMalformedSkin")
	}
}

func TestListSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", "hi")
	writeFile(t, dir, "noext", "x")
	writeFile(t, dir, ".css", "hidden")
	writeFile(t, dir, "ok.css", "a{}")

	got, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "ok.css" {
		t.Errorf("got %+v, want only ok.css", got)
	}
}

func TestListNonexistentDir(t *testing.T) {
	got, err := List(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}

func TestListUnreadableFileAborts(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits not enforced")
	}
	dir := t.TempDir()
	writeFile(t, dir, "a.css", "body{}")
	writeFile(t, dir, "locked.css", "x{}")
	if err := os.Chmod(filepath.Join(dir, "locked.css"), 0); err != nil {
		t.Fatal(err)
	}

	got, err := List(dir)
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("err = %v, want permission error", err)
	}
	if got != nil {
		t.Errorf("got %+v, want no partial results", got)
	}
}

func TestDir(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	t.Setenv("USERPROFILE", "")
	dir, ok := Dir()
	if !ok || dir != filepath.Join("/home/alice", ".tavern", "skins") {
		t.Errorf("Dir() = %q, %v", dir, ok)
	}

	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", `C:\Users\alice`)
	dir, ok = Dir()
	if !ok || dir != filepath.Join(`C:\Users\alice`, ".tavern", "skins") {
		t.Errorf("Dir() with USERPROFILE = %q, %v", dir, ok)
	}

	t.Setenv("USERPROFILE", "")
	if _, ok := Dir(); ok {
		t.Error("Dir() should report no home directory")
	}
}

func TestWatcherSignalsSkinChanges(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 8)
	w, err := NewWatcher(dir, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Stop() })

	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "new.css", "a{}")

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for skin change")
	}
}
