package web

import (
	"bytes"
	"io/fs"
	"testing"
)

func TestIndexIsTheSPADocument(t *testing.T) {
	index, err := Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !bytes.Contains(index, []byte("<!DOCTYPE html>")) {
		t.Fatal("index document is missing the doctype")
	}
	if !bytes.Contains(index, []byte("scripts/main.js")) {
		t.Fatal("index document does not reference the client script")
	}
}

func TestAssetsContainFrontendFiles(t *testing.T) {
	assets, err := Assets()
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}
	for _, name := range []string{"index.html", "styles.css", "scripts/main.js"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Fatalf("missing asset %q: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("asset %q is empty", name)
		}
	}
}
