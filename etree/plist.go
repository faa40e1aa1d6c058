// Package etree writes docset property lists using beevik/etree.
package etree

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/docset"
)

// Ensure InfoWriter implements docset.InfoWriter at compile time.
var _ docset.InfoWriter = (*InfoWriter)(nil)

const plistDocType = `plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// InfoWriter writes info.plist files.
type InfoWriter struct{}

// NewInfoWriter creates a new InfoWriter.
func NewInfoWriter() *InfoWriter {
	return &InfoWriter{}
}

// WriteInfo writes info as an Apple property list to path, replacing any
// existing file.
func (w *InfoWriter) WriteInfo(path string, info *docset.Info) error {
	doc := NewPlist(info)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating info.plist: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing info.plist: %w", err)
	}
	return f.Close()
}

// NewPlist builds the property list document for info.
func NewPlist(info *docset.Info) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE " + plistDocType)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString(dict, "CFBundleIdentifier", info.BundleIdentifier)
	addString(dict, "CFBundleName", info.BundleName)
	addString(dict, "DocSetPlatformFamily", info.PlatformFamily)
	addBool(dict, "isDashDocset", info.IsDashDocset)
	addString(dict, "DashDocSetFallbackURL", info.FallbackURL)
	addString(dict, "dashIndexFilePath", info.IndexFilePath)
	addBool(dict, "isJavaScriptEnabled", info.JavaScriptEnabled)

	doc.Indent(2)
	return doc
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func addBool(dict *etree.Element, key string, value bool) {
	dict.CreateElement("key").SetText(key)
	if value {
		dict.CreateElement("true")
	} else {
		dict.CreateElement("false")
	}
}
