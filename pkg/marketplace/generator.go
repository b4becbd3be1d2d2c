// Package marketplace derives the AWS Marketplace flavour of the proxy auto
// scaling group template from the base template.
package marketplace

import (
	"bytes"
	"context"

	"github.com/pkg/errors"

	"github.com/barracuda-cloudgen-access/marketplace-template/builtin"
	"github.com/barracuda-cloudgen-access/marketplace-template/filereader/texttemplate"
	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/imagefinder"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/regionmap"
)

// VERSION set by build script
var VERSION = "UNKNOWN"

// Generator runs the edit pipeline over one base template.
type Generator struct {
	Source     string
	Mappings   string
	Images     imagefinder.Source
	Variant    *Variant
	Strictness document.Strictness
	SourceURL  string
	LogGroup   string
}

// Result is a fully rendered template. Nothing has been written yet.
type Result struct {
	ImageID  string
	Document *document.Document
	Output   []byte
}

// Generate loads the base template, applies every edit and renders the
// output. The returned error leaves no partial output anywhere.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.Variant == nil {
		return nil, errors.New("no variant selected")
	}

	logger.Debugf("marketplace-template %s, variant %s", VERSION, g.Variant.Name)
	doc, err := document.Load(g.Source)
	if err != nil {
		return nil, err
	}
	e := &editor{doc: doc, strictness: g.Strictness}

	if err := e.appendDescriptionSuffix(); err != nil {
		return nil, err
	}

	imageID, err := g.Images.ImageID(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("Using image %s", imageID)

	table, err := regionmap.Load(g.Mappings)
	if err != nil {
		return nil, err
	}
	e.mergeMappings(table.WithImageID(imageID))

	if err := e.useRegionMapImage(); err != nil {
		return nil, err
	}
	if err := e.removeObsoleteParameter(ObsoleteParameter); err != nil {
		return nil, err
	}

	if g.Variant.Extra != nil {
		logger.Debugf("Applying %s edits", g.Variant.Name)
		if err := g.Variant.Extra(e, Snippets{LogGroup: g.LogGroup}); err != nil {
			return nil, errors.Wrapf(err, "variant %s", g.Variant.Name)
		}
	}

	out, err := Render(doc, g.SourceURL)
	if err != nil {
		return nil, err
	}
	return &Result{ImageID: imageID, Document: doc, Output: out}, nil
}

// Render serializes doc behind the auto-generation disclaimer and an
// explicit document start marker.
func Render(doc *document.Document, sourceURL string) ([]byte, error) {
	raw, err := builtin.MustString(builtin.HeaderTmplFile)
	if err != nil {
		return nil, err
	}
	header, err := texttemplate.GetString(builtin.HeaderTmplFile, raw, struct{ SourceURL string }{sourceURL})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render header")
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("---\n")
	if err := doc.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
