package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

func TestParseManifest(t *testing.T) {
	t.Run("parse array of references", func(t *testing.T) {
		raw := []byte(`[
			{"title":"Foo","source":"https://github.com/foo/bar","tags":["ai"]},
			{"source":"https://example.com/x/y"}
		]`)
		manifest := gt.R1(model.ParseManifest(raw)).NoError(t)

		gt.A(t, manifest.References).Length(2)
		gt.V(t, manifest.References[0].Source).Equal("https://github.com/foo/bar")
		gt.V(t, manifest.References[1].Source).Equal("https://example.com/x/y")
		gt.V(t, string(manifest.Raw)).Equal(string(raw))
	})

	t.Run("entry without source is kept", func(t *testing.T) {
		manifest := gt.R1(model.ParseManifest([]byte(`[{"title":"no source"}]`))).NoError(t)
		gt.A(t, manifest.References).Length(1)
		gt.V(t, manifest.References[0].Source).Equal("")
	})

	t.Run("empty array", func(t *testing.T) {
		manifest := gt.R1(model.ParseManifest([]byte(`[]`))).NoError(t)
		gt.A(t, manifest.References).Length(0)
	})

	t.Run("object is rejected", func(t *testing.T) {
		_, err := model.ParseManifest([]byte(`{"source":"https://github.com/foo/bar"}`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidManifest))
	})

	t.Run("non JSON body is rejected", func(t *testing.T) {
		_, err := model.ParseManifest([]byte(`<html>not found</html>`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidManifest))
	})
}

func TestManifestWithSupplemental(t *testing.T) {
	manifest := &model.Manifest{
		References: []model.RepositoryReference{
			{Source: "https://github.com/a/one"},
			{Source: "https://github.com/a/two"},
		},
	}
	supplemental := []model.RepositoryReference{
		{Source: "https://github.com/b/three"},
	}

	merged := manifest.WithSupplemental(supplemental)
	gt.A(t, merged).Length(3)
	gt.V(t, merged[0].Source).Equal("https://github.com/a/one")
	gt.V(t, merged[1].Source).Equal("https://github.com/a/two")
	gt.V(t, merged[2].Source).Equal("https://github.com/b/three")

	// fetched references are not modified
	gt.A(t, manifest.References).Length(2)

	t.Run("no supplemental", func(t *testing.T) {
		gt.A(t, manifest.WithSupplemental(nil)).Length(2)
	})
}
