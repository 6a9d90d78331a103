package theme

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/themeshot/assets"
)

func sampleLoader(t *testing.T) *Loader {
	t.Helper()
	fsys, err := assets.Themes()
	require.NoError(t, err)
	return &Loader{FS: fsys}
}

func TestCatalogSample(t *testing.T) {
	descs, err := sampleLoader(t).Catalog()
	require.NoError(t, err)
	require.Len(t, descs, 3)
	assert.Equal(t, Descriptor{Slug: "ocean-dark", Name: "Ocean Dark", Dark: true}, descs[0])
	assert.Equal(t, "forest-dark", descs[2].Slug)
}

func TestCatalogRejectsBadEntries(t *testing.T) {
	tests := map[string]string{
		"duplicate": `[{"slug":"a","name":"A"},{"slug":"a","name":"B"}]`,
		"bad slug":  `[{"slug":"../etc","name":"A"}]`,
		"no name":   `[{"slug":"a"}]`,
		"not json":  `{`,
		"grid name": `[{"slug":"comparison-grid","name":"A"}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			l := &Loader{FS: fstest.MapFS{CatalogFile: {Data: []byte(body)}}}
			_, err := l.Catalog()
			require.Error(t, err)
		})
	}
}

func TestDescriptorRejectsSheetNames(t *testing.T) {
	for _, slug := range []string{GridArtifact, PairsArtifact} {
		err := Descriptor{Slug: slug, Name: "Clash"}.Validate()
		assert.ErrorIs(t, err, ErrReservedSlug, slug)
	}
	assert.NoError(t, Descriptor{Slug: "comparison-grid-dark", Name: "Fine"}.Validate())
}

func TestLoadSample(t *testing.T) {
	l := sampleLoader(t)
	def, err := l.Load(Descriptor{Slug: "ocean-dark", Name: "Ocean Dark", Dark: true})
	require.NoError(t, err)
	require.NotNil(t, def.Scheme)
	assert.Equal(t, "Ocean Dark", def.Scheme.Name)
	assert.Equal(t, "#C594C5", Hex(def.Syntax.Color(RoleKeyword)))

	bg, fg, err := def.Colors.Required()
	require.NoError(t, err)
	assert.Equal(t, "#1B2B34", Hex(bg))
	assert.Equal(t, "#D8DEE9", Hex(fg))
	assert.Equal(t, "#6699CC", Hex(def.Icons.Resolve("Actions.Blue", NeutralGray)))
}

func TestLoadWithoutSchemeIsGray(t *testing.T) {
	l := &Loader{FS: fstest.MapFS{
		"plain.theme.json": {Data: []byte(`{"name":"Plain","dark":false,"ui":{"*":{"background":"#ffffff","foreground":"#000000"}}}`)},
	}}
	def, err := l.Load(Descriptor{Slug: "plain", Name: "Plain"})
	require.NoError(t, err)
	assert.Nil(t, def.Scheme)
	assert.Nil(t, def.Icons)
	assert.Equal(t, NeutralGray, def.Syntax.Color(RoleKeyword))
}

func TestLoadMissingTheme(t *testing.T) {
	l := &Loader{FS: fstest.MapFS{}}
	_, err := l.Load(Descriptor{Slug: "gone", Name: "Gone"})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestValidateSampleThemes(t *testing.T) {
	l := sampleLoader(t)
	descs, err := l.Catalog()
	require.NoError(t, err)
	for _, d := range descs {
		def, err := l.Load(d)
		require.NoError(t, err, d.Slug)
		assert.NoError(t, Validate(def), d.Slug)
		assert.Empty(t, UnknownComponents(def), d.Slug)
	}
}

func TestUnknownComponents(t *testing.T) {
	l := &Loader{FS: fstest.MapFS{
		"typo.theme.json": {Data: []byte(`{"name":"Typo","ui":{"*":{"background":"#000000"},"Editro":{"background":"#111111"},"Tree":{"background":"#222222"},"Banner":{"foreground":"#333333"}}}`)},
	}}
	def, err := l.Load(Descriptor{Slug: "typo", Name: "Typo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Banner", "Editro"}, UnknownComponents(def))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	l := &Loader{FS: fstest.MapFS{
		"dim.theme.json": {Data: []byte(`{"name":"Dim","dark":true,"ui":{"*":{"background":"#222222","foreground":"#333333"}}}`)},
		"dim.xml":        {Data: []byte(`<scheme name="Other" parent_scheme="Default"><colors/><attributes/></scheme>`)},
	}}
	def, err := l.Load(Descriptor{Slug: "dim", Name: "Dim", Dark: true})
	require.NoError(t, err)

	err = Validate(def)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingRequiredColor)
	msg := err.Error()
	for _, want := range []string{
		`missing top-level key "author"`,
		`ui has no "Editor" component`,
		"icons has no ColorPalette",
		"contrast",
		`scheme name "Other"`,
		`want "Darcula"`,
		"scheme has no color CARET_COLOR",
		"scheme has no attribute DEFAULT_KEYWORD",
	} {
		assert.Contains(t, msg, want)
	}
}
