package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCataloguesCoverEveryKey(t *testing.T) {
	require.NoError(t, Initialize(DefaultLanguage))

	keys := []string{
		KeyApplicationNotFound, KeyApplicationCreated, KeyApplicationUpdated, KeyApplicationDeleted,
		KeyValidationBlank, KeyValidationInclusion, KeyValidationInvalid, KeyValidationInvalidDate,
		KeyValidationOnOrAfterApplied, KeyValidationNotInFuture,
		KeyRequestMalformed, KeyRequestRateLimited, KeyInternalError,
	}
	for _, lang := range GetSupportedLanguages() {
		for _, key := range keys {
			assert.NotEqual(t, key, T(lang, key), "missing %s in %s", key, lang)
		}
	}
	assert.Equal(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}

func TestTFallsBackToDefaultLanguage(t *testing.T) {
	i := New("en")
	fsys := fstest.MapFS{
		"loc/en.json":    {Data: []byte(`{"greeting":"hello %s","only_en":"english"}`)},
		"loc/fr.json":    {Data: []byte(`{"greeting":"bonjour %s"}`)},
		"loc/README.txt": {Data: []byte("ignored")},
	}
	require.NoError(t, i.LoadTranslations(fsys, "loc"))

	assert.Equal(t, "bonjour Ada", i.T("fr", "greeting", "Ada"))
	assert.Equal(t, "english", i.T("fr", "only_en"))
	assert.Equal(t, "missing.key", i.T("fr", "missing.key"))
	assert.True(t, i.Supports("fr"))
	assert.False(t, i.Supports("de"))
}

func TestLoadTranslationsRejectsBadJSON(t *testing.T) {
	i := New("en")
	fsys := fstest.MapFS{"loc/en.json": {Data: []byte(`{`)}}
	assert.Error(t, i.LoadTranslations(fsys, "loc"))
}

func TestMessagesInEnglish(t *testing.T) {
	assert.Equal(t, "can't be blank", T("en", KeyValidationBlank))
	assert.Equal(t, "cannot be in the future", T("unknown", KeyValidationNotInFuture))
}
