package envelope_test

import (
	"encoding/json"
	"errors"
	"testing"

	"memberdesk/pkg/envelope"
	"memberdesk/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestOK_WrapsData(t *testing.T) {
	env := envelope.OK([]string{"a", "b"})
	assert.True(t, env.Success)
	assert.Equal(t, []string{"a", "b"}, env.Data)
	assert.Empty(t, env.Message)
}

func TestFail_TranslatesMessage(t *testing.T) {
	env := envelope.Fail("test_key", "en")
	assert.False(t, env.Success)
	assert.Equal(t, "Test message", env.Message)
}

func TestTranslate_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := envelope.Translate("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestWithCount_KeepsZero(t *testing.T) {
	env := envelope.OK([]string{}).WithCount(0)
	encoded, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"count":0`)
}

func TestWithDetail_ExposesOutsideProduction(t *testing.T) {
	cause := errors.New("connection refused")

	exposed := envelope.Fail("test_key", "en").WithDetail(cause, true)
	assert.Equal(t, "connection refused", exposed.Error)

	suppressed := envelope.Fail("test_key", "en").WithDetail(cause, false)
	assert.Empty(t, suppressed.Error)
}

func TestWithPagination_Attaches(t *testing.T) {
	env := envelope.OK(nil).WithPagination(envelope.Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3})
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(3), env.Pagination.Pages)
}
